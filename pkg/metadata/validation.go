package metadata

import (
	"regexp"
	"strings"

	"tracd.io/tracd/pkg/pb"
)

var (
	attrNameRe   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	tenantCodeRe = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	objectIdRe   = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// Reserved attr prefixes. Attrs under these prefixes may only be written by
// the platform itself.
var reservedAttrPrefixes = []string{"trac_", "_", "__"}

// Windows device names are rejected as file names regardless of extension.
var reservedFileNames = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true,
	"com5": true, "com6": true, "com7": true, "com8": true, "com9": true,
	"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true,
	"lpt5": true, "lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

const maxTenantCodeLen = 60

// ValidTenantCode reports whether a tenant code is well formed.
func ValidTenantCode(code string) bool {
	return len(code) > 0 && len(code) <= maxTenantCodeLen && tenantCodeRe.MatchString(code)
}

// ValidObjectId reports whether an object id is a well formed UUID.
func ValidObjectId(id string) bool {
	return objectIdRe.MatchString(id)
}

// ValidateAttrName checks an attr name for structure and reservation.
// Trusted callers (the platform itself) may use reserved prefixes.
func ValidateAttrName(name string, trusted bool) error {
	if name == "" {
		return ErrValidation.New("attr name is blank")
	}
	if !trusted {
		for _, prefix := range reservedAttrPrefixes {
			if strings.HasPrefix(name, prefix) {
				return ErrValidation.New("attr name %q uses a reserved prefix", name)
			}
		}
	}
	if trusted && (strings.HasPrefix(name, "trac_") || strings.HasPrefix(name, "_")) {
		// reserved names still need a valid suffix
		trimmed := strings.TrimLeft(name, "_")
		trimmed = strings.TrimPrefix(trimmed, "trac_")
		if trimmed == "" {
			return ErrValidation.New("attr name %q is blank after its prefix", name)
		}
		return nil
	}
	if !attrNameRe.MatchString(name) {
		return ErrValidation.New("attr name %q is not a valid identifier", name)
	}
	return nil
}

// ValidateFileName applies the platform file naming rules: no control
// characters, separators or NULs, no leading/trailing whitespace, no
// trailing dot, no reserved device names, no reserved prefixes.
func ValidateFileName(name string) error {
	if name == "" {
		return ErrValidation.New("file name is blank")
	}
	if strings.HasPrefix(name, "trac_") || strings.HasPrefix(name, "_") {
		return ErrValidation.New("file name %q uses a reserved prefix", name)
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return ErrValidation.New("file name contains control characters")
		}
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', 0:
			return ErrValidation.New("file name contains illegal character %q", r)
		}
	}
	if strings.TrimSpace(name) != name {
		return ErrValidation.New("file name has leading or trailing whitespace")
	}
	if strings.HasSuffix(name, ".") {
		return ErrValidation.New("file name has a trailing dot")
	}
	stem := name
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		stem = name[:dot]
	}
	if reservedFileNames[strings.ToLower(stem)] {
		return ErrValidation.New("file name %q is reserved", name)
	}
	return nil
}

// FileExtension returns the extension of a file name, without the dot.
func FileExtension(name string) string {
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 && dot < len(name)-1 {
		return name[dot+1:]
	}
	return ""
}

// ValidateSelector checks the structural rules of a selector: type and id
// present, exactly one criterion per side, versions strictly positive.
func ValidateSelector(selector *pb.TagSelector) error {
	if selector == nil {
		return ErrValidation.New("selector not set")
	}
	if selector.ObjectType == pb.ObjectType_OBJECT_TYPE_NOT_SET {
		return ErrValidation.New("selector object type not set")
	}
	if !ValidObjectId(selector.ObjectId) {
		return ErrValidation.New("selector object id %q is not a valid id", selector.ObjectId)
	}

	switch c := selector.ObjectCriteria.(type) {
	case *pb.TagSelector_ObjectVersion:
		if c.ObjectVersion <= 0 {
			return ErrValidation.New("selector object version %d is not positive", c.ObjectVersion)
		}
	case *pb.TagSelector_ObjectAsOf:
		if _, err := DecodeDatetime(c.ObjectAsOf); err != nil {
			return ErrValidation.Wrap(err)
		}
	case *pb.TagSelector_LatestObject:
		if !c.LatestObject {
			return ErrValidation.New("latest object flag set to false")
		}
	default:
		return ErrValidation.New("selector has no object criteria")
	}

	switch c := selector.TagCriteria.(type) {
	case *pb.TagSelector_TagVersion:
		if c.TagVersion <= 0 {
			return ErrValidation.New("selector tag version %d is not positive", c.TagVersion)
		}
	case *pb.TagSelector_TagAsOf:
		if _, err := DecodeDatetime(c.TagAsOf); err != nil {
			return ErrValidation.Wrap(err)
		}
	case *pb.TagSelector_LatestTag:
		if !c.LatestTag {
			return ErrValidation.New("latest tag flag set to false")
		}
	default:
		return ErrValidation.New("selector has no tag criteria")
	}

	return nil
}

// ValidateDefinition checks that the discriminator and the payload of an
// object definition agree.
func ValidateDefinition(def *pb.ObjectDefinition) error {
	if def == nil {
		return ErrValidation.New("object definition not set")
	}

	var payloadType pb.ObjectType
	switch def.Definition.(type) {
	case *pb.ObjectDefinition_Data:
		payloadType = pb.ObjectType_DATA
	case *pb.ObjectDefinition_File:
		payloadType = pb.ObjectType_FILE
	case *pb.ObjectDefinition_Storage:
		payloadType = pb.ObjectType_STORAGE
	case *pb.ObjectDefinition_Schema:
		payloadType = pb.ObjectType_SCHEMA
	case *pb.ObjectDefinition_Model:
		payloadType = pb.ObjectType_MODEL
	case *pb.ObjectDefinition_Flow:
		payloadType = pb.ObjectType_FLOW
	case *pb.ObjectDefinition_Job:
		payloadType = pb.ObjectType_JOB
	case *pb.ObjectDefinition_Custom:
		payloadType = pb.ObjectType_CUSTOM
	default:
		return ErrValidation.New("object definition has no payload")
	}

	if def.ObjectType == pb.ObjectType_OBJECT_TYPE_NOT_SET {
		return ErrValidation.New("object type not set")
	}
	if def.ObjectType != payloadType {
		return ErrValidation.New(
			"object type %v does not match definition payload %v",
			def.ObjectType, payloadType)
	}

	switch def.ObjectType {
	case pb.ObjectType_DATA:
		return validateDataDef(def.GetData())
	case pb.ObjectType_FILE:
		return validateFileDef(def.GetFile())
	case pb.ObjectType_SCHEMA:
		return ValidateSchema(def.GetSchema())
	}
	return nil
}

func validateDataDef(data *pb.DataDefinition) error {
	switch spec := data.SchemaSpecifier.(type) {
	case *pb.DataDefinition_Schema:
		if err := ValidateSchema(spec.Schema); err != nil {
			return err
		}
	case *pb.DataDefinition_SchemaId:
		if err := ValidateSelector(spec.SchemaId); err != nil {
			return err
		}
		if spec.SchemaId.ObjectType != pb.ObjectType_SCHEMA {
			return ErrValidation.New("schema id does not select a SCHEMA object")
		}
		// external schema references must pin an explicit version
		if _, ok := spec.SchemaId.ObjectCriteria.(*pb.TagSelector_ObjectVersion); !ok {
			return ErrValidation.New("schema id must pin an explicit object version")
		}
	default:
		return ErrValidation.New("data definition has no schema specifier")
	}

	if data.StorageId != nil {
		if err := validateStorageRef(data.StorageId); err != nil {
			return err
		}
	}
	for key, part := range data.Parts {
		if part == nil || part.Snap == nil {
			return ErrValidation.New("data part %q has no snapshot", key)
		}
		if part.PartKey != key {
			return ErrValidation.New("data part key %q disagrees with map key %q", part.PartKey, key)
		}
	}
	return nil
}

func validateFileDef(file *pb.FileDefinition) error {
	if err := ValidateFileName(file.Name); err != nil {
		return err
	}
	if file.Size < 0 {
		return ErrValidation.New("file size %d is negative", file.Size)
	}
	if file.StorageId != nil {
		if err := validateStorageRef(file.StorageId); err != nil {
			return err
		}
	}
	return nil
}

// Storage references from DATA and FILE always address the latest object
// and latest tag of a STORAGE object.
func validateStorageRef(ref *pb.TagSelector) error {
	if err := ValidateSelector(ref); err != nil {
		return err
	}
	if ref.ObjectType != pb.ObjectType_STORAGE {
		return ErrValidation.New("storage id does not select a STORAGE object")
	}
	if !ref.GetLatestObject() || !ref.GetLatestTag() {
		return ErrValidation.New("storage id must select the latest object and tag")
	}
	return nil
}

// ValidateTagUpdates checks a batch of tag updates against naming and
// reservation rules before they are applied.
func ValidateTagUpdates(updates []*pb.TagUpdate, trusted bool) error {
	for _, update := range updates {
		if update == nil {
			return ErrValidation.New("tag update not set")
		}
		if update.Operation == pb.TagOperation_CLEAR_ALL_ATTR {
			if update.AttrName != "" {
				return ErrValidation.New("clear all attrs must not name an attr")
			}
			continue
		}
		if err := ValidateAttrName(update.AttrName, trusted); err != nil {
			return err
		}
		switch update.Operation {
		case pb.TagOperation_DELETE_ATTR:
			if update.Value != nil {
				return ErrValidation.New("delete attr %q carries a value", update.AttrName)
			}
		default:
			if update.Value == nil {
				return ErrValidation.New("attr update %q has no value", update.AttrName)
			}
			if ValueType(update.Value) == pb.BasicType_BASIC_TYPE_NOT_SET {
				return ErrValidation.New("attr update %q has no usable value", update.AttrName)
			}
		}
	}
	return nil
}

// ApplyTagUpdates produces the attr map of the next tag from the prior
// attrs and a batch of updates. The prior map is not modified. A REPLACE
// against an absent attr and a CREATE against a present one fail with a
// precondition error class so callers can map FAILED_PRECONDITION.
func ApplyTagUpdates(prior map[string]*pb.Value, updates []*pb.TagUpdate) (map[string]*pb.Value, error) {
	attrs := make(map[string]*pb.Value, len(prior)+len(updates))
	for k, v := range prior {
		attrs[k] = v
	}

	for _, update := range updates {
		name := update.AttrName
		switch update.Operation {
		case pb.TagOperation_CREATE_OR_REPLACE_ATTR:
			attrs[name] = normalizeValue(update.Value)

		case pb.TagOperation_CREATE_ATTR:
			if _, exists := attrs[name]; exists {
				return nil, ErrPrecondition.New("attr %q already exists", name)
			}
			attrs[name] = normalizeValue(update.Value)

		case pb.TagOperation_REPLACE_ATTR:
			prior, exists := attrs[name]
			if !exists {
				return nil, ErrPrecondition.New("attr %q does not exist", name)
			}
			if ValueType(prior) != ValueType(update.Value) {
				return nil, ErrPrecondition.New("attr %q changes type on replace", name)
			}
			attrs[name] = normalizeValue(update.Value)

		case pb.TagOperation_APPEND_ATTR:
			existing, exists := attrs[name]
			if !exists {
				return nil, ErrPrecondition.New("attr %q does not exist", name)
			}
			attrs[name] = appendValue(existing, normalizeValue(update.Value))

		case pb.TagOperation_DELETE_ATTR:
			if _, exists := attrs[name]; !exists {
				return nil, ErrPrecondition.New("attr %q does not exist", name)
			}
			delete(attrs, name)

		case pb.TagOperation_CLEAR_ALL_ATTR:
			attrs = make(map[string]*pb.Value)

		default:
			return nil, ErrValidation.New("unknown tag operation %v", update.Operation)
		}
	}

	return attrs, nil
}

func normalizeValue(v *pb.Value) *pb.Value {
	if v == nil {
		return nil
	}
	if v.Type == pb.BasicType_BASIC_TYPE_NOT_SET {
		return &pb.Value{Type: ValueType(v), V: v.V}
	}
	return v
}

func appendValue(existing, next *pb.Value) *pb.Value {
	var items []*pb.Value
	if arr := existing.GetArrayValue(); arr != nil {
		items = append(items, arr.Items...)
	} else {
		items = append(items, existing)
	}
	if arr := next.GetArrayValue(); arr != nil {
		items = append(items, arr.Items...)
	} else {
		items = append(items, next)
	}
	return &pb.Value{
		Type: pb.BasicType_ARRAY,
		V:    &pb.Value_ArrayValue{ArrayValue: &pb.ArrayValue{Items: items}},
	}
}
