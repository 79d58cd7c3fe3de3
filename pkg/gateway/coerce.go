package gateway

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"tracd.io/tracd/pkg/pb"
)

// ErrCoerce means a captured URL fragment could not be applied to its
// request field. The router turns it into a 400 before any RPC is made.
var ErrCoerce = errs.Class("path field error")

// setRequestField walks a dotted field path through a request message and
// sets the leaf from a URL fragment. Intermediate nil pointers are
// allocated. Leaves coerce by target type: string, int64, int32, and enums
// by case-insensitive name.
func setRequestField(msg interface{}, path, value string) error {
	v := reflect.ValueOf(msg)
	parts := strings.Split(path, ".")
	for i, part := range parts {
		for v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return ErrCoerce.New("field %q is not a message", strings.Join(parts[:i], "."))
		}
		last := i == len(parts)-1

		// selector criteria live behind oneof wrappers, not plain fields
		if sel, ok := v.Addr().Interface().(*pb.TagSelector); ok {
			if handled, err := setSelectorCriteria(sel, part, value); handled || err != nil {
				if err == nil && !last {
					return ErrCoerce.New("field %q is not a message", part)
				}
				return err
			}
		}

		field, ok := fieldByProtoName(v, part)
		if !ok {
			return ErrCoerce.New("no field %q in %s", part, v.Type())
		}
		if !last {
			v = field
			continue
		}
		return setLeaf(field, path, value)
	}
	return nil
}

func fieldByProtoName(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if cut := strings.Index(tag, ","); cut >= 0 {
			tag = tag[:cut]
		}
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func setLeaf(field reflect.Value, path, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil
	case reflect.Int32:
		// named int32 types are enums, matched by name first
		if field.Type() != reflect.TypeOf(int32(0)) {
			return setEnum(field, path, value)
		}
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return ErrCoerce.New("field %q: %q is not an int32", path, value)
		}
		field.SetInt(n)
		return nil
	case reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return ErrCoerce.New("field %q: %q is not an int64", path, value)
		}
		field.SetInt(n)
		return nil
	default:
		return ErrCoerce.New("field %q has unsupported type %s", path, field.Type())
	}
}

func setEnum(field reflect.Value, path, value string) error {
	u, ok := field.Addr().Interface().(json.Unmarshaler)
	if !ok {
		return ErrCoerce.New("field %q has unsupported enum type %s", path, field.Type())
	}
	quoted, err := json.Marshal(strings.ToUpper(value))
	if err != nil {
		return ErrCoerce.Wrap(err)
	}
	if err := u.UnmarshalJSON(quoted); err != nil {
		return ErrCoerce.New("field %q: %v", path, err)
	}
	return nil
}

// setSelectorCriteria applies version and as-of captures to a selector's
// criteria. Returns handled=false when the name is a plain selector field.
func setSelectorCriteria(sel *pb.TagSelector, name, value string) (handled bool, err error) {
	switch name {
	case "object_version":
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return true, ErrCoerce.New("field %q: %q is not an int32", name, value)
		}
		sel.ObjectCriteria = &pb.TagSelector_ObjectVersion{ObjectVersion: int32(n)}
		return true, nil
	case "object_as_of":
		sel.ObjectCriteria = &pb.TagSelector_ObjectAsOf{
			ObjectAsOf: &pb.DatetimeValue{IsoDatetime: value}}
		return true, nil
	case "latest_object":
		sel.ObjectCriteria = &pb.TagSelector_LatestObject{LatestObject: true}
		return true, nil
	case "tag_version":
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return true, ErrCoerce.New("field %q: %q is not an int32", name, value)
		}
		sel.TagCriteria = &pb.TagSelector_TagVersion{TagVersion: int32(n)}
		return true, nil
	case "tag_as_of":
		sel.TagCriteria = &pb.TagSelector_TagAsOf{
			TagAsOf: &pb.DatetimeValue{IsoDatetime: value}}
		return true, nil
	case "latest_tag":
		sel.TagCriteria = &pb.TagSelector_LatestTag{LatestTag: true}
		return true, nil
	}
	return false, nil
}
