// JSON codecs for the enum and oneof carrying types. The generated struct
// tags give plain messages their JSON form for free; enums render as their
// proto names and oneof variants flatten into the enclosing object, the
// shape the REST gateway speaks. Field names keep the proto original
// (snake_case) on output and are accepted case-sensitively on input.

package pb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func marshalEnum(names map[int32]string, v int32) ([]byte, error) {
	if name, ok := names[v]; ok {
		return json.Marshal(name)
	}
	return json.Marshal(v)
}

func unmarshalEnum(kind string, values map[string]int32, names map[int32]string, data []byte) (int32, error) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if v, ok := values[strings.ToUpper(name)]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("pb: unknown %s %q", kind, name)
	}
	var v int32
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, fmt.Errorf("pb: invalid %s: %s", kind, string(data))
	}
	if _, ok := names[v]; !ok {
		return 0, fmt.Errorf("pb: unknown %s %d", kind, v)
	}
	return v, nil
}

func (t ObjectType) MarshalJSON() ([]byte, error) { return marshalEnum(ObjectType_name, int32(t)) }
func (t *ObjectType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("object type", ObjectType_value, ObjectType_name, data)
	*t = ObjectType(v)
	return err
}

func (t BasicType) MarshalJSON() ([]byte, error) { return marshalEnum(BasicType_name, int32(t)) }
func (t *BasicType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("basic type", BasicType_value, BasicType_name, data)
	*t = BasicType(v)
	return err
}

func (t SchemaType) MarshalJSON() ([]byte, error) { return marshalEnum(SchemaType_name, int32(t)) }
func (t *SchemaType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("schema type", SchemaType_value, SchemaType_name, data)
	*t = SchemaType(v)
	return err
}

func (t TagOperation) MarshalJSON() ([]byte, error) { return marshalEnum(TagOperation_name, int32(t)) }
func (t *TagOperation) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("tag operation", TagOperation_value, TagOperation_name, data)
	*t = TagOperation(v)
	return err
}

func (t IncarnationStatus) MarshalJSON() ([]byte, error) {
	return marshalEnum(IncarnationStatus_name, int32(t))
}
func (t *IncarnationStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("incarnation status", IncarnationStatus_value, IncarnationStatus_name, data)
	*t = IncarnationStatus(v)
	return err
}

func (t CopyStatus) MarshalJSON() ([]byte, error) { return marshalEnum(CopyStatus_name, int32(t)) }
func (t *CopyStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("copy status", CopyStatus_value, CopyStatus_name, data)
	*t = CopyStatus(v)
	return err
}

func (t SearchOperator) MarshalJSON() ([]byte, error) {
	return marshalEnum(SearchOperator_name, int32(t))
}
func (t *SearchOperator) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("search operator", SearchOperator_value, SearchOperator_name, data)
	*t = SearchOperator(v)
	return err
}

func (t LogicalOperator) MarshalJSON() ([]byte, error) {
	return marshalEnum(LogicalOperator_name, int32(t))
}
func (t *LogicalOperator) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("logical operator", LogicalOperator_value, LogicalOperator_name, data)
	*t = LogicalOperator(v)
	return err
}

// Value flattens its variant into the enclosing object. 64-bit integers
// render as strings and are accepted either way.
func (m *Value) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{}
	if m.Type != BasicType_BASIC_TYPE_NOT_SET {
		out["type"] = m.Type
	}
	switch v := m.V.(type) {
	case *Value_BooleanValue:
		out["boolean_value"] = v.BooleanValue
	case *Value_IntegerValue:
		out["integer_value"] = strconv.FormatInt(v.IntegerValue, 10)
	case *Value_FloatValue:
		out["float_value"] = v.FloatValue
	case *Value_StringValue:
		out["string_value"] = v.StringValue
	case *Value_DecimalValue:
		out["decimal_value"] = v.DecimalValue
	case *Value_DateValue:
		out["date_value"] = v.DateValue
	case *Value_DatetimeValue:
		out["datetime_value"] = v.DatetimeValue
	case *Value_ArrayValue:
		out["array_value"] = v.ArrayValue
	}
	return json.Marshal(out)
}

func (m *Value) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Value{}
	if t, ok := raw["type"]; ok {
		if err := json.Unmarshal(t, &m.Type); err != nil {
			return err
		}
	}
	switch {
	case raw["boolean_value"] != nil:
		var v bool
		if err := json.Unmarshal(raw["boolean_value"], &v); err != nil {
			return err
		}
		m.V = &Value_BooleanValue{BooleanValue: v}
	case raw["integer_value"] != nil:
		v, err := unmarshalInt64(raw["integer_value"])
		if err != nil {
			return err
		}
		m.V = &Value_IntegerValue{IntegerValue: v}
	case raw["float_value"] != nil:
		var v float64
		if err := json.Unmarshal(raw["float_value"], &v); err != nil {
			return err
		}
		m.V = &Value_FloatValue{FloatValue: v}
	case raw["string_value"] != nil:
		var v string
		if err := json.Unmarshal(raw["string_value"], &v); err != nil {
			return err
		}
		m.V = &Value_StringValue{StringValue: v}
	case raw["decimal_value"] != nil:
		v := new(DecimalValue)
		if err := json.Unmarshal(raw["decimal_value"], v); err != nil {
			return err
		}
		m.V = &Value_DecimalValue{DecimalValue: v}
	case raw["date_value"] != nil:
		v := new(DateValue)
		if err := json.Unmarshal(raw["date_value"], v); err != nil {
			return err
		}
		m.V = &Value_DateValue{DateValue: v}
	case raw["datetime_value"] != nil:
		v := new(DatetimeValue)
		if err := json.Unmarshal(raw["datetime_value"], v); err != nil {
			return err
		}
		m.V = &Value_DatetimeValue{DatetimeValue: v}
	case raw["array_value"] != nil:
		v := new(ArrayValue)
		if err := json.Unmarshal(raw["array_value"], v); err != nil {
			return err
		}
		m.V = &Value_ArrayValue{ArrayValue: v}
	}
	return nil
}

func unmarshalInt64(data []byte) (int64, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return strconv.ParseInt(s, 10, 64)
	}
	var v int64
	err := json.Unmarshal(data, &v)
	return v, err
}

func (m *TagSelector) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{}
	if m.ObjectType != ObjectType_OBJECT_TYPE_NOT_SET {
		out["object_type"] = m.ObjectType
	}
	if m.ObjectId != "" {
		out["object_id"] = m.ObjectId
	}
	switch c := m.ObjectCriteria.(type) {
	case *TagSelector_ObjectVersion:
		out["object_version"] = c.ObjectVersion
	case *TagSelector_ObjectAsOf:
		out["object_as_of"] = c.ObjectAsOf
	case *TagSelector_LatestObject:
		out["latest_object"] = c.LatestObject
	}
	switch c := m.TagCriteria.(type) {
	case *TagSelector_TagVersion:
		out["tag_version"] = c.TagVersion
	case *TagSelector_TagAsOf:
		out["tag_as_of"] = c.TagAsOf
	case *TagSelector_LatestTag:
		out["latest_tag"] = c.LatestTag
	}
	return json.Marshal(out)
}

func (m *TagSelector) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = TagSelector{}
	if t, ok := raw["object_type"]; ok {
		if err := json.Unmarshal(t, &m.ObjectType); err != nil {
			return err
		}
	}
	if id, ok := raw["object_id"]; ok {
		if err := json.Unmarshal(id, &m.ObjectId); err != nil {
			return err
		}
	}
	switch {
	case raw["object_version"] != nil:
		var v int32
		if err := json.Unmarshal(raw["object_version"], &v); err != nil {
			return err
		}
		m.ObjectCriteria = &TagSelector_ObjectVersion{ObjectVersion: v}
	case raw["object_as_of"] != nil:
		v := new(DatetimeValue)
		if err := json.Unmarshal(raw["object_as_of"], v); err != nil {
			return err
		}
		m.ObjectCriteria = &TagSelector_ObjectAsOf{ObjectAsOf: v}
	case raw["latest_object"] != nil:
		var v bool
		if err := json.Unmarshal(raw["latest_object"], &v); err != nil {
			return err
		}
		m.ObjectCriteria = &TagSelector_LatestObject{LatestObject: v}
	}
	switch {
	case raw["tag_version"] != nil:
		var v int32
		if err := json.Unmarshal(raw["tag_version"], &v); err != nil {
			return err
		}
		m.TagCriteria = &TagSelector_TagVersion{TagVersion: v}
	case raw["tag_as_of"] != nil:
		v := new(DatetimeValue)
		if err := json.Unmarshal(raw["tag_as_of"], v); err != nil {
			return err
		}
		m.TagCriteria = &TagSelector_TagAsOf{TagAsOf: v}
	case raw["latest_tag"] != nil:
		var v bool
		if err := json.Unmarshal(raw["latest_tag"], &v); err != nil {
			return err
		}
		m.TagCriteria = &TagSelector_LatestTag{LatestTag: v}
	}
	return nil
}

func (m *ObjectDefinition) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{}
	if m.ObjectType != ObjectType_OBJECT_TYPE_NOT_SET {
		out["object_type"] = m.ObjectType
	}
	switch d := m.Definition.(type) {
	case *ObjectDefinition_Data:
		out["data"] = d.Data
	case *ObjectDefinition_File:
		out["file"] = d.File
	case *ObjectDefinition_Storage:
		out["storage"] = d.Storage
	case *ObjectDefinition_Schema:
		out["schema"] = d.Schema
	case *ObjectDefinition_Model:
		out["model"] = d.Model
	case *ObjectDefinition_Flow:
		out["flow"] = d.Flow
	case *ObjectDefinition_Job:
		out["job"] = d.Job
	case *ObjectDefinition_Custom:
		out["custom"] = d.Custom
	}
	return json.Marshal(out)
}

func (m *ObjectDefinition) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = ObjectDefinition{}
	if t, ok := raw["object_type"]; ok {
		if err := json.Unmarshal(t, &m.ObjectType); err != nil {
			return err
		}
	}
	unmarshalVariant := func(key string, target interface{}, wrap func()) error {
		if raw[key] == nil {
			return nil
		}
		if err := json.Unmarshal(raw[key], target); err != nil {
			return err
		}
		wrap()
		return nil
	}
	data2 := new(DataDefinition)
	if err := unmarshalVariant("data", data2, func() {
		m.Definition = &ObjectDefinition_Data{Data: data2}
	}); err != nil {
		return err
	}
	file := new(FileDefinition)
	if err := unmarshalVariant("file", file, func() {
		m.Definition = &ObjectDefinition_File{File: file}
	}); err != nil {
		return err
	}
	store := new(StorageDefinition)
	if err := unmarshalVariant("storage", store, func() {
		m.Definition = &ObjectDefinition_Storage{Storage: store}
	}); err != nil {
		return err
	}
	schema := new(SchemaDefinition)
	if err := unmarshalVariant("schema", schema, func() {
		m.Definition = &ObjectDefinition_Schema{Schema: schema}
	}); err != nil {
		return err
	}
	model := new(ModelDefinition)
	if err := unmarshalVariant("model", model, func() {
		m.Definition = &ObjectDefinition_Model{Model: model}
	}); err != nil {
		return err
	}
	flow := new(FlowDefinition)
	if err := unmarshalVariant("flow", flow, func() {
		m.Definition = &ObjectDefinition_Flow{Flow: flow}
	}); err != nil {
		return err
	}
	job := new(JobDefinition)
	if err := unmarshalVariant("job", job, func() {
		m.Definition = &ObjectDefinition_Job{Job: job}
	}); err != nil {
		return err
	}
	custom := new(CustomDefinition)
	return unmarshalVariant("custom", custom, func() {
		m.Definition = &ObjectDefinition_Custom{Custom: custom}
	})
}

func (m *DataDefinition) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{}
	switch s := m.SchemaSpecifier.(type) {
	case *DataDefinition_Schema:
		out["schema"] = s.Schema
	case *DataDefinition_SchemaId:
		out["schema_id"] = s.SchemaId
	}
	if len(m.Parts) > 0 {
		out["parts"] = m.Parts
	}
	if m.StorageId != nil {
		out["storage_id"] = m.StorageId
	}
	return json.Marshal(out)
}

func (m *DataDefinition) UnmarshalJSON(data []byte) error {
	var raw struct {
		Schema    *SchemaDefinition         `json:"schema"`
		SchemaId  *TagSelector              `json:"schema_id"`
		Parts     map[string]*DataPartition `json:"parts"`
		StorageId *TagSelector              `json:"storage_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = DataDefinition{Parts: raw.Parts, StorageId: raw.StorageId}
	switch {
	case raw.Schema != nil:
		m.SchemaSpecifier = &DataDefinition_Schema{Schema: raw.Schema}
	case raw.SchemaId != nil:
		m.SchemaSpecifier = &DataDefinition_SchemaId{SchemaId: raw.SchemaId}
	}
	return nil
}

func (m *SearchExpression) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{}
	switch e := m.Expr.(type) {
	case *SearchExpression_Term:
		out["term"] = e.Term
	case *SearchExpression_Logical:
		out["logical"] = e.Logical
	}
	return json.Marshal(out)
}

func (m *SearchExpression) UnmarshalJSON(data []byte) error {
	var raw struct {
		Term    *SearchTerm        `json:"term"`
		Logical *LogicalExpression `json:"logical"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = SearchExpression{}
	switch {
	case raw.Term != nil:
		m.Expr = &SearchExpression_Term{Term: raw.Term}
	case raw.Logical != nil:
		m.Expr = &SearchExpression_Logical{Logical: raw.Logical}
	}
	return nil
}
