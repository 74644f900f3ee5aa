package entity

import (
	"math"
	"time"
)

// Document is a schemaless record read from the document store. Data holds
// the raw field values as decoded by the store client: string, bool, int64,
// float64, time.Time, nested maps and slices, or nil.
type Document struct {
	ID   string
	Data map[string]interface{}
}

func NewDocument(id string, data map[string]interface{}) *Document {
	if data == nil {
		data = map[string]interface{}{}
	}
	return &Document{ID: id, Data: data}
}

// Fields returns a shallow copy of the document data with the document id
// stored under key. The id wins over a stored field of the same name.
func (d *Document) Fields(key string) map[string]interface{} {
	out := make(map[string]interface{}, len(d.Data)+1)
	for k, v := range d.Data {
		out[k] = v
	}
	out[key] = d.ID
	return out
}

// Clone returns a shallow copy of Data without the named fields.
func (d *Document) Clone(without ...string) map[string]interface{} {
	out := make(map[string]interface{}, len(d.Data))
	for k, v := range d.Data {
		out[k] = v
	}
	for _, k := range without {
		delete(out, k)
	}
	return out
}

// String returns the field when it holds a string.
func (d *Document) String(key string) (string, bool) {
	s, ok := d.Data[key].(string)
	return s, ok
}

// Number returns numeric fields as float64 and 0 for anything else.
func (d *Document) Number(key string) float64 {
	switch v := d.Data[key].(type) {
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case float64:
		if math.IsNaN(v) {
			return 0
		}
		return v
	case float32:
		return float64(v)
	default:
		return 0
	}
}

// Truthy coerces a possibly absent field to a boolean: false, zero numbers,
// the empty string and missing values are false, everything else is true.
func (d *Document) Truthy(key string) bool {
	switch v := d.Data[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int64, int, int32, float32, float64:
		return d.Number(key) != 0
	default:
		return true
	}
}

// Time returns timestamp fields. Epoch millisecond numbers are accepted too.
func (d *Document) Time(key string) (time.Time, bool) {
	switch v := d.Data[key].(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case int64, int, float64:
		ms := d.Number(key)
		if ms == 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(ms)).UTC(), true
	default:
		return time.Time{}, false
	}
}
