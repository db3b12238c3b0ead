// Package normalize converts raw stored documents into the external
// representation served by the API: the store's internal identifier is
// renamed to "id" and stringified, and timestamp values are rendered as
// ISO-8601 strings. It is applied to every document that leaves the
// service boundary and never to internal representations.
package normalize

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document normalizes a single stored document. A nil input passes
// through as nil rather than erroring.
func Document(doc bson.M) map[string]interface{} {
	if doc == nil {
		return nil
	}

	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = value(v)
	}
	if id, ok := doc["_id"]; ok {
		out["id"] = IDString(id)
	}
	return out
}

// Documents normalizes a result set, always yielding a non-nil slice so
// empty listings serialize as [] rather than null.
func Documents(docs []bson.M) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Document(doc))
	}
	return out
}

// IDString renders a store identifier as an opaque string.
func IDString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// value renders timestamps as ISO-8601 strings and flattens the
// driver's document types into plain maps and slices so nested values
// (such as result value mappings) serialize as JSON objects.
func value(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case primitive.D:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = value(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[k] = value(e)
		}
		return m
	case primitive.A:
		s := make([]interface{}, len(t))
		for i, e := range t {
			s[i] = value(e)
		}
		return s
	default:
		return v
	}
}
