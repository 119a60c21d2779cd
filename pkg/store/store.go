// Package store is a thin document-store adapter. Records travel as plain
// maps; timestamp fields are written as ISO-8601 strings and parsed back on
// read, while rows that carry native date values still round-trip.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sort orders a Find by a single field.
type Sort struct {
	Field string
	Desc  bool
}

type Store interface {
	Insert(ctx context.Context, collection string, doc map[string]any) error
	Find(ctx context.Context, collection string, filter map[string]any, sort *Sort, limit int64) ([]map[string]any, error)
	// Upsert replaces the document matching key, inserting when absent.
	Upsert(ctx context.Context, collection string, key map[string]any, doc map[string]any) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// isoFormat keeps a fixed-width fraction so the textual form sorts
// chronologically under plain string comparison.
const isoFormat = "2006-01-02T15:04:05.000000Z07:00"

// EncodeTime renders a timestamp the way documents store it.
func EncodeTime(t time.Time) string {
	return t.UTC().Format(isoFormat)
}

// DecodeTime accepts both the textual ISO-8601 form and native date values
// left behind by older writers.
func DecodeTime(v any) (time.Time, error) {
	switch tv := v.(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, tv); err == nil {
			return t, nil
		}
		t, err := time.Parse(time.RFC3339, tv)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse timestamp %q: %w", tv, err)
		}
		return t, nil
	case time.Time:
		return tv.UTC(), nil
	case primitive.DateTime:
		return tv.Time().UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

// AsString reads a string field out of a decoded document.
func AsString(v any) string {
	s, _ := v.(string)
	return s
}

// AsFloat reads a numeric field out of a decoded document. JSON decoding
// yields float64; Mongo may hand back int32/int64 for whole numbers.
func AsFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// AsStrings reads a string-list field out of a decoded document.
func AsStrings(v any) []string {
	switch l := v.(type) {
	case []string:
		return l
	case []any:
		out := make([]string, 0, len(l))
		for _, e := range l {
			out = append(out, AsString(e))
		}
		return out
	case primitive.A:
		out := make([]string, 0, len(l))
		for _, e := range l {
			out = append(out, AsString(e))
		}
		return out
	default:
		return nil
	}
}
