package database

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RefKind int

const (
	// RefOpaque addresses a lesson by the store-generated ObjectID.
	RefOpaque RefKind = iota
	// RefNumeric addresses a lesson by the numeric id assigned at seeding time.
	RefNumeric
	// RefRaw carries the client value as-is when neither format applies.
	RefRaw
)

// LessonRef is a lookup key for one catalog entry. Catalog documents are
// addressable either by the store's own _id or by their human-assigned
// numeric id, depending on where the reference came from, so every lookup
// goes through the same classification.
type LessonRef struct {
	Kind    RefKind
	Opaque  primitive.ObjectID
	Numeric float64
	Raw     interface{}
}

// ParseLessonRef classifies a decoded JSON value as a lesson reference.
// Tiers are tried in order: valid ObjectID hex, then number (or numeric
// string), then the raw value as a last resort.
func ParseLessonRef(value interface{}) LessonRef {
	switch ref := value.(type) {
	case string:
		if oid, err := primitive.ObjectIDFromHex(ref); err == nil {
			return LessonRef{Kind: RefOpaque, Opaque: oid}
		}
		if n, err := strconv.ParseFloat(ref, 64); err == nil {
			return LessonRef{Kind: RefNumeric, Numeric: n}
		}
		return LessonRef{Kind: RefRaw, Raw: ref}
	case float64:
		return LessonRef{Kind: RefNumeric, Numeric: ref}
	case int:
		return LessonRef{Kind: RefNumeric, Numeric: float64(ref)}
	case int32:
		return LessonRef{Kind: RefNumeric, Numeric: float64(ref)}
	case int64:
		return LessonRef{Kind: RefNumeric, Numeric: float64(ref)}
	default:
		return LessonRef{Kind: RefRaw, Raw: value}
	}
}

// Filter renders the reference as a document filter.
func (r LessonRef) Filter() bson.M {
	switch r.Kind {
	case RefOpaque:
		return bson.M{"_id": r.Opaque}
	case RefNumeric:
		return bson.M{"id": r.Numeric}
	default:
		return bson.M{"id": r.Raw}
	}
}

func (r LessonRef) String() string {
	switch r.Kind {
	case RefOpaque:
		return "_id:" + r.Opaque.Hex()
	case RefNumeric:
		return "id:" + strconv.FormatFloat(r.Numeric, 'f', -1, 64)
	default:
		return fmt.Sprintf("raw:%v", r.Raw)
	}
}
