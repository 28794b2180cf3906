package database

import (
	"context"

	"after-school-api/model"
)

// LessonStore is the catalog capability handed to the services. The live
// implementation runs on a shared Mongo collection; tests substitute an
// in-memory fake.
type LessonStore interface {
	// List returns every lesson in natural store order.
	List(ctx context.Context) ([]model.Lesson, error)

	// Search returns lessons matching term case-insensitively on subject,
	// location and icon, extended with exact price/spaces equality when term
	// reads as a number.
	Search(ctx context.Context, term string) ([]model.Lesson, error)

	// UpdateFields overwrites the given fields on the referenced lesson,
	// leaving all others untouched, and reports how many lessons matched.
	UpdateFields(ctx context.Context, ref LessonRef, fields map[string]interface{}) (int64, error)

	// DecrementSpaces atomically lowers the referenced lesson's spaces by
	// qty. There is no floor: spaces may cross below zero.
	DecrementSpaces(ctx context.Context, ref LessonRef, qty int64) (int64, error)

	// ReplaceAll wipes the catalog and installs the given lessons.
	ReplaceAll(ctx context.Context, lessons []model.Lesson) error
}

// OrderStore is the append-only order log. Orders are never read back by the
// running service; Clear exists for the seeding utility.
type OrderStore interface {
	Insert(ctx context.Context, order model.Order) error
	Clear(ctx context.Context) error
}
