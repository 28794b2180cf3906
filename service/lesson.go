package service

import (
	"context"
	"errors"

	"after-school-api/database"
)

var (
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrNoUpdatableFields = errors.New("no updatable lesson field supplied")
)

// updatableLessonFields is the fixed allow-list of client-writable fields;
// anything else in an update payload is dropped silently.
var updatableLessonFields = map[string]bool{
	"subject":  true,
	"location": true,
	"price":    true,
	"spaces":   true,
	"icon":     true,
	"id":       true,
}

// LessonService edits catalog entries directly.
type LessonService struct {
	lessons database.LessonStore
}

func NewLessonService(lessons database.LessonStore) *LessonService {
	return &LessonService{lessons: lessons}
}

// Update applies a partial overwrite of the allow-listed fields to the lesson
// the reference resolves to. Fields not present in the payload keep their
// stored values; there is no upsert.
func (s *LessonService) Update(ctx context.Context, ref database.LessonRef, fields map[string]interface{}) error {
	allowed := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if updatableLessonFields[key] {
			allowed[key] = value
		}
	}

	if len(allowed) == 0 {
		return ErrNoUpdatableFields
	}

	matched, err := s.lessons.UpdateFields(ctx, ref, allowed)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrLessonNotFound
	}

	return nil
}
