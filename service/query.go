package service

import (
	"context"

	"after-school-api/database"
	"after-school-api/model"
)

// QueryService exposes read access to the lesson catalog.
type QueryService struct {
	lessons database.LessonStore
}

func NewQueryService(lessons database.LessonStore) *QueryService {
	return &QueryService{lessons: lessons}
}

func (s *QueryService) List(ctx context.Context) ([]model.Lesson, error) {
	return s.lessons.List(ctx)
}

// Search behaves exactly as List when term is empty.
func (s *QueryService) Search(ctx context.Context, term string) ([]model.Lesson, error) {
	if term == "" {
		return s.lessons.List(ctx)
	}

	return s.lessons.Search(ctx, term)
}
