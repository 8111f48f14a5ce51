package services

import (
	"context"
	"fmt"

	"classtrack/internal/client/models"
)

func (s *APIService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var out []models.Subject
	if err := s.api.Get(ctx, "/subjects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *APIService) CreateSubject(ctx context.Context, subject models.Subject) (*models.Subject, error) {
	var out models.Subject
	if err := s.api.Post(ctx, "/subjects", subject, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *APIService) UpdateSubject(ctx context.Context, id int, subject models.Subject) (*models.Subject, error) {
	var out models.Subject
	if err := s.api.Put(ctx, fmt.Sprintf("/subjects/%d", id), subject, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *APIService) DeleteSubject(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/subjects/%d", id), nil)
}
