package services

import (
	"context"
	"fmt"

	"classtrack/internal/client/models"
)

func (s *APIService) ListTasks(ctx context.Context, filters Filters) ([]models.Task, error) {
	var out []models.Task
	if err := s.api.Get(ctx, "/tasks", filters, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *APIService) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	var out models.Task
	if err := s.api.Post(ctx, "/tasks", task, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *APIService) UpdateTask(ctx context.Context, id int, task models.Task) (*models.Task, error) {
	var out models.Task
	if err := s.api.Put(ctx, fmt.Sprintf("/tasks/%d", id), task, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *APIService) DeleteTask(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/tasks/%d", id), nil)
}

func (s *APIService) TaskStats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.api.Get(ctx, "/tasks/stats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
