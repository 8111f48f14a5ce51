package services

import (
	"context"
	"fmt"

	"classtrack/internal/client/models"
)

func (s *APIService) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	var out []models.Reminder
	if err := s.api.Get(ctx, "/reminders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *APIService) CreateReminder(ctx context.Context, reminder models.Reminder) (*models.Reminder, error) {
	var out models.Reminder
	if err := s.api.Post(ctx, "/reminders", reminder, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *APIService) UpdateReminder(ctx context.Context, id int, reminder models.Reminder) (*models.Reminder, error) {
	var out models.Reminder
	if err := s.api.Put(ctx, fmt.Sprintf("/reminders/%d", id), reminder, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *APIService) DeleteReminder(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/reminders/%d", id), nil)
}

// MarkReminderRead marks a single reminder as seen.
func (s *APIService) MarkReminderRead(ctx context.Context, id int) (*models.Reminder, error) {
	var out models.Reminder
	if err := s.api.Patch(ctx, fmt.Sprintf("/reminders/%d/read", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
