package services

import (
	"context"
	"fmt"
)

// Analytics payloads are server-defined aggregates; the client renders them
// as received.

func (s *APIService) Dashboard(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.api.Get(ctx, "/analytics/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *APIService) AttendanceAnalytics(ctx context.Context, period string) (map[string]any, error) {
	var out map[string]any
	if err := s.api.Get(ctx, "/analytics/attendance", Filters{"period": period}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *APIService) TaskAnalytics(ctx context.Context, period string) (map[string]any, error) {
	var out map[string]any
	if err := s.api.Get(ctx, "/analytics/tasks", Filters{"period": period}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *APIService) ProductivityInsights(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.api.Get(ctx, "/analytics/insights", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MonthCalendar returns the per-day attendance calendar for one month.
func (s *APIService) MonthCalendar(ctx context.Context, year, month int) (map[string]any, error) {
	var out map[string]any
	if err := s.api.Get(ctx, fmt.Sprintf("/calendar/%d/%d", year, month), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
