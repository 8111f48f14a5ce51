package services

import (
	"context"
	"fmt"

	"classtrack/internal/client/models"
)

func (s *APIService) ListAttendance(ctx context.Context, filters Filters) ([]models.Attendance, error) {
	var out []models.Attendance
	if err := s.api.Get(ctx, "/attendance", filters, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *APIService) MarkAttendance(ctx context.Context, record models.Attendance) (*models.Attendance, error) {
	var out models.Attendance
	if err := s.api.Post(ctx, "/attendance", record, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *APIService) UpdateAttendance(ctx context.Context, id int, record models.Attendance) (*models.Attendance, error) {
	var out models.Attendance
	if err := s.api.Put(ctx, fmt.Sprintf("/attendance/%d", id), record, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *APIService) DeleteAttendance(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/attendance/%d", id), nil)
}

// AttendanceStats returns the aggregate attendance statistics payload.
// The shape is server-defined; it is rendered as received.
func (s *APIService) AttendanceStats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.api.Get(ctx, "/attendance/stats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *APIService) AttendanceTrends(ctx context.Context, period string) (map[string]any, error) {
	var out map[string]any
	if err := s.api.Get(ctx, "/attendance/trends", Filters{"period": period}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportAttendance downloads a report in the requested format (e.g. "pdf"
// or "csv"). The body is returned raw together with its content type.
func (s *APIService) ExportAttendance(ctx context.Context, format string, filters Filters) ([]byte, string, error) {
	query := Filters{"format": format}
	for k, v := range filters {
		query[k] = v
	}
	return s.api.GetRaw(ctx, "/attendance/export", query)
}
