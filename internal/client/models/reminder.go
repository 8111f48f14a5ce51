package models

// Reminder is a scheduled notification, optionally linked to a task or a
// subject.
type Reminder struct {
	ID           int    `json:"id,omitempty"`
	Title        string `json:"title,omitempty"`
	Message      string `json:"message,omitempty"`
	ReminderTime string `json:"reminder_time,omitempty"` // ISO 8601
	ReminderType string `json:"reminder_type,omitempty"` // general/task/attendance/exam
	Recurrence   string `json:"recurrence,omitempty"`    // none/daily/weekly/monthly
	TaskID       int    `json:"task_id,omitempty"`
	SubjectID    int    `json:"subject_id,omitempty"`
	Active       bool   `json:"active,omitempty"`
	Sent         bool   `json:"sent,omitempty"`
	IsDue        bool   `json:"is_due,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}
