package models

// Task priorities accepted by the server.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task is a to-do item, optionally linked to a subject. IsOverdue and
// DaysUntilDue are server-computed.
type Task struct {
	ID             int      `json:"id,omitempty"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	DueDate        string   `json:"due_date,omitempty"`
	Completed      bool     `json:"completed,omitempty"`
	CompletedAt    string   `json:"completed_at,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	Category       string   `json:"category,omitempty"` // study/assignment/exam/personal
	EstimatedHours float64  `json:"estimated_hours,omitempty"`
	SubjectID      int      `json:"subject_id,omitempty"`
	IsOverdue      bool     `json:"is_overdue,omitempty"`
	DaysUntilDue   *int     `json:"days_until_due,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
}
