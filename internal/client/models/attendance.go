package models

// Attendance statuses accepted by the server.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance is a single attendance record for one subject on one date.
type Attendance struct {
	ID        int    `json:"id,omitempty"`
	SubjectID int    `json:"subject_id,omitempty"`
	Date      string `json:"date,omitempty"` // YYYY-MM-DD
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
