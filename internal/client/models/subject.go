package models

// Subject is a course the student tracks attendance for. The trailing stats
// fields are computed server-side and included on list responses.
type Subject struct {
	ID               int     `json:"id,omitempty"`
	Name             string  `json:"name,omitempty"`
	Type             string  `json:"type,omitempty"` // theory/lab/tutorial
	TotalClasses     int     `json:"total_classes,omitempty"`
	AttendedClasses  int     `json:"attended_classes,omitempty"`
	TargetPercentage float64 `json:"target_percentage,omitempty"`
	Color            string  `json:"color,omitempty"`
	Credits          int     `json:"credits,omitempty"`
	Semester         string  `json:"semester,omitempty"`
	IsArchived       bool    `json:"is_archived,omitempty"`
	CreatedAt        string  `json:"created_at,omitempty"`
	UpdatedAt        string  `json:"updated_at,omitempty"`

	AttendancePercentage   float64 `json:"attendance_percentage,omitempty"`
	ClassesNeededForTarget int     `json:"classes_needed_for_target,omitempty"`
	CanAffordToMiss        int     `json:"can_afford_to_miss,omitempty"`
	Status                 string  `json:"status,omitempty"` // good/warning
}
