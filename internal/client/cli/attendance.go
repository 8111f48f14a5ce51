package cli

import (
	"context"
	"fmt"
	"os"

	"classtrack/internal/client/models"
	"classtrack/internal/client/services"
)

// Attendance lists records, optionally narrowed by subject/status/date
// filters. Filter keys and values go to the server verbatim.
func (a *App) Attendance(ctx context.Context) error {
	filters := services.Filters{}
	for _, key := range []string{"subject_id", "status", "start_date", "end_date"} {
		value, err := GetOptionalText(a.reader, "Filter "+key, os.Stdout)
		if err != nil {
			return err
		}
		if value != "" {
			filters[key] = value
		}
	}

	records, err := a.api.ListAttendance(ctx, filters)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(records) == 0 {
		fmt.Println("No attendance records.")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%3d  %s  subject %d  %-7s  %s\n", r.ID, r.Date, r.SubjectID, r.Status, r.Notes)
	}
	return nil
}

func (a *App) Mark(ctx context.Context) error {
	subjectID, err := getID(a.reader, "Subject id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	status, err := getSimpleText(a.reader, "Status (Present/Absent)", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := GetOptionalText(a.reader, "Notes", os.Stdout)
	if err != nil {
		return err
	}

	record, err := a.api.MarkAttendance(ctx, models.Attendance{
		SubjectID: subjectID,
		Status:    status,
		Notes:     notes,
	})
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Marked %s for subject %d on %s\n", record.Status, record.SubjectID, record.Date)
	return nil
}

func (a *App) AttendanceStats(ctx context.Context) error {
	stats, err := a.api.AttendanceStats(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	printJSON(stats)
	return nil
}

func (a *App) Trends(ctx context.Context) error {
	period, err := GetOptionalText(a.reader, "Period (week/month/semester)", os.Stdout)
	if err != nil {
		return err
	}
	if period == "" {
		period = "week"
	}

	trends, err := a.api.AttendanceTrends(ctx, period)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	printJSON(trends)
	return nil
}

// Export downloads an attendance report and saves it to the working
// directory.
func (a *App) Export(ctx context.Context) error {
	format, err := GetOptionalText(a.reader, "Format (pdf/csv)", os.Stdout)
	if err != nil {
		return err
	}
	if format == "" {
		format = "pdf"
	}

	filters := services.Filters{}
	if subject, err := GetOptionalText(a.reader, "Filter subject_id", os.Stdout); err != nil {
		return err
	} else if subject != "" {
		filters["subject_id"] = subject
	}

	body, _, err := a.api.ExportAttendance(ctx, format, filters)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	filename := "attendance-export." + format
	if err := os.WriteFile(filename, body, 0o600); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Saved %s (%d bytes)\n", filename, len(body))
	return nil
}
