package cli

import (
	"context"
	"fmt"
	"os"

	"classtrack/internal/client/models"
)

func (a *App) Subjects(ctx context.Context) error {
	subjects, err := a.api.ListSubjects(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(subjects) == 0 {
		fmt.Println("No subjects yet.")
		return nil
	}
	for _, s := range subjects {
		fmt.Printf("%3d  %-25s %-10s %5.1f%%  (target %.0f%%)\n",
			s.ID, s.Name, s.Type, s.AttendancePercentage, s.TargetPercentage)
	}
	return nil
}

func (a *App) AddSubject(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Subject name", os.Stdout)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (theory/lab/tutorial)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.CreateSubject(ctx, models.Subject{Name: name, Type: kind})
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Created subject %d: %s\n", created.ID, created.Name)
	return nil
}

func (a *App) RemoveSubject(ctx context.Context) error {
	id, err := getID(a.reader, "Subject id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.api.DeleteSubject(ctx, id); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Deleted.")
	return nil
}
