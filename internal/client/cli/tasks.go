package cli

import (
	"context"
	"fmt"
	"os"

	"classtrack/internal/client/models"
	"classtrack/internal/client/services"
)

func (a *App) Tasks(ctx context.Context) error {
	filters := services.Filters{}
	for _, key := range []string{"completed", "priority", "category"} {
		value, err := GetOptionalText(a.reader, "Filter "+key, os.Stdout)
		if err != nil {
			return err
		}
		if value != "" {
			filters[key] = value
		}
	}

	tasks, err := a.api.ListTasks(ctx, filters)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	for _, task := range tasks {
		fmt.Printf("%3d  [%s]  %-30s %-8s due %s\n",
			task.ID, checkmark(task.Completed), task.Title, task.Priority, task.DueDate)
	}
	return nil
}

func (a *App) AddTask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	dueDate, err := GetOptionalText(a.reader, "Due date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	priority, err := GetOptionalText(a.reader, "Priority (low/medium/high/urgent)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.CreateTask(ctx, models.Task{
		Title:    title,
		DueDate:  dueDate,
		Priority: priority,
	})
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Created task %d: %s\n", created.ID, created.Title)
	return nil
}

// CompleteTask marks a task as done via a partial update.
func (a *App) CompleteTask(ctx context.Context) error {
	id, err := getID(a.reader, "Task id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	updated, err := a.api.UpdateTask(ctx, id, models.Task{Completed: true})
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Done: %s\n", updated.Title)
	return nil
}

func (a *App) RemoveTask(ctx context.Context) error {
	id, err := getID(a.reader, "Task id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.api.DeleteTask(ctx, id); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Deleted.")
	return nil
}

func (a *App) TaskStats(ctx context.Context) error {
	stats, err := a.api.TaskStats(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	printJSON(stats)
	return nil
}
