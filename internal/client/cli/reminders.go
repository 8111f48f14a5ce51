package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"classtrack/internal/client/models"
)

func (a *App) Reminders(ctx context.Context) error {
	reminders, err := a.api.ListReminders(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(reminders) == 0 {
		fmt.Println("No reminders.")
		return nil
	}
	for _, r := range reminders {
		fmt.Printf("%3d  [%s]  %-25s at %s  %s\n",
			r.ID, checkmark(r.Sent), r.Title, r.ReminderTime, r.Message)
	}
	return nil
}

func (a *App) AddReminder(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	message, err := getSimpleText(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}
	when, err := getSimpleText(a.reader, "When (YYYY-MM-DDTHH:MM:SS)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.CreateReminder(ctx, models.Reminder{
		Title:        title,
		Message:      message,
		ReminderTime: when,
	})
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Created reminder %d: %s\n", created.ID, created.Title)
	return nil
}

func (a *App) ReadReminder(ctx context.Context) error {
	id, err := getID(a.reader, "Reminder id", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if _, err := a.api.MarkReminderRead(ctx, id); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Marked as read.")
	return nil
}

// StartReminderWatcher periodically checks for due reminders while a
// session is active and announces them on the console. It exits when the
// context is cancelled.
func (a *App) StartReminderWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastDue := 0
	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn() {
				continue
			}

			reminders, err := a.api.ListReminders(ctx)
			if err != nil {
				a.log.Debug(ctx, "reminder poll failed", "error", err)
				continue
			}

			due := 0
			for _, r := range reminders {
				if r.IsDue {
					due++
				}
			}
			if due > 0 && due != lastDue {
				printlnFn(fmt.Sprintf("You have %d due reminder(s). Type 'reminders' to see them.", due))
			}
			lastDue = due

		case <-ctx.Done():
			return
		}
	}
}
