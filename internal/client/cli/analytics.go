package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

func (a *App) Dashboard(ctx context.Context) error {
	data, err := a.api.Dashboard(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	printJSON(data)
	return nil
}

func (a *App) Insights(ctx context.Context) error {
	data, err := a.api.ProductivityInsights(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	printJSON(data)
	return nil
}

// Calendar shows the attendance calendar for a month, defaulting to the
// current one.
func (a *App) Calendar(ctx context.Context) error {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if text, err := GetOptionalText(a.reader, "Year", os.Stdout); err != nil {
		return err
	} else if text != "" {
		if _, err := fmt.Sscanf(text, "%d", &year); err != nil {
			fmt.Printf("not a year: %q\n", text)
			return err
		}
	}
	if text, err := GetOptionalText(a.reader, "Month (1-12)", os.Stdout); err != nil {
		return err
	} else if text != "" {
		if _, err := fmt.Sscanf(text, "%d", &month); err != nil {
			fmt.Printf("not a month: %q\n", text)
			return err
		}
	}

	data, err := a.api.MonthCalendar(ctx, year, month)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	printJSON(data)
	return nil
}
