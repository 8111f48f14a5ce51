package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	Subjects(ctx context.Context) error
	AddSubject(ctx context.Context) error
	RemoveSubject(ctx context.Context) error
	Attendance(ctx context.Context) error
	Mark(ctx context.Context) error
	AttendanceStats(ctx context.Context) error
	Trends(ctx context.Context) error
	Export(ctx context.Context) error
	Tasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	CompleteTask(ctx context.Context) error
	RemoveTask(ctx context.Context) error
	TaskStats(ctx context.Context) error
	Reminders(ctx context.Context) error
	AddReminder(ctx context.Context) error
	ReadReminder(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Insights(ctx context.Context) error
	Calendar(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the classtrack CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ct> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, subjects, addsubject, rmsubject,")
				printlnFn("  attendance, mark, stats, trends, export, tasks, addtask, done, rmtask,")
				printlnFn("  taskstats, reminders, remind, read, dashboard, insights, calendar, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "subjects":
			_ = a.Subjects(ctx)

		case "addsubject":
			_ = a.AddSubject(ctx)

		case "rmsubject":
			_ = a.RemoveSubject(ctx)

		case "attendance":
			_ = a.Attendance(ctx)

		case "mark":
			_ = a.Mark(ctx)

		case "stats":
			_ = a.AttendanceStats(ctx)

		case "trends":
			_ = a.Trends(ctx)

		case "export":
			_ = a.Export(ctx)

		case "t", "tasks":
			_ = a.Tasks(ctx)

		case "addtask":
			_ = a.AddTask(ctx)

		case "done":
			_ = a.CompleteTask(ctx)

		case "rmtask":
			_ = a.RemoveTask(ctx)

		case "taskstats":
			_ = a.TaskStats(ctx)

		case "reminders":
			_ = a.Reminders(ctx)

		case "remind":
			_ = a.AddReminder(ctx)

		case "read":
			_ = a.ReadReminder(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "insights":
			_ = a.Insights(ctx)

		case "calendar":
			_ = a.Calendar(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn(fmt.Sprintf("Unknown command: %s (type 'help')", cmd))
		}
	}
}
