// Package cli implements the interactive front end of the classtrack
// client: a REPL that drives the auth and resource facades and owns the
// session state (anonymous vs. authenticated).
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"classtrack/internal/client/api"
	"classtrack/internal/client/config"
	"classtrack/internal/client/models"
	"classtrack/internal/client/services"
	"classtrack/internal/client/token"
	"classtrack/internal/filex"
	"classtrack/internal/logging"
)

const appName = "classtrack"

type App struct {
	config *config.Config
	tokens token.Store
	auth   services.AuthService
	api    *services.APIService
	log    logging.Logger

	// user is the session state: nil while anonymous, set after a
	// successful login or registration, dropped on logout or when the
	// server rejects the credential.
	user   *models.User
	reader *bufio.Reader
}

// NewApp wires the token store, the two endpoint clients (resources under
// /api, auth under /api/auth) and the facades. Both clients share the token
// store and the auth-rejected hook, so a 401 on any call lands the user
// back at the login prompt.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	tokenPath := cfg.TokenFile
	if tokenPath == "" {
		dir, err := filex.EnsureUserConfigDir(appName)
		if err != nil {
			return nil, fmt.Errorf("token store location: %w", err)
		}
		tokenPath = filepath.Join(dir, "token")
	}
	tokens := token.NewFile(tokenPath)

	a := &App{
		config: cfg,
		tokens: tokens,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}

	resourceClient := api.New(cfg.ServerAddr+"/api", tokens,
		api.WithOnAuthRejected(a.handleAuthRejected),
		api.WithLogger(log.With("component", "api")))
	authClient := api.New(cfg.ServerAddr+"/api/auth", tokens,
		api.WithOnAuthRejected(a.handleAuthRejected),
		api.WithLogger(log.With("component", "auth")))

	a.auth = services.NewAuthService(authClient, tokens)
	a.api = services.NewAPIService(resourceClient)
	return a, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// handleAuthRejected is the navigation port: the pipeline has already
// cleared the token, so drop the in-memory session and tell the user.
// The next prompt is the login entry point.
func (a *App) handleAuthRejected() {
	a.user = nil
	fmt.Println("Session expired, please log in again.")
}

func (a *App) Run(ctx context.Context) {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartReminderWatcher(watchCtx, a.config.ReminderPollInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.user == nil {
		return "anonymous"
	}
	return a.user.Name
}
