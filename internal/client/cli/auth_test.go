package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"classtrack/internal/client/models"
	"classtrack/internal/client/token"
)

// stubInputs replaces the interactive input seams. Text prompts mentioning
// "email" get the email value, everything else gets the text value.
func stubInputs(t *testing.T, email, text string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if strings.Contains(strings.ToLower(prompt), "email") {
			return email, nil
		}
		return text, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuth struct {
	// Login
	loginEmail string
	loginPass  string
	loginResp  *models.AuthResponse
	loginErr   error

	// Register
	regEmail string
	regPass  string
	regName  string
	regResp  *models.AuthResponse
	regErr   error

	// CurrentUser
	currentUser *models.User
	currentErr  error

	// UpdateProfile
	lastUpdate models.ProfileUpdate
	updated    *models.User
	updateErr  error

	// Logout
	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	f.loginEmail, f.loginPass = email, password
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, email, password, name string) (*models.AuthResponse, error) {
	f.regEmail, f.regPass, f.regName = email, password, name
	return f.regResp, f.regErr
}

func (f *fakeAuth) CurrentUser(context.Context) (*models.User, error) {
	return f.currentUser, f.currentErr
}

func (f *fakeAuth) UpdateProfile(_ context.Context, update models.ProfileUpdate) (*models.User, error) {
	f.lastUpdate = update
	return f.updated, f.updateErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func TestLogin_Success_SetsSession(t *testing.T) {
	f := &fakeAuth{loginResp: &models.AuthResponse{
		Token: "t1",
		User:  models.User{ID: 1, Name: "Alice"},
	}}
	a := &App{auth: f, tokens: token.NewMemory()}

	restore := stubInputs(t, "alice@example.org", "", []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "alice@example.org" || f.loginPass != "secret" {
		t.Fatalf("Login args mismatch: %q %q", f.loginEmail, f.loginPass)
	}
	if !a.isLoggedIn() || a.user.Name != "Alice" {
		t.Fatalf("session not established: %+v", a.user)
	}
}

func TestLogin_InvalidEmail_NoRequestIssued(t *testing.T) {
	f := &fakeAuth{}
	a := &App{auth: f, tokens: token.NewMemory()}

	restore := stubInputs(t, "not-an-email", "", []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want validation error")
	}
	if f.loginEmail != "" {
		t.Fatalf("facade must not be called on invalid input")
	}
	if a.isLoggedIn() {
		t.Fatalf("session must stay anonymous")
	}
}

func TestLogin_ServiceError(t *testing.T) {
	f := &fakeAuth{loginErr: errors.New("invalid credentials")}
	a := &App{auth: f, tokens: token.NewMemory()}

	restore := stubInputs(t, "alice@example.org", "", []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want error from facade")
	}
	if a.isLoggedIn() {
		t.Fatalf("session must stay anonymous after failed login")
	}
}

func TestRegister_NoTokenIssued(t *testing.T) {
	f := &fakeAuth{regResp: &models.AuthResponse{Message: "User registered successfully"}}
	a := &App{auth: f, tokens: token.NewMemory()}

	restore := stubInputs(t, "alice@example.org", "Alice", []byte("secret"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regEmail != "alice@example.org" || f.regName != "Alice" {
		t.Fatalf("Register args mismatch: %q %q", f.regEmail, f.regName)
	}
	if a.isLoggedIn() {
		t.Fatalf("no token in response, session must stay anonymous")
	}
}

func TestRegister_TokenIssued_SetsSession(t *testing.T) {
	f := &fakeAuth{regResp: &models.AuthResponse{
		Token: "t2",
		User:  models.User{ID: 2, Name: "Bob"},
	}}
	a := &App{auth: f, tokens: token.NewMemory()}

	restore := stubInputs(t, "bob@example.org", "Bob", []byte("secret"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if !a.isLoggedIn() {
		t.Fatalf("token issued, session must be authenticated")
	}
}

func TestRegister_ShortPassword_NoRequestIssued(t *testing.T) {
	f := &fakeAuth{}
	a := &App{auth: f, tokens: token.NewMemory()}

	restore := stubInputs(t, "alice@example.org", "Alice", []byte("abc"))
	defer restore()

	if err := a.Register(context.Background()); err == nil {
		t.Fatalf("want validation error")
	}
	if f.regEmail != "" {
		t.Fatalf("facade must not be called on invalid input")
	}
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{}
	a := &App{auth: f, tokens: token.NewMemory(), user: &models.User{ID: 1, Name: "Alice"}}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("Logout not delegated to the auth facade")
	}
	if a.isLoggedIn() {
		t.Fatalf("session not dropped")
	}
}

func TestLogout_ErrorPropagates(t *testing.T) {
	f := &fakeAuth{logoutErr: errors.New("disk full")}
	a := &App{auth: f, tokens: token.NewMemory(), user: &models.User{ID: 1}}

	if err := a.Logout(context.Background()); err == nil {
		t.Fatalf("want error from Logout")
	}
}

func TestHandleAuthRejected_DropsSession(t *testing.T) {
	a := &App{tokens: token.NewMemory(), user: &models.User{ID: 1, Name: "Alice"}}
	a.handleAuthRejected()
	if a.isLoggedIn() {
		t.Fatalf("session must be dropped when the server rejects the credential")
	}
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	f := &fakeAuth{currentErr: errors.New("must not be called")}
	a := &App{auth: f, tokens: token.NewMemory()}

	if err := a.Whoami(context.Background()); err != nil {
		t.Fatalf("Whoami on anonymous session must be a no-op, got: %v", err)
	}
}

func TestWhoami_RefreshesUser(t *testing.T) {
	f := &fakeAuth{currentUser: &models.User{ID: 1, Name: "Alice Cooper", Email: "a@b.com"}}
	a := &App{auth: f, tokens: token.NewMemory(), user: &models.User{ID: 1, Name: "Alice"}}

	if err := a.Whoami(context.Background()); err != nil {
		t.Fatalf("Whoami err: %v", err)
	}
	if a.user.Name != "Alice Cooper" {
		t.Fatalf("session user not refreshed: %+v", a.user)
	}
}

func TestProfile_SendsOnlyChangedFields(t *testing.T) {
	f := &fakeAuth{updated: &models.User{ID: 1, Name: "Alice", Timezone: "UTC"}}
	a := &App{auth: f, tokens: token.NewMemory(), user: &models.User{ID: 1, Name: "Alice"}}

	origST := getSimpleText
	prompts := []string{}
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		prompts = append(prompts, prompt)
		if strings.Contains(prompt, "timezone") {
			return "UTC", nil
		}
		return "", nil
	}
	defer func() { getSimpleText = origST }()

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	if f.lastUpdate.Name != nil {
		t.Fatalf("empty name must be omitted from the update")
	}
	if f.lastUpdate.Timezone == nil || *f.lastUpdate.Timezone != "UTC" {
		t.Fatalf("timezone not sent: %+v", f.lastUpdate)
	}
	if len(prompts) != 2 {
		t.Fatalf("want 2 prompts, got %d", len(prompts))
	}
}
