package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"classtrack/internal/client/models"
	"classtrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var validate = validator.New()

// credentials and registration are validated locally before any request is
// issued; resource payloads stay unvalidated pass-through, the server is
// the authority there.
type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registration struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"required"`
}

// Register prompts for email, password and display name and creates a new
// account. When the server issues a token right away the session becomes
// authenticated; otherwise the user is asked to log in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	reg := registration{Email: email, Password: string(password), Name: name}
	if err := validate.Struct(reg); err != nil {
		fmt.Printf("Invalid input: %s\n", err.Error())
		return err
	}

	resp, err := a.auth.Register(ctx, email, string(password), name)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if resp.Token != "" {
		a.user = &resp.User
		fmt.Printf("Welcome, %s!\n", resp.User.Name)
	} else {
		fmt.Println("Account created, please log in.")
	}
	return nil
}

// Login prompts for credentials and authenticates against the server.
// On success the facade has already stored the token; the returned user
// becomes the session state.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := credentials{Email: email, Password: string(password)}
	if err := validate.Struct(creds); err != nil {
		fmt.Printf("Invalid input: %s\n", err.Error())
		return err
	}

	resp, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.user = &resp.User
	fmt.Printf("Welcome back, %s!\n", resp.User.Name)
	return nil
}

// Logout clears the stored token and drops the in-memory session. Unlike
// the 401 path it does not announce a forced return to login.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Println(err.Error())
		return err
	}
	a.user = nil
	fmt.Println("Logged out.")
	return nil
}

// Whoami fetches the current account from the server and, when the stored
// token is a JWT, shows its claims. Claims are display-only and parsed
// without verification; expiry is still discovered reactively through 401s.
func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in.")
		return nil
	}

	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	a.user = user

	fmt.Printf("%s <%s> (id %d)\n", user.Name, user.Email, user.ID)
	if user.Timezone != "" {
		fmt.Printf("Timezone: %s\n", user.Timezone)
	}

	if tok, ok := a.tokens.Get(); ok {
		printTokenClaims(tok)
	}
	return nil
}

func printTokenClaims(tok string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fmt.Printf("Token expires: %s\n", exp.Format(time.RFC3339))
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		fmt.Printf("Token subject: %s\n", sub)
	}
}

// Profile updates the display name and/or timezone and refreshes the
// session user from the server response.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in.")
		return nil
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	timezone, err := getSimpleText(a.reader, "New timezone (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	update := models.ProfileUpdate{}
	if name != "" {
		update.Name = &name
	}
	if timezone != "" {
		update.Timezone = &timezone
	}

	user, err := a.auth.UpdateProfile(ctx, update)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.user = user
	fmt.Println("Profile updated.")
	return nil
}
