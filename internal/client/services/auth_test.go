package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classtrack/internal/client/api"
	"classtrack/internal/client/models"
	"classtrack/internal/client/token"
)

type authFixture struct {
	svc        AuthService
	tokens     *token.Memory
	navigated  *int
	lastBody   map[string]any
	lastAuth   string
	lastMethod string
}

// newAuthFixture wires an AuthService against a fake auth endpoint. The
// handler for each route is chosen by the respond callback.
func newAuthFixture(t *testing.T, respond func(w http.ResponseWriter, r *http.Request)) *authFixture {
	t.Helper()

	f := &authFixture{tokens: token.NewMemory(), navigated: new(int)}

	r := mux.NewRouter()
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		f.lastAuth = req.Header.Get("Authorization")
		f.lastMethod = req.Method
		f.lastBody = nil
		_ = json.NewDecoder(req.Body).Decode(&f.lastBody)
		respond(w, req)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client := api.New(srv.URL, f.tokens, api.WithOnAuthRejected(func() { *f.navigated++ }))
	f.svc = NewAuthService(client, f.tokens)
	return f
}

func TestLogin_Success_StoresToken(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		w.Write([]byte(`{"token": "t1", "user": {"id": 1, "name": "Alice"}}`))
	})

	resp, err := f.svc.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, map[string]any{"email": "a@b.com", "password": "x"}, f.lastBody)

	v, ok := f.tokens.Get()
	assert.True(t, ok)
	assert.Equal(t, "t1", v)
}

func TestLogin_InvalidCredentials_UsesServerMessage(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid credentials"}`))
	})

	_, err := f.svc.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestLogin_NoErrorBody_FallsBack(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := f.svc.Login(context.Background(), "a@b.com", "x")
	require.Error(t, err)
	assert.Equal(t, "Login failed", err.Error())
}

func TestLogin_NetworkFailure_FallsBack(t *testing.T) {
	client := api.New("http://127.0.0.1:1", token.NewMemory())
	svc := NewAuthService(client, token.NewMemory())

	_, err := svc.Login(context.Background(), "a@b.com", "x")
	require.Error(t, err)
	assert.Equal(t, "Login failed", err.Error())
}

func TestRegister_Success(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message": "User registered successfully"}`))
	})

	resp, err := f.svc.Register(context.Background(), "a@b.com", "x", "Alice")
	require.NoError(t, err)

	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, map[string]any{"email": "a@b.com", "password": "x", "name": "Alice"}, f.lastBody)

	_, ok := f.tokens.Get()
	assert.False(t, ok, "no token in the response means none may be stored")
}

func TestRegister_TokenIssued_IsStored(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"token": "t2", "user": {"id": 2, "name": "Bob"}}`))
	})

	_, err := f.svc.Register(context.Background(), "b@b.com", "x", "Bob")
	require.NoError(t, err)

	v, ok := f.tokens.Get()
	assert.True(t, ok)
	assert.Equal(t, "t2", v)
}

func TestRegister_Duplicate_UsesServerMessage(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Email already exists"}`))
	})

	_, err := f.svc.Register(context.Background(), "a@b.com", "x", "Alice")
	require.Error(t, err)
	assert.Equal(t, "Email already exists", err.Error())
}

func TestCurrentUser_CarriesToken(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile", r.URL.Path)
		w.Write([]byte(`{"id": 1, "name": "Alice", "email": "a@b.com"}`))
	})
	require.NoError(t, f.tokens.Set("t1"))

	user, err := f.svc.CurrentUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "Bearer t1", f.lastAuth)
}

func TestCurrentUser_Failure_FallsBack(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := f.svc.CurrentUser(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to get user data", err.Error())
}

func TestUpdateProfile(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile", r.URL.Path)
		w.Write([]byte(`{"id": 1, "name": "Alice Cooper"}`))
	})

	name := "Alice Cooper"
	user, err := f.svc.UpdateProfile(context.Background(), models.ProfileUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, f.lastMethod)
	assert.Equal(t, "Alice Cooper", user.Name)
	assert.Equal(t, map[string]any{"name": "Alice Cooper"}, f.lastBody)
}

func TestUpdateProfile_Failure_FallsBack(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	_, err := f.svc.UpdateProfile(context.Background(), models.ProfileUpdate{})
	require.Error(t, err)
	assert.Equal(t, "Profile update failed", err.Error())
}

func TestLogout_ClearsTokenWithoutNavigation(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	})
	require.NoError(t, f.tokens.Set("t1"))

	require.NoError(t, f.svc.Logout(context.Background()))

	_, ok := f.tokens.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, *f.navigated, "logout must not trigger the login redirect")
}

func TestSessionRejected_TokenClearedAndNavigated(t *testing.T) {
	f := newAuthFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "token expired"}`))
	})
	require.NoError(t, f.tokens.Set("stale"))

	_, err := f.svc.CurrentUser(context.Background())
	require.Error(t, err)
	assert.Equal(t, "token expired", err.Error())

	_, ok := f.tokens.Get()
	assert.False(t, ok)
	assert.Equal(t, 1, *f.navigated)
}
