// Package token manages the persisted session credential. At most one token
// is held at a time: login/registration overwrite it, logout and rejected
// requests clear it.
package token

// Store holds the current bearer token.
//
// Contract:
//   - Get reports the current token, or ok=false when no session is active.
//     It has no side effects and never fails.
//   - Set persists the token for subsequent reads, overwriting any prior value.
//   - Clear removes the token. Clearing an empty store is not an error.
type Store interface {
	Get() (value string, ok bool)
	Set(value string) error
	Clear() error
}
