package common

// AuthHeaderName is the HTTP header used to carry the bearer token on
// outbound requests.
const AuthHeaderName = "Authorization"

// AuthScheme is the authorization scheme prefix expected by the server.
const AuthScheme = "Bearer"

// RequestIDHeaderName carries a per-request correlation id, mainly for
// matching client log lines against server logs.
const RequestIDHeaderName = "X-Request-Id"
