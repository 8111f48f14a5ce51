package services

import (
	"classtrack/internal/client/api"
)

// APIService is the facade over the general resource endpoints (base path
// /api). Operations are thin pass-throughs: one HTTP call each, parsed
// bodies returned unmodified, raw transport errors propagated to the view
// layer without normalization.
type APIService struct {
	api *api.Client
}

func NewAPIService(client *api.Client) *APIService {
	return &APIService{api: client}
}

// Filters is an arbitrary mapping of list/filter keys to values. Keys and
// values are serialized into the query string without validation; the
// server is the sole authority on acceptable filters.
type Filters map[string]string
