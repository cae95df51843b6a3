// Package client is a typed HTTP client for the inventory API.
//
// HTTPClient maps transport failures to ErrUnavailable and non-2xx answers to
// *APIError, which matches ErrUnauthorized, ErrNotFound and ErrBadRequest
// through errors.Is.
package client
