// Package config loads the service configuration.
//
// Values are resolved in this order, later sources winning: built-in defaults,
// an optional config.yaml, an optional .env file, and SAKHI_ prefixed
// environment variables (SAKHI_SESSION_SECRET for session.secret). The result
// is checked with go-playground/validator struct tags before it is returned.
package config
