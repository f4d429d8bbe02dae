// Package api holds the HTTP handlers of the service: the session-backed
// tracker, the stateless cycle endpoints, the reference content and the
// feedback form. Handlers decode and validate JSON, read the clock once per
// request, call into the services and map their errors to status codes and
// safe messages (see errors.go).
package api
