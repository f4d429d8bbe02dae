// Package service contains the application use cases that sit between the
// HTTP layer and the cycle engine.
//
// TrackerService replays the tracker screen's user actions (selecting a date,
// stepping the cycle length, rendering the current view) as pure transitions
// over a CycleProfile owned by the caller. The session subpackage carries that
// profile between requests inside a signed token, so no service here holds
// user state.
//
// Errors from the domain and engine are wrapped in ServiceError and stay
// reachable with errors.Is; the API layer maps them to HTTP status codes.
package service
