// Package domain contains the core entities and value objects of the cycle
// tracker: the client-owned CycleProfile, calendar-date helpers, cycle phases
// and the Prediction value produced by the cycle engine. It has no knowledge
// of HTTP, sessions or any other delivery mechanism.
package domain
