// Package model contains the payloads exchanged over the HTTP surface.
// These are pure data structures shared across layers (HTTP, service);
// no business logic here.
package model
