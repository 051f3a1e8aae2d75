// Package specdoc models the upstream specification document the observed
// journey is compared against.
//
// The document is semi-structured JSON with optional user_flows, features
// (objects with a flow string, or bare strings), and workflows keys. Flow
// extraction follows a fixed fallback order and guarantees a non-empty
// result.
package specdoc
