// Package model defines the provider-agnostic abstraction for the external
// text-completion service the relay depends on.
//
// Core goals:
//   - Unify streaming + non-streaming generation behind a single interface
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (e.g. Groq, Anthropic) implement the Model interface from this
// package so the relay remains decoupled from vendor SDKs. A generation is a
// finite stream of text fragments; consumers concatenate every fragment's
// Text in arrival order to assemble the full reply.
package model
