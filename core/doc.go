// Package core provides the foundational domain types and interfaces of the
// chat relay. It defines:
//
//   - Messages (immutable role/content turns)
//   - Conversations (ordered history containers keyed by caller-supplied ids)
//   - The ConversationStore contract implemented by storage backends
//
// The package intentionally keeps implementation concerns (storage, model
// providers, transport) out of scope, exposing small interfaces so the relay
// layer remains decoupled from concrete backends.
package core
