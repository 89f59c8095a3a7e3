// Package relay implements the request cycle at the heart of the service:
// resolve a conversation, append the user turn, call the completion provider
// with the full history, buffer the streamed fragments into one reply, append
// the assistant turn and return it.
//
// Error semantics worth knowing:
//   - Validation failures occur before any side effect
//   - Submissions against a closed conversation are rejected before mutation
//   - Upstream failures do NOT roll back the user-turn append; the history
//     keeps the user message even when no assistant reply follows. This
//     asymmetry is intentional and preserved for compatibility.
package relay
