// Package api exposes the relay over HTTP. One operation carries the whole
// service: POST /chat/ submits a user message and returns the buffered
// assistant reply. Supporting routes fetch history, end a conversation and
// report liveness.
//
// Error bodies use a {"detail": ...} shape: validation failures map to 422,
// closed conversations to 400, upstream completion failures to 502 and
// anything unexpected to 500. The CORS posture is deliberately permissive
// (any origin, with credentials) for development use; it is not a security
// boundary.
package api
