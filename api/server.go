package api

import (
	"net/http"

	"github.com/krishnasingh-28/chatbot/logging"
	"github.com/krishnasingh-28/chatbot/relay"
)

// Options holds dependency overrides passed to NewServer().
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Server wires the relay into an http.Handler.
type Server struct {
	relay  *relay.Relay
	logger logging.Logger
}

// NewServer constructs a Server with optional overrides.
func NewServer(r *relay.Relay, optFns ...func(o *Options)) *Server {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Server{relay: r, logger: opts.Logger}
}

// Handler returns the fully wired route tree with the middleware chain
// (panic recovery, request logging, CORS) applied outermost-first.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat/{$}", s.handleChat)
	mux.HandleFunc("GET /chat/{id}", s.handleHistory)
	mux.HandleFunc("DELETE /chat/{id}", s.handleEnd)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	var h http.Handler = mux
	h = CORS()(h)
	h = RequestLog(s.logger)(h)
	h = Recover(s.logger)(h)
	return h
}
