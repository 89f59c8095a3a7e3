package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/krishnasingh-28/chatbot/core"
	"github.com/krishnasingh-28/chatbot/relay"
)

// closedDetail matches the original service's fixed human-readable message.
const closedDetail = "The chat session has ended. Please start a new session."

type chatRequest struct {
	Message        string `json:"message"`
	Role           string `json:"role"`
	ConversationID string `json:"conversation_id"`
}

type chatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

type historyResponse struct {
	ConversationID string         `json:"conversation_id"`
	Messages       []core.Message `json:"messages"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}

	res, err := s.relay.SubmitMessage(r.Context(), relay.SubmitRequest{
		ConversationID: req.ConversationID,
		Role:           req.Role,
		Content:        req.Message,
	})
	if err != nil {
		s.writeRelayError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response:       res.Response,
		ConversationID: res.ConversationID,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	messages, err := s.relay.History(id)
	if err != nil {
		s.writeRelayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{ConversationID: id, Messages: messages})
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	if err := s.relay.EndConversation(r.PathValue("id")); err != nil {
		s.writeRelayError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeRelayError maps the relay error taxonomy onto HTTP statuses. Nothing
// is swallowed: unexpected errors surface as 500 with their description.
func (s *Server) writeRelayError(w http.ResponseWriter, err error) {
	var verr *relay.ValidationError
	var uerr *relay.UpstreamError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusUnprocessableEntity, verr.Error())
	case errors.Is(err, relay.ErrConversationClosed):
		writeError(w, http.StatusBadRequest, closedDetail)
	case errors.As(err, &uerr):
		writeError(w, http.StatusBadGateway, uerr.Error())
	case errors.Is(err, core.ErrNotFound):
		writeError(w, http.StatusNotFound, "conversation not found")
	default:
		s.logger.Error("unhandled relay error", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
