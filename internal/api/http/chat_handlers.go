package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/marketplace/dealchat/internal/domain/notification"
)

type createChatRequest struct {
	PostID int64 `json:"postId"`
}

func (s *Server) createChat(w http.ResponseWriter, r *http.Request) {
	var req createChatRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if req.PostID <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "postId required")
		return
	}
	auth := authUserFromContext(r.Context())
	c, err := s.chatSvc.CreateChat(contextFromRequest(r), auth.UserID, req.PostID)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (s *Server) listChats(w http.ResponseWriter, r *http.Request) {
	auth := authUserFromContext(r.Context())
	chats, err := s.chatSvc.ListChats(contextFromRequest(r), auth.UserID)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"chats": chats})
}

// chatEvents streams the chat's deal events to a participant.
func (s *Server) chatEvents(w http.ResponseWriter, r *http.Request) {
	chatID, err := parseIDParam(r, "chatId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	auth := authUserFromContext(r.Context())
	if err := s.chatSvc.AuthorizeSubscriber(contextFromRequest(r), auth.UserID, chatID); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "streaming not supported")
		return
	}

	clientID := uuid.New().String()
	userID := auth.UserIDString()
	client := notification.NewSSEClient(clientID, &userID, []string{notification.ChatGroup(chatID)})
	s.sseHub.Register(client)
	defer s.sseHub.Unregister(clientID)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(": connected\n\n"))
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case msg, ok := <-client.MessageChan:
			if !ok || msg == nil {
				return
			}
			payload, err := json.Marshal(msg)
			if err != nil {
				s.logger.Warn().Err(err).Str("client_id", client.ClientID).Str("event", msg.Event).Msg("failed to encode SSE message")
				continue
			}
			_, _ = w.Write([]byte("event: " + msg.Event + "\n"))
			_, _ = w.Write([]byte("data: "))
			_, _ = w.Write(payload)
			_, _ = w.Write([]byte("\n\n"))
			flusher.Flush()
		case <-ctx.Done():
			return
		}
	}
}
