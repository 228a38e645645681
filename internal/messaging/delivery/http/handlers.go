package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/NedohAR/marketplace-platform/internal/messaging"
	appErrors "github.com/NedohAR/marketplace-platform/pkg/errors"
	"github.com/NedohAR/marketplace-platform/pkg/logger"
)

type MessagingHandler struct {
	usecase messaging.MessagingUsecase
	logger  logger.Logger
}

func NewMessagingHandler(usecase messaging.MessagingUsecase, logger logger.Logger) *MessagingHandler {
	return &MessagingHandler{
		usecase: usecase,
		logger:  logger,
	}
}

type startConversationRequest struct {
	UserID    uuid.UUID  `json:"user_id"`
	ListingID *uuid.UUID `json:"listing_id,omitempty"`
}

type sendMessageRequest struct {
	ConversationID  *uuid.UUID `json:"conversation_id,omitempty"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	Content         string     `json:"content"`
	ParentMessageID *uuid.UUID `json:"parent_message_id,omitempty"`
	ListingID       *uuid.UUID `json:"listing_id,omitempty"`
}

// POST /api/conversations
func (h *MessagingHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, appErrors.ErrMissingIdentity)
		return
	}

	var req startConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, appErrors.InvalidArg("invalid request body"))
		return
	}
	if req.UserID == uuid.Nil {
		h.writeError(w, appErrors.InvalidArg("other user id is required"))
		return
	}

	summary, err := h.usecase.StartConversation(r.Context(), messaging.StartConversationCommand{
		CurrentUserID: viewerID,
		OtherUserID:   req.UserID,
		ListingID:     req.ListingID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"conversation": summary})
}

// GET /api/conversations
func (h *MessagingHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, appErrors.ErrMissingIdentity)
		return
	}

	summaries, err := h.usecase.ListConversations(r.Context(), viewerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"conversations": summaries})
}

// GET /api/conversations/{id}
func (h *MessagingHandler) GetConversationDetail(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, appErrors.ErrMissingIdentity)
		return
	}

	conversationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, appErrors.InvalidArg("invalid conversation id"))
		return
	}

	detail, err := h.usecase.GetConversationDetail(r.Context(), conversationID, viewerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"conversation": detail.Conversation,
		"messages":     detail.Messages,
	})
}

// GET /api/messages?conversation_id=
func (h *MessagingHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, appErrors.ErrMissingIdentity)
		return
	}

	raw := r.URL.Query().Get("conversation_id")
	if raw == "" {
		h.writeError(w, appErrors.InvalidArg("conversation_id is required"))
		return
	}
	conversationID, err := uuid.Parse(raw)
	if err != nil {
		h.writeError(w, appErrors.InvalidArg("invalid conversation id"))
		return
	}

	msgs, err := h.usecase.ListMessages(r.Context(), conversationID, viewerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

// POST /api/messages
func (h *MessagingHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, appErrors.ErrMissingIdentity)
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, appErrors.InvalidArg("invalid request body"))
		return
	}

	msg, err := h.usecase.SendMessage(r.Context(), messaging.SendMessageCommand{
		SenderID:        senderID,
		ConversationID:  req.ConversationID,
		OtherUserID:     req.UserID,
		Content:         req.Content,
		ParentMessageID: req.ParentMessageID,
		ListingID:       req.ListingID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"message": msg})
}

func (h *MessagingHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "err", err)
	}
}

func (h *MessagingHandler) writeError(w http.ResponseWriter, err error) {
	code := appErrors.CodeOf(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "err", err)
	}

	msg := "internal server error"
	var appErr *appErrors.AppError
	if ok := asAppError(err, &appErr); ok && status < http.StatusInternalServerError {
		msg = appErr.Message
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func asAppError(err error, target **appErrors.AppError) bool {
	return errors.As(err, target)
}
