package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// Response strings. Failures carry no field-level detail.
const (
	msgCreated     = "Message created successfully!"
	msgFetched     = "Messages fetched successfully!"
	errCreateFailed = "Failed to create message"
	errFetchFailed = "Failed to fetch messages"
)

// MessageHandler serves the contact form and the dashboard listing.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// submitRequest is the expected JSON body for POST /messages.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type submitResponse struct {
	Message string                `json:"message"`
	Job     *model.ContactMessage `json:"job"`
}

type listResponse struct {
	Message string                  `json:"message"`
	Data    []*model.ContactMessage `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Submit handles POST /messages.
// Every failure, including malformed JSON and missing fields, is a 500.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("decode message failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errCreateFailed})
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.messageService.Submit(r.Context(), msg); err != nil {
		slog.Error("create message failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errCreateFailed})
		return
	}

	slog.Info("message created", "id", msg.ID)
	writeJSON(w, http.StatusCreated, submitResponse{Message: msgCreated, Job: msg})
}

// List handles GET /messages.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.List(r.Context())
	if err != nil {
		slog.Error("list messages failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errFetchFailed})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, listResponse{Message: msgFetched, Data: messages})
}
