package handler

import (
	"errors"
	"net/http"

	"cardlink-backend/internal/usecase"
	"cardlink-backend/pkg/middleware"
	"cardlink-backend/pkg/response"
	"cardlink-backend/pkg/xerrors"
)

type InboxHandler struct {
	uc *usecase.InboxUsecase
}

func NewInboxHandler(uc *usecase.InboxUsecase) *InboxHandler {
	return &InboxHandler{uc: uc}
}

func (h *InboxHandler) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	msgs, err := h.uc.ListInbox(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}
	if len(msgs) == 0 {
		response.Error(w, http.StatusOK, "No messages found for your inbox.")
		return
	}
	response.JSON(w, http.StatusOK, "Messages retrieved successfully.", msgs)
}

type sendMessageRequest struct {
	Receiver string `json:"receiver"`
	Content  string `json:"content"`
}

func (h *InboxHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req sendMessageRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, verrs, err := h.uc.SendMessage(r.Context(), userID, req.Receiver, req.Content)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "Receiver not found.")
			return
		}
		internalError(w, err)
		return
	}
	if !verrs.Empty() {
		response.Error(w, http.StatusBadRequest, verrs.Message())
		return
	}
	response.JSON(w, http.StatusCreated, "Message sent successfully.", msg)
}

func (h *InboxHandler) HandleMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Message ID must be an integer.")
		return
	}

	if err := h.uc.MarkMessageRead(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			response.Error(w, http.StatusNotFound, "Message not found or you do not have permission to mark it as read.")
		case errors.Is(err, xerrors.ErrAlreadyRead):
			response.Error(w, http.StatusBadRequest, "Message is already marked as read.")
		default:
			internalError(w, err)
		}
		return
	}
	response.JSON(w, http.StatusOK, "Message marked as read.", nil)
}

func (h *InboxHandler) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	items, err := h.uc.ListNotifications(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}
	if len(items) == 0 {
		response.Error(w, http.StatusOK, "No notifications found.")
		return
	}
	response.JSON(w, http.StatusOK, "Notifications retrieved successfully.", items)
}

type sendNotificationRequest struct {
	Recipient        string  `json:"recipient"`
	Title            string  `json:"title"`
	Message          string  `json:"message"`
	Link             *string `json:"link"`
	NotificationType string  `json:"notification_type"`
}

// HandleSendNotification is staff-only.
func (h *InboxHandler) HandleSendNotification(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	if !middleware.IsStaff(r.Context()) {
		response.Error(w, http.StatusForbidden, "You do not have permission to perform this action.")
		return
	}

	var req sendNotificationRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	n, verrs, err := h.uc.SendNotification(r.Context(), userID, req.Recipient, req.Title, req.Message, req.NotificationType, req.Link)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "Recipient not found.")
			return
		}
		internalError(w, err)
		return
	}
	if !verrs.Empty() {
		response.Error(w, http.StatusBadRequest, verrs.Message())
		return
	}
	response.JSON(w, http.StatusCreated, "Notification sent successfully.", n)
}

func (h *InboxHandler) HandleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Notification ID must be an integer.")
		return
	}

	if err := h.uc.MarkNotificationRead(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, xerrors.ErrNotFound):
			response.Error(w, http.StatusNotFound, "Notification not found or you do not have permission to mark it as read.")
		case errors.Is(err, xerrors.ErrAlreadyRead):
			response.Error(w, http.StatusBadRequest, "Notification is already marked as read.")
		default:
			internalError(w, err)
		}
		return
	}
	response.JSON(w, http.StatusOK, "Notification marked as read.", nil)
}
