package handler

import (
	"errors"
	"net/http"

	"cardlink-backend/internal/domain"
	"cardlink-backend/internal/usecase"
	"cardlink-backend/pkg/middleware"
	"cardlink-backend/pkg/response"
	"cardlink-backend/pkg/xerrors"
)

type ContactHandler struct {
	uc *usecase.ContactUsecase
}

func NewContactHandler(uc *usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) HandleListSaved(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	contacts, err := h.uc.ListSaved(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}
	if contacts == nil {
		contacts = []*domain.SavedContact{}
	}
	response.JSON(w, http.StatusOK, "Saved contacts retrieved successfully.", contacts)
}

type toggleContactRequest struct {
	TargetUserID string `json:"target_user_id"`
}

func (h *ContactHandler) HandleToggleSaved(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req toggleContactRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.TargetUserID == "" {
		response.Error(w, http.StatusBadRequest, "target_user_id is required.")
		return
	}

	saved, err := h.uc.ToggleSaved(r.Context(), userID, req.TargetUserID)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrSelfContact):
			response.Error(w, http.StatusBadRequest, "You cannot save yourself as a contact.")
		case errors.Is(err, xerrors.ErrTargetOrphan):
			response.Error(w, http.StatusNotFound, "User to save not found.")
		default:
			internalError(w, err)
		}
		return
	}

	if saved {
		response.JSON(w, http.StatusOK, "Contact saved successfully.", map[string]bool{"saved": true})
		return
	}
	response.JSON(w, http.StatusOK, "Contact unsaved successfully.", map[string]bool{"saved": false})
}

func (h *ContactHandler) HandleRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	records, err := h.uc.RecentlyViewed(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}
	if records == nil {
		records = []*domain.ProfileViewRecord{}
	}
	response.JSON(w, http.StatusOK, "Recently viewed contacts retrieved successfully.", records)
}
