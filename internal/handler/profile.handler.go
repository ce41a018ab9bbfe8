package handler

import (
	"errors"
	"net/http"

	"cardlink-backend/internal/domain"
	"cardlink-backend/internal/usecase"
	"cardlink-backend/pkg/middleware"
	"cardlink-backend/pkg/response"
	"cardlink-backend/pkg/xerrors"

	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	user, err := h.uc.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found.")
			return
		}
		internalError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, "Profile retrieved successfully.", user)
}

func (h *ProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var upd domain.ProfileUpdate
	if err := decode(r, &upd); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, verrs, err := h.uc.Update(r.Context(), userID, &upd)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found.")
			return
		}
		internalError(w, err)
		return
	}
	if !verrs.Empty() {
		response.Error(w, http.StatusBadRequest, verrs.Message())
		return
	}
	response.JSON(w, http.StatusOK, "Profile updated successfully", user)
}

// HandleProfileDetail serves another user's profile; an authenticated
// non-owner fetch counts as a profile view.
func (h *ProfileHandler) HandleProfileDetail(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")
	viewerID, _ := middleware.UserID(r.Context())

	user, err := h.uc.View(r.Context(), targetID, viewerID)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found.")
			return
		}
		internalError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, "Profile retrieved successfully.", user)
}

// HandlePublicProfile is the shareable-card view: same view tracking, but
// only the public subset of fields comes back.
func (h *ProfileHandler) HandlePublicProfile(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")
	viewerID, _ := middleware.UserID(r.Context())

	user, err := h.uc.View(r.Context(), targetID, viewerID)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found.")
			return
		}
		internalError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, "Profile retrieved successfully.", user.Public())
}

func (h *ProfileHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.uc.ListUsers(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	response.JSON(w, http.StatusOK, "Users retrieved successfully.", users)
}
