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

type SocialHandler struct {
	uc *usecase.SocialUsecase
}

func NewSocialHandler(uc *usecase.SocialUsecase) *SocialHandler {
	return &SocialHandler{uc: uc}
}

// HandleListLinks returns the caller's social links, with the empty-list
// shape for unauthenticated requests.
func (h *SocialHandler) HandleListLinks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.JSON(w, http.StatusOK, "No social media links found for this user.", []*domain.SocialMediaLink{})
		return
	}

	links, err := h.uc.ListLinks(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}
	if links == nil {
		links = []*domain.SocialMediaLink{}
	}
	response.JSON(w, http.StatusOK, "Social media links fetched successfully.", links)
}

type createLinkRequest struct {
	Platform int64  `json:"platform"`
	Data     string `json:"data"`
}

func (h *SocialHandler) HandleCreateLink(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req createLinkRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	link, verrs, err := h.uc.CreateLink(r.Context(), userID, req.Platform, req.Data)
	if err != nil {
		internalError(w, err)
		return
	}
	if !verrs.Empty() {
		response.Error(w, http.StatusBadRequest, verrs.Message())
		return
	}
	response.JSON(w, http.StatusCreated, "Social media link created successfully.", link)
}

func (h *SocialHandler) HandleDeleteLink(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Link ID must be an integer.")
		return
	}

	if err := h.uc.DeleteLink(r.Context(), userID, id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Social media link not found.")
			return
		}
		internalError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, "Social media deleted successfully.", nil)
}

type createPlatformRequest struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	DataType string `json:"data_type"`
}

func (h *SocialHandler) HandleCreatePlatform(w http.ResponseWriter, r *http.Request) {
	var req createPlatformRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	platform, verrs, err := h.uc.CreatePlatform(r.Context(), req.Name, req.Icon, req.DataType)
	if err != nil {
		if errors.Is(err, xerrors.ErrPlatformExists) {
			response.Error(w, http.StatusBadRequest, "A social media platform with this name already exists.")
			return
		}
		internalError(w, err)
		return
	}
	if !verrs.Empty() {
		response.Error(w, http.StatusBadRequest, verrs.Message())
		return
	}
	response.JSON(w, http.StatusCreated, "Social media platform created successfully.", platform)
}
