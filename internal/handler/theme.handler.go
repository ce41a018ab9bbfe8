package handler

import (
	"net/http"

	"cardlink-backend/internal/usecase"
	"cardlink-backend/pkg/middleware"
	"cardlink-backend/pkg/response"
)

type ThemeHandler struct {
	uc *usecase.ThemeUsecase
}

func NewThemeHandler(uc *usecase.ThemeUsecase) *ThemeHandler {
	return &ThemeHandler{uc: uc}
}

// HandleGet returns the caller's theme, creating it with defaults on
// first fetch. Unauthenticated requests get the empty shape.
func (h *ThemeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.JSON(w, http.StatusOK, "User not found", []interface{}{})
		return
	}

	theme, err := h.uc.Get(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, "Theme fetched successfully", theme)
}

type updateThemeRequest struct {
	BackgroundImage *string `json:"background_image"`
	BackgroundColor string  `json:"background_color"`
	FontColor       string  `json:"font_color"`
}

func (h *ThemeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req updateThemeRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	theme, err := h.uc.Update(r.Context(), userID, req.BackgroundImage, req.BackgroundColor, req.FontColor)
	if err != nil {
		internalError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, "Theme updated successfully", theme)
}
