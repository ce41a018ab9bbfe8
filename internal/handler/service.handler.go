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

type ServiceHandler struct {
	uc *usecase.ServiceUsecase
}

func NewServiceHandler(uc *usecase.ServiceUsecase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// HandleList returns the caller's services. An unauthenticated request
// gets the empty-list shape rather than a 401, so polling clients render
// a uniform empty state.
func (h *ServiceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.JSON(w, http.StatusOK, "No service found for this user.", []*domain.Service{})
		return
	}

	services, err := h.uc.List(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}
	if services == nil {
		services = []*domain.Service{}
	}
	response.JSON(w, http.StatusOK, "Service list fetched successfully.", services)
}

type createServiceRequest struct {
	Name        string  `json:"name"`
	Picture     *string `json:"picture"`
	Description string  `json:"description"`
}

func (h *ServiceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req createServiceRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	svc, verrs, err := h.uc.Create(r.Context(), userID, req.Name, req.Picture, req.Description)
	if err != nil {
		internalError(w, err)
		return
	}
	if !verrs.Empty() {
		response.Error(w, http.StatusBadRequest, verrs.Message())
		return
	}
	response.JSON(w, http.StatusCreated, "Service created successfully.", svc)
}

func (h *ServiceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Service ID must be an integer.")
		return
	}

	if err := h.uc.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Service not found.")
			return
		}
		internalError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, "Service deleted successfully.", nil)
}
