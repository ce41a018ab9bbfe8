package handler

import (
	"errors"
	"fmt"
	"net/http"

	"cardlink-backend/internal/domain"
	"cardlink-backend/internal/repository"
	"cardlink-backend/internal/usecase"
	"cardlink-backend/pkg/response"
	"cardlink-backend/pkg/xerrors"
)

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.CategoryFilter{
		Type:     q.Get("type"),
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
	}

	cats, err := h.uc.List(r.Context(), filter)
	if err != nil {
		internalError(w, err)
		return
	}
	if cats == nil {
		cats = []*domain.Category{}
	}
	response.JSON(w, http.StatusOK, "Category list retrieved successfully.", cats)
}

type createCategoryRequest struct {
	Icon         string `json:"icon"`
	CategoryName string `json:"category_name"`
	Type         string `json:"type"`
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	cat, verrs, err := h.uc.Create(r.Context(), req.Icon, req.CategoryName, req.Type)
	if err != nil {
		if errors.Is(err, xerrors.ErrCategoryExists) {
			response.Error(w, http.StatusBadRequest, "A category with this name already exists.")
			return
		}
		internalError(w, err)
		return
	}
	if !verrs.Empty() {
		response.Error(w, http.StatusBadRequest, verrs.Message())
		return
	}
	response.JSON(w, http.StatusCreated, "Category created successfully.", cat)
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Category ID must be an integer.")
		return
	}

	cat, err := h.uc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, xerrors.ErrCategoryNotFound) {
			response.Error(w, http.StatusNotFound, fmt.Sprintf("Category with ID %d does not exist.", id))
			return
		}
		internalError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, "Category retrieved successfully.", cat)
}
