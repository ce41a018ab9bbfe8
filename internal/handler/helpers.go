package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cardlink-backend/pkg/response"

	"github.com/go-chi/chi/v5"
)

var errBadBody = errors.New("invalid request body")

func decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadBody
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func internalError(w http.ResponseWriter, err error) {
	response.Error(w, http.StatusInternalServerError, err.Error())
}
