package handler

import (
	"errors"
	"net/http"

	"cardlink-backend/internal/usecase"
	"cardlink-backend/pkg/response"
	"cardlink-backend/pkg/xerrors"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type phoneRequest struct {
	MobileNumber string `json:"mobile_number"`
	CountryCode  string `json:"country_code"`
}

type otpRequest struct {
	MobileNumber string `json:"mobile_number"`
	CountryCode  string `json:"country_code"`
	OTP          string `json:"otp"`
}

// HandleRequestOTP issues a login OTP for an existing account.
func (h *AuthHandler) HandleRequestOTP(w http.ResponseWriter, r *http.Request) {
	var req phoneRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	code, verrs, err := h.uc.RequestLoginOTP(r.Context(), req.MobileNumber, req.CountryCode)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User does not exist. Please sign up first.")
			return
		}
		internalError(w, err)
		return
	}
	if !verrs.Empty() {
		response.Error(w, http.StatusBadRequest, verrs.Message())
		return
	}

	response.JSON(w, http.StatusOK, "OTP sent to mobile number", map[string]string{"otp": code})
}

// HandleVerifyOTP exchanges a login OTP for an access token.
func (h *AuthHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := h.uc.VerifyLoginOTP(r.Context(), req.MobileNumber, req.CountryCode, req.OTP)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidOTP) {
			response.Error(w, http.StatusBadRequest, "Invalid or expired OTP")
			return
		}
		internalError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "Login successful", map[string]interface{}{
		"access": token,
		"user":   user,
	})
}

// HandleSignup stages a new account and issues its verification OTP.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req usecase.SignupRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	code, verrs, err := h.uc.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrPhoneAlreadyInUse):
			response.Error(w, http.StatusBadRequest, "Mobile number already registered")
		case errors.Is(err, xerrors.ErrEmailAlreadyInUse):
			response.Error(w, http.StatusBadRequest, "Email already registered")
		default:
			internalError(w, err)
		}
		return
	}
	if !verrs.Empty() {
		response.Error(w, http.StatusBadRequest, verrs.Message())
		return
	}

	response.JSON(w, http.StatusOK, "OTP sent for verification", map[string]string{"otp": code})
}

// HandleFinalizeSignup verifies the staged OTP and creates the account.
func (h *AuthHandler) HandleFinalizeSignup(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := h.uc.FinalizeSignup(r.Context(), req.MobileNumber, req.CountryCode, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrSignupNotStaged):
			response.Error(w, http.StatusBadRequest, "OTP expired or not found")
		case errors.Is(err, xerrors.ErrOTPExpired):
			response.Error(w, http.StatusBadRequest, "OTP expired")
		case errors.Is(err, xerrors.ErrInvalidOTP):
			response.Error(w, http.StatusBadRequest, "Invalid OTP")
		case errors.Is(err, xerrors.ErrPhoneAlreadyInUse):
			response.Error(w, http.StatusBadRequest, "Mobile number already registered")
		case errors.Is(err, xerrors.ErrEmailAlreadyInUse):
			response.Error(w, http.StatusBadRequest, "Email already registered")
		default:
			internalError(w, err)
		}
		return
	}

	response.JSON(w, http.StatusOK, "User registered successfully", map[string]interface{}{
		"access": token,
		"user":   user,
	})
}
