package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/invtrack/internal/common"
	"github.com/dmitrijs2005/invtrack/internal/metrics"
)

// HandleSignup registers a user and answers 201 with a session token.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		metrics.RecordAuth("signup", common.ErrorValidation)
		status, msg := bodyErrorMessage(err)
		h.respondMessage(w, r, status, msg)
		return
	}

	token, err := h.auth.Signup(r.Context(), req.Email, req.Password, req.FullName)
	metrics.RecordAuth("signup", err)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			h.respondMessage(w, r, http.StatusBadRequest, MsgEmailExists)
		case errors.Is(err, common.ErrPasswordTooLong):
			h.respondMessage(w, r, http.StatusBadRequest, MsgPasswordTooLong)
		case errors.Is(err, common.ErrorValidation):
			h.respondMessage(w, r, http.StatusBadRequest, MsgMissingFields)
		default:
			h.respondInternal(w, r, MsgInternal, err)
		}
		return
	}

	h.respondJSON(w, r, http.StatusCreated, TokenResponse{Token: token})
}

// HandleLogin checks credentials and answers 200 with a session token.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		metrics.RecordAuth("login", common.ErrorValidation)
		status, msg := bodyErrorMessage(err)
		h.respondMessage(w, r, status, msg)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	metrics.RecordAuth("login", err)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			h.respondMessage(w, r, http.StatusUnauthorized, MsgInvalidCredentials)
		case errors.Is(err, common.ErrorValidation):
			h.respondMessage(w, r, http.StatusBadRequest, MsgMissingFields)
		default:
			h.respondInternal(w, r, MsgInternal, err)
		}
		return
	}

	h.respondJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
