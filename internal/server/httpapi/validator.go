package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/invtrack/internal/server/models"
	"github.com/go-playground/validator/v10"
)

var (
	errBodyTooLarge = errors.New("request body too large")
	errBadJSON      = errors.New("malformed JSON")
)

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"fullName" validate:"required"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// readBody reads the whole (size-limited) request body.
func readBody(r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, errBodyTooLarge
		}
		return nil, err
	}
	return b, nil
}

// decodeAndValidate fills dst from the JSON body and runs struct validation.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	b, err := readBody(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return errBadJSON
	}
	return h.validate.Struct(dst)
}

// decodeFields reads a JSON object body as free-form document fields.
func decodeFields(r *http.Request) (models.Fields, error) {
	b, err := readBody(r)
	if err != nil {
		return nil, err
	}
	return models.DecodeFields(b)
}

// bodyErrorMessage picks the client message for a body decoding failure.
func bodyErrorMessage(err error) (int, string) {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge, MsgBodyTooLarge
	case errors.As(err, &verrs):
		return http.StatusBadRequest, MsgMissingFields
	case errors.Is(err, models.ErrNotAnObject):
		return http.StatusBadRequest, MsgBodyNotObject
	default:
		return http.StatusBadRequest, MsgInvalidRequest
	}
}
