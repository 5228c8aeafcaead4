package editformerrors

import (
	"net/http"

	"github.com/HadirBos/hr-admin-gateway/internal/shared/apperror"
)

var (
	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"edit session not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrUnknownField = apperror.New(
		apperror.CodeInvalidInput,
		"unknown editable field",
		http.StatusBadRequest,
	)
	ErrNonScalarValue = apperror.New(
		apperror.CodeInvalidInput,
		"field value must be a string, number, or boolean",
		http.StatusBadRequest,
	)
	ErrSessionNotReady = apperror.New(
		apperror.CodeInvalidState,
		"edit session is not ready",
		http.StatusConflict,
	)
	ErrSubmitInFlight = apperror.New(
		apperror.CodeConflict,
		"a submit is already in flight for this session",
		http.StatusConflict,
	)
)
