package usererrors

import (
	"net/http"

	"github.com/HadirBos/hr-admin-gateway/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrUserServiceUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"user service is unreachable",
		http.StatusBadGateway,
	)
)
