package filereferrors

import (
	"net/http"

	"github.com/HadirBos/hr-admin-gateway/internal/shared/apperror"
)

var (
	ErrEmptyFile = apperror.New(
		apperror.CodeInvalidInput,
		"file is required",
		http.StatusBadRequest,
	)
	ErrUploadFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"Failed to upload file",
		http.StatusBadGateway,
	)
)
