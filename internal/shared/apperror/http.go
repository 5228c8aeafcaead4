package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError adalah bentuk siap-kirim dari sebuah error untuk layer handler.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP menerjemahkan error apapun menjadi HTTPError.
// Error yang bukan *AppError dianggap internal dan tidak membocorkan detailnya.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
