package errors

import (
	"net/http"

	"github.com/aleguimas/promotores/pkg/status"
)

type AppError struct {
	HTTPStatusCode int
	Status         string
	Message        string
}

func (e *AppError) Error() string {
	return e.Message
}

func New(httpStatusCode int, status string, message string) error {
	return &AppError{
		HTTPStatusCode: httpStatusCode,
		Status:         status,
		Message:        message,
	}
}

// Destruct recovers the AppError carried by err. Errors that did not
// originate from this package are masked as internal server errors so
// their causes never reach a caller verbatim.
func Destruct(err error) *AppError {
	if ae, ok := err.(*AppError); ok {
		return ae
	}

	return &AppError{
		HTTPStatusCode: http.StatusInternalServerError,
		Status:         status.INTERNAL_SERVER_ERROR,
		Message:        "internal server error",
	}
}
