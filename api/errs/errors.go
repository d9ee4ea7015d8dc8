package errs

import (
	"errors"
	"net/http"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidSort     = errors.New("invalid sort field")
	ErrInvalidPage     = errors.New("invalid page number")
	ErrPageNotFound    = errors.New("page not found")
)

var ErrStatusMap = map[error]int{
	ErrProjectNotFound: http.StatusNotFound,
	ErrInvalidSort:     http.StatusBadRequest,
	ErrInvalidPage:     http.StatusBadRequest,
	ErrPageNotFound:    http.StatusNotFound,
}
