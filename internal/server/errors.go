package server

import (
	"errors"
	"net/http"

	"github.com/ergosmind/mindstyle-server/internal/layout"
	"github.com/ergosmind/mindstyle-server/internal/schemas"
	"github.com/ergosmind/mindstyle-server/internal/styles"
)

// genericFailure is the only failure message callers see for render and
// delivery errors.
const genericFailure = "Failed to generate or send PDF"

// HTTPStatus returns the appropriate HTTP status code for an error:
// 400 for anything wrong with the input, 500 for everything downstream.
func HTTPStatus(err error) int {
	var (
		validationErr *layout.ValidationError
		unknownStyle  *styles.UnknownStyleError
		schemaErr     *schemas.ValidationError
	)
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &unknownStyle),
		errors.As(err, &schemaErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
