package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskmanager/internal/auth"
	"taskmanager/internal/errors"
)

// bindAndValidate decodes the JSON body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Detail: "invalid request body",
			Code:   "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Detail: err.Error(),
			Code:   "VALIDATION_ERROR",
		})
	}
	return nil
}

// mapServiceError converts a service error into the echo error returned to the client.
// Unknown errors become a 500 with the cause kept as Internal for logging.
func mapServiceError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	resp := echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	if httpErr.StatusCode >= http.StatusInternalServerError {
		return resp.SetInternal(err)
	}
	return resp
}

func currentUserID(c echo.Context) (uint, error) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Detail: auth.ErrTokenInvalid.Error(),
			Code:   "UNAUTHORIZED",
		})
	}
	return userID, nil
}

func taskIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Detail: "invalid task id",
			Code:   "INVALID_ID",
		})
	}
	return uint(id), nil
}
