package httperr

import (
	"net/http"

	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	abort(c, status, err, msg, "", detail)
}

// AbortWithUsecaseError maps the error taxonomy onto a status code. Only
// internal errors are masked; the rest carry their message to the client.
func AbortWithUsecaseError(c *gin.Context, err error) {
	var reason *region.Ineligibility
	switch {
	case errs.Is(err, errs.ErrIneligible) && errs.As(err, &reason):
		abort(c, http.StatusUnprocessableEntity, err, reason.Message, string(reason.Code), nil)
	case errs.Is(err, errs.ErrInvalidInput):
		abort(c, http.StatusBadRequest, err, err.Error(), "INVALID_INPUT", nil)
	case errs.Is(err, errs.ErrNotFound):
		abort(c, http.StatusNotFound, err, err.Error(), "NOT_FOUND", nil)
	case errs.Is(err, errs.ErrConflict):
		abort(c, http.StatusConflict, err, err.Error(), "CONFLICT", nil)
	default:
		abort(c, http.StatusInternalServerError, err, "Internal server error", "", nil)
	}
}

func abort(c *gin.Context, status int, err error, msg, code string, detail any) {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
