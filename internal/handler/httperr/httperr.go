package httperr

import (
	"log/slog"
	"net/http"

	"tokengate/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Classify picks the status for err from its category marker. Uncategorized
// errors are internal faults and get a generic message.
func Classify(err error) (int, string) {
	var status int
	switch {
	case errs.IsCategory(err, errs.ErrValidation), errs.IsCategory(err, errs.ErrConflict):
		status = http.StatusBadRequest
	case errs.IsCategory(err, errs.ErrNotFound):
		status = http.StatusNotFound
	case errs.IsCategory(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errs.IsCategory(err, errs.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError, internalMessage
	}
	return status, err.Error()
}

// Abort is AbortWithError with status and message taken from Classify.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	if status == http.StatusInternalServerError {
		slog.Error("internal error",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, 12)))
	}
	AbortWithError(c, status, err, msg, nil)
}
