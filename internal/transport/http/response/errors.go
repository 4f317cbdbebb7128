package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-catalog-api/internal/domain"
)

// AErr carries the HTTP status a handler error should produce.
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "request error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Code: CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: CodeNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: CodeServerError, Msg: msg, Err: err}
}

// WriteErr maps handler/service errors onto the response envelope with a
// real HTTP status. Ownership violations surface as plain 404s.
func WriteErr(c *gin.Context, err error) {
	var ae *AErr
	if errors.As(err, &ae) {
		c.JSON(ae.Code, Error(ae.Code, ae.Error()))
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, Error(CodeNotFound, ""))
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, Error(CodeUnauthorized, err.Error()))
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrOwnerImmutable),
		errors.Is(err, domain.ErrMalformedImage):
		c.JSON(http.StatusBadRequest, Error(CodeBadRequest, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, Error(CodeServerError, err.Error()))
	}
}
