package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "study-slot-scheduler/pkg/errors"
)

// OK sends 200 JSON with the given payload as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error renders an error response. HTTPError values keep their status and
// details; anything else is treated as a 400 validation failure.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, newErrResp(httpErr.Message, httpErr.Details))
		return
	}

	c.JSON(http.StatusBadRequest, newErrResp(err.Error(), ""))
}

// InternalError sends 500 with a generic message and the underlying error as details.
func InternalError(c *gin.Context, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	c.JSON(http.StatusInternalServerError, newErrResp(DefaultErrorMessage, details))
}
