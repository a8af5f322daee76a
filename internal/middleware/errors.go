package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stocktrend/internal/domain/dto"
)

// AbortWithError stops the chain and writes a dto.ErrorResponse with the given status.
// err may be nil; when present its message goes into the "error" field.
func AbortWithError(c *gin.Context, status int, msg string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(msg, err))
}

// ErrorHandler turns errors attached with c.Error() into a JSON response when
// the handler did not write one itself.
//
// A dto.ErrorResponse in the chain is written as-is; any other error becomes a 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last().Err
	var resp dto.ErrorResponse
	if errors.As(last, &resp) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
		return
	}
	AbortWithError(c, http.StatusInternalServerError, "internal server error", last)
}
