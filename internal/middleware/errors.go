package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON response when the
// handler did not write one itself.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()
	ev := logger.Ctx(c.Request.Context()).Error()
	if c.Writer.Written() && c.Writer.Status() < http.StatusInternalServerError {
		ev = logger.Ctx(c.Request.Context()).Warn()
	}
	ev.Err(last.Err).Int("errors", len(c.Errors)).Str("route", c.FullPath()).Msg("request failed")

	if c.Writer.Written() {
		return
	}
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.NewErrorResponse(http.StatusText(status), nil))
}

// AbortWithError records err on the context for ErrorHandler to log and aborts with a JSON body
// carrying message and err as details.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
