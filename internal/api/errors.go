package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"metropolitan/server/internal/models"
)

// errorStatuses maps error kinds to response codes. Anything not listed is a 500.
var errorStatuses = []struct {
	err    error
	status int
}{
	{models.ErrNotFound, http.StatusNotFound},
	{models.ErrInvalidInput, http.StatusBadRequest},
	{models.ErrWriteFailed, http.StatusBadRequest},
}

func statusForError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the response for a failed service call. Not found is an
// empty 404, server errors hide their cause behind message.
func (h *Handler) respondError(c *gin.Context, err error, message string) {
	status := statusForError(err)

	switch {
	case status == http.StatusNotFound:
		h.logger.WithError(err).Debug(message)
		c.AbortWithStatus(status)
	case status >= http.StatusInternalServerError:
		h.logger.WithError(err).Error(message)
		c.AbortWithStatusJSON(status, gin.H{"error": message})
	default:
		h.logger.WithError(err).Warn(message)
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
	}
}
