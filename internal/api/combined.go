package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCombinedData answers with the housing starts total of a census area
// together with one labour record, or an empty 404 when that record is missing.
func (h *Handler) GetCombinedData(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	data, err := h.combined.Combine(c.Request.Context(), c.Param("censusArea"), id)
	if err != nil {
		h.respondError(c, err, "Failed to get combined data")
		return
	}

	c.JSON(http.StatusOK, data)
}
