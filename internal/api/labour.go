package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetLabourData(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	data, err := h.labour.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to get labour market data")
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) ListLabourData(c *gin.Context) {
	data, err := h.labour.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to get labour market data")
		return
	}

	c.JSON(http.StatusOK, data)
}
