package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"metropolitan/server/internal/models"
)

func (h *Handler) AddHousingData(c *gin.Context) {
	var record models.HousingData
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.WithError(err).Warn("Invalid housing data body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := h.housing.Add(c.Request.Context(), &record)
	if err != nil {
		h.respondError(c, err, "Failed to add housing data")
		return
	}

	c.JSON(http.StatusCreated, stored)
}

func (h *Handler) GetHousingData(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	record, err := h.housing.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to get housing data")
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) UpdateHousingData(c *gin.Context) {
	var record models.HousingData
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.WithError(err).Warn("Invalid housing data body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.housing.Update(c.Request.Context(), &record); err != nil {
		h.respondError(c, err, "Failed to update housing data")
		return
	}

	c.String(http.StatusOK, "Updated")
}

func (h *Handler) DeleteHousingData(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.housing.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete housing data")
		return
	}

	c.String(http.StatusOK, "Deleted")
}

// ListHousingData returns every record, optionally only those whose
// totalStarts or totalComplete equal the query values.
func (h *Handler) ListHousingData(c *gin.Context) {
	var filter models.HousingFilter
	for param, target := range map[string]**int{
		"totalStarts":   &filter.TotalStarts,
		"totalComplete": &filter.TotalComplete,
	} {
		raw, ok := c.GetQuery(param)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param + ": " + raw})
			return
		}
		*target = &v
	}

	data, err := h.housing.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err, "Failed to get housing data")
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) CountHousingData(c *gin.Context) {
	count, err := h.housing.Count(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to count housing data")
		return
	}

	c.JSON(http.StatusOK, count)
}

func (h *Handler) GetTotalStartsByCensusArea(c *gin.Context) {
	total, err := h.housing.TotalStartsByArea(c.Request.Context(), c.Param("censusArea"))
	if err != nil {
		h.respondError(c, err, "Failed to get total housing starts")
		return
	}

	c.JSON(http.StatusOK, total)
}

func (h *Handler) GetTotalCompleteByCensusArea(c *gin.Context) {
	total, err := h.housing.TotalCompleteByArea(c.Request.Context(), c.Param("censusArea"))
	if err != nil {
		h.respondError(c, err, "Failed to get total housing completions")
		return
	}

	c.JSON(http.StatusOK, total)
}
