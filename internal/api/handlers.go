package api

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"metropolitan/server/internal/models"
)

type HousingService interface {
	Add(ctx context.Context, h *models.HousingData) (*models.HousingData, error)
	Get(ctx context.Context, id int64) (*models.HousingData, error)
	Update(ctx context.Context, h *models.HousingData) (*models.HousingData, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter models.HousingFilter) ([]models.HousingData, error)
	Count(ctx context.Context) (int64, error)
	TotalStartsByArea(ctx context.Context, censusArea string) (int64, error)
	TotalCompleteByArea(ctx context.Context, censusArea string) (int64, error)
}

type LabourService interface {
	Get(ctx context.Context, id int64) (*models.LabourData, error)
	List(ctx context.Context) ([]models.LabourData, error)
}

type CombinedService interface {
	Combine(ctx context.Context, censusArea string, labourID int64) (*models.CombinedData, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	housing  HousingService
	labour   LabourService
	combined CombinedService
	health   HealthChecker
	logger   *logrus.Logger
}

func NewHandler(housing HousingService, labour LabourService, combined CombinedService, health HealthChecker, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		housing:  housing,
		labour:   labour,
		combined: combined,
		health:   health,
		logger:   logger,
	}
}

func (h *Handler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: " + c.Param("id")})
		return 0, false
	}
	return id, true
}
