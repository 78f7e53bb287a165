package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the gin engine with logging, recovery and CORS in front of
// the API routes.
func NewRouter(handler *Handler, allowedOrigins []string, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	// census area names may contain encoded slashes
	router.UseRawPath = true

	router.Use(Recovery(logger), RequestLogger(logger), CORS(allowedOrigins))
	SetupRoutes(router, handler)
	return router
}

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		housing := api.Group("/housingStats")
		housing.POST("", handler.AddHousingData)
		housing.PUT("", handler.UpdateHousingData)
		housing.GET("", handler.ListHousingData)
		housing.GET("/id/:id", handler.GetHousingData)
		housing.DELETE("/:id", handler.DeleteHousingData)
		housing.GET("/count", handler.CountHousingData)
		housing.GET("/starts/:censusArea", handler.GetTotalStartsByCensusArea)
		housing.GET("/completions/:censusArea", handler.GetTotalCompleteByCensusArea)

		labour := api.Group("/labourMarket")
		labour.GET("", handler.ListLabourData)
		labour.GET("/:id", handler.GetLabourData)

		api.GET("/combined/:censusArea/:id", handler.GetCombinedData)
		api.GET("/combined/:censusArea/:id/", handler.GetCombinedData)

		api.GET("/health", handler.HealthCheck)
	}
}
