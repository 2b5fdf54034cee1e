package router

import (
	"github.com/labstack/echo/v4"

	"namelab/internal/middleware"
	"namelab/internal/rest"
)

func SetCampaignRoutes(e *echo.Echo, h *rest.CampaignHandler) {
	g := e.Group("/campaigns/:name")
	g.POST("/rounds", h.RecordRound)
	g.GET("/allocation", h.Allocation)
	g.GET("/plan", h.Plan)
}

func SetScoringRoutes(e *echo.Echo, h *rest.ScoringHandler) {
	e.POST("/score", h.Score)
}

func SetReplayRoutes(e *echo.Echo, h *rest.ReplayHandler) {
	g := e.Group("/replay")
	g.POST("/summary", h.Summary)
	g.POST("/compare", h.Compare)
}

func SetAdminRoutes(e *echo.Echo, h *rest.AdminHandler) {
	g := e.Group("/admin", middleware.AuthMiddleware())
	g.POST("/model/train", h.TrainModel)
	g.POST("/model/calibrate", h.CalibrateModel)
	g.GET("/campaigns/:name/state", h.GetCampaignState)
	g.DELETE("/campaigns/:name/state", h.ResetCampaignState)
}
