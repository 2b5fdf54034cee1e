package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"namelab/business/planner"
	"namelab/domain"
	"namelab/pkg/metrics"
)

type (
	CampaignHandler struct {
		validate        *validator.Validate
		campaignService CampaignService
	}

	CampaignService interface {
		RecordRound(ctx context.Context, campaign, round string, outcomes []domain.RoundOutcome) error
		NextAllocation(ctx context.Context, campaign string, totalN int) (map[domain.Pattern]int, error)
		Plan(ctx context.Context, campaign string, k int, confidence float64) (planner.YieldPlan, error)
	}

	OutcomeRequest struct {
		Pattern    string `json:"pattern" validate:"required,oneof=A B C D E"`
		NChecked   int    `json:"n_checked" validate:"min=0"`
		NAvailable int    `json:"n_available" validate:"min=0"`
	}

	RecordRoundRequest struct {
		Round    string           `json:"round" validate:"required"`
		Outcomes []OutcomeRequest `json:"outcomes" validate:"required,min=1,dive"`
	}

	AllocationQuery struct {
		N int `query:"n"`
	}

	PlanQuery struct {
		K          int     `query:"k" validate:"required,min=1"`
		Confidence float64 `query:"confidence"`
	}
)

func NewCampaignHandler(svc CampaignService) *CampaignHandler {
	return &CampaignHandler{
		validate:        validator.New(),
		campaignService: svc,
	}
}

// POST /campaigns/:name/rounds
func (h *CampaignHandler) RecordRound(c echo.Context) error {
	campaign := c.Param("name")

	var req RecordRoundRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	outcomes := make([]domain.RoundOutcome, 0, len(req.Outcomes))
	for _, o := range req.Outcomes {
		outcomes = append(outcomes, domain.RoundOutcome{
			Pattern:    domain.Pattern(o.Pattern),
			NChecked:   o.NChecked,
			NAvailable: o.NAvailable,
		})
	}

	if err := h.campaignService.RecordRound(c.Request().Context(), campaign, req.Round, outcomes); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("round recorded"))
}

// GET /campaigns/:name/allocation?n=50
func (h *CampaignHandler) Allocation(c echo.Context) error {
	start := time.Now()
	campaign := c.Param("name")

	var q AllocationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.N <= 0 {
		q.N = 50
	}

	alloc, err := h.campaignService.NextAllocation(c.Request().Context(), campaign, q.N)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.AllocationLatency.Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, fres.Response.StatusOK(alloc))
}

// GET /campaigns/:name/plan?k=5&confidence=0.95
func (h *CampaignHandler) Plan(c echo.Context) error {
	campaign := c.Param("name")

	var q PlanQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.Confidence <= 0 || q.Confidence >= 1 {
		q.Confidence = 0.95
	}

	plan, err := h.campaignService.Plan(c.Request().Context(), campaign, q.K, q.Confidence)
	if err != nil {
		if err == planner.ErrEmptyHistory {
			return c.JSON(http.StatusConflict, ResponseError{Message: "campaign has no recorded yield history"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(plan))
}
