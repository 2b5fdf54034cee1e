package rest

import (
	"context"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"namelab/business/allocation"
	"namelab/business/shadow"
)

type (
	AdminHandler struct {
		validate      *validator.Validate
		trainer       ModelTrainer
		campaignAdmin CampaignAdmin
	}

	ModelTrainer interface {
		Train(ctx context.Context, pairs []shadow.ArtifactPair, version string) (*shadow.Artifact, error)
		Calibrate(ctx context.Context, pairs []shadow.ArtifactPair) (shadow.CalibrationReport, error)
	}

	CampaignAdmin interface {
		State(ctx context.Context, campaign string) (*allocation.State, error)
		ResetState(ctx context.Context, campaign string) error
	}

	ArtifactPairRequest struct {
		CandidatesPath   string `json:"candidates_path" validate:"required"`
		AvailabilityPath string `json:"availability_path"`
		RoundLabel       string `json:"round_label" validate:"required"`
	}

	TrainRequest struct {
		Pairs   []ArtifactPairRequest `json:"pairs" validate:"required,min=1,dive"`
		Version string                `json:"version"`
	}

	CalibrateRequest struct {
		Pairs []ArtifactPairRequest `json:"pairs" validate:"required,min=1,dive"`
	}
)

func NewAdminHandler(trainer ModelTrainer, campaignAdmin CampaignAdmin) *AdminHandler {
	return &AdminHandler{
		validate:      validator.New(),
		trainer:       trainer,
		campaignAdmin: campaignAdmin,
	}
}

func toArtifactPairs(reqs []ArtifactPairRequest) []shadow.ArtifactPair {
	pairs := make([]shadow.ArtifactPair, 0, len(reqs))
	for _, r := range reqs {
		pairs = append(pairs, shadow.ArtifactPair{
			CandidatesPath:   r.CandidatesPath,
			AvailabilityPath: r.AvailabilityPath,
			RoundLabel:       r.RoundLabel,
		})
	}
	return pairs
}

// POST /admin/model/train
func (h *AdminHandler) TrainModel(c echo.Context) error {
	var req TrainRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	artifact, err := h.trainer.Train(c.Request().Context(), toArtifactPairs(req.Pairs), req.Version)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(artifact.Meta))
}

// POST /admin/model/calibrate
func (h *AdminHandler) CalibrateModel(c echo.Context) error {
	var req CalibrateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	report, err := h.trainer.Calibrate(c.Request().Context(), toArtifactPairs(req.Pairs))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(report))
}

// GET /admin/campaigns/:name/state
func (h *AdminHandler) GetCampaignState(c echo.Context) error {
	state, err := h.campaignAdmin.State(c.Request().Context(), c.Param("name"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if state == nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "campaign has no stored state"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(state))
}

// DELETE /admin/campaigns/:name/state
func (h *AdminHandler) ResetCampaignState(c echo.Context) error {
	if err := h.campaignAdmin.ResetState(c.Request().Context(), c.Param("name")); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("campaign state reset"))
}
