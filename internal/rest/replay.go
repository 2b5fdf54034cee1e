package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"namelab/business/replay"
)

type (
	ReplayHandler struct {
		validate *validator.Validate
	}

	ReplayRequest struct {
		Path string `json:"path" validate:"required"`
	}

	CompareRequest struct {
		PathA string `json:"path_a" validate:"required"`
		PathB string `json:"path_b" validate:"required"`
	}

	ReplayResponse struct {
		Summary    replay.ReplaySummary `json:"summary"`
		SchemaGate bool                 `json:"schema_gate"`
		ParityGate bool                 `json:"parity_gate"`
	}
)

func NewReplayHandler() *ReplayHandler {
	return &ReplayHandler{validate: validator.New()}
}

// POST /replay/summary
func (h *ReplayHandler) Summary(c echo.Context) error {
	var req ReplayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	summary, err := replay.ReplayFile(req.Path)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ReplayResponse{
		Summary:    summary,
		SchemaGate: replay.SchemaGate(summary),
		ParityGate: replay.LegacyParityGate(summary),
	}))
}

// POST /replay/compare
func (h *ReplayHandler) Compare(c echo.Context) error {
	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	summaryA, err := replay.ReplayFile(req.PathA)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
	}
	summaryB, err := replay.ReplayFile(req.PathB)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(replay.CompareSummaries(summaryA, summaryB)))
}
