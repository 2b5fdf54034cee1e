package rest

import (
	"context"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"namelab/business/shadow"
	"namelab/domain"
)

type (
	ScoringHandler struct {
		validate      *validator.Validate
		shadowService ShadowService
	}

	ShadowService interface {
		Score(ctx context.Context, candidates []domain.Candidate) ([]shadow.ScoredCandidate, error)
	}

	ScoreCandidateRequest struct {
		Name       string `json:"name" validate:"required"`
		Pattern    string `json:"pattern" validate:"required,oneof=A B C D E"`
		ScoreD     int    `json:"score_d"`
		ScoreW     int    `json:"score_w"`
		ScoreP     int    `json:"score_p"`
		ScoreE     int    `json:"score_e"`
		ScoreI     int    `json:"score_i"`
		TotalScore int    `json:"total_score"`
	}

	ScoreRequest struct {
		Candidates []ScoreCandidateRequest `json:"candidates" validate:"required,min=1,dive"`
	}
)

func NewScoringHandler(svc ShadowService) *ScoringHandler {
	return &ScoringHandler{
		validate:      validator.New(),
		shadowService: svc,
	}
}

// POST /score
func (h *ScoringHandler) Score(c echo.Context) error {
	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	candidates := make([]domain.Candidate, 0, len(req.Candidates))
	for _, r := range req.Candidates {
		candidates = append(candidates, domain.Candidate{
			Name:       r.Name,
			Pattern:    domain.Pattern(r.Pattern),
			ScoreD:     r.ScoreD,
			ScoreW:     r.ScoreW,
			ScoreP:     r.ScoreP,
			ScoreE:     r.ScoreE,
			ScoreI:     r.ScoreI,
			TotalScore: r.TotalScore,
		})
	}

	scored, err := h.shadowService.Score(c.Request().Context(), candidates)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(scored))
}
