package handler

import (
	"errors"

	"job-matcher/internal/delivery/http/dto"
	"job-matcher/internal/delivery/http/middleware"
	"job-matcher/internal/pkg/response"
	"job-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.PostMatch)
}

func (h *MatchHandler) PostMatch(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Malformed input", nil, err)
	}

	ranked, err := h.uc.Match(c.Context(), usecase.MatchParams{
		Candidate: req.Candidate,
		Jobs:      req.Jobs,
	})
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.MatchResponse{Matches: make([]map[string]any, 0, len(ranked))}
	for _, rp := range ranked {
		job := make(map[string]any, len(rp.Payload)+1)
		for k, v := range rp.Payload {
			job[k] = v
		}
		job["match_score"] = rp.MatchScore
		out.Matches = append(out.Matches, job)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrMalformedInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Malformed input", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
