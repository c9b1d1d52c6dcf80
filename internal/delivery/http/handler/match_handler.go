package handler

import (
	"context"
	"errors"

	"farmconnect/internal/delivery/http/dto"
	"farmconnect/internal/delivery/http/middleware"
	"farmconnect/internal/domain/match"
	"farmconnect/internal/pkg/response"
	"farmconnect/internal/repository"
	"farmconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchLifecycleUsecase
}

func NewMatchHandler(uc usecase.MatchLifecycleUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/matches", h.ListPending)
	r.Post("/matches/:match_id/accept", h.Accept)
	r.Post("/matches/:match_id/reject", h.Reject)
}

func (h *MatchHandler) ListPending(c fiber.Ctx) error {
	rows, err := h.uc.ListPending(c.Context(), fiber.Query[int](c, "limit", 10))
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.PendingMatchListResponse{
		Matches: make([]dto.PendingMatchResponse, 0, len(rows)),
		Count:   len(rows),
	}
	for _, row := range rows {
		out.Matches = append(out.Matches, toPendingMatchResponse(row))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) Accept(c fiber.Ctx) error {
	return h.transition(c, h.uc.Accept, "Match accepted successfully")
}

func (h *MatchHandler) Reject(c fiber.Ctx) error {
	return h.transition(c, h.uc.Reject, "Match rejected successfully")
}

func (h *MatchHandler) transition(
	c fiber.Ctx,
	do func(ctx context.Context, matchID, actorID uuid.UUID) (match.Match, error),
	message string,
) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	matchID, err := uuid.Parse(c.Params("match_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid match id", nil, err)
	}

	updated, err := do(c.Context(), matchID, actorID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, message, toMatchResponse(updated))
}

func toPendingMatchResponse(row repository.PendingMatchRow) dto.PendingMatchResponse {
	return dto.PendingMatchResponse{
		MatchResponse: toMatchResponse(row.Match),
		WorkerName:    row.WorkerName,
		WorkerPhone:   row.WorkerPhone,
		JobTitle:      row.JobTitle,
		WagePerDay:    row.WagePerDay,
	}
}

func toMatchResponse(m match.Match) dto.MatchResponse {
	return dto.MatchResponse{
		ID:         m.ID,
		JobID:      m.JobID,
		WorkerID:   m.WorkerID,
		MatchScore: m.Score,
		DistanceKm: m.DistanceKm,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
	}
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, match.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, match.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Match is not pending", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Match belongs to another worker", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrDataAccess):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
