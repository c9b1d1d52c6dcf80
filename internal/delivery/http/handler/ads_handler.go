package handler

import (
	"farmconnect/internal/delivery/http/dto"
	"farmconnect/internal/delivery/http/middleware"
	"farmconnect/internal/pkg/response"
	"farmconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AdsHandler struct {
	uc usecase.AdsUsecase
}

type createCampaignRequest struct {
	CampaignName string  `json:"campaign_name"`
	AdContent    string  `json:"ad_content"`
	TargetRole   string  `json:"target_role"`
	Budget       float64 `json:"budget"`
}

func NewAdsHandler(uc usecase.AdsUsecase) *AdsHandler {
	return &AdsHandler{uc: uc}
}

func (h *AdsHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/campaigns", h.CreateCampaign, auth)
	r.Get("/target-audience", h.TargetAudience)
}

func (h *AdsHandler) CreateCampaign(c fiber.Ctx) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createCampaignRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	campaign, err := h.uc.CreateCampaign(c.Context(), usecase.CreateCampaignInput{
		CompanyID:  actorID,
		Name:       req.CampaignName,
		Content:    req.AdContent,
		TargetRole: req.TargetRole,
		Budget:     req.Budget,
	})
	if err != nil {
		return mapLabourUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Campaign created successfully", dto.CampaignResponse{
		ID:         campaign.ID,
		CompanyID:  campaign.CompanyID,
		Name:       campaign.Name,
		Content:    campaign.Content,
		TargetRole: campaign.TargetRole,
		Budget:     campaign.Budget,
		Status:     campaign.Status,
	})
}

func (h *AdsHandler) TargetAudience(c fiber.Ctx) error {
	targetRole := c.Query("target_role")
	if targetRole == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Target role required", nil, nil)
	}

	audience, err := h.uc.TargetAudience(c.Context(), targetRole)
	if err != nil {
		return mapLabourUsecaseError(err)
	}

	out := dto.AudienceResponse{
		AudienceCount: len(audience),
		Audience:      make([]dto.UserResponse, 0, len(audience)),
	}
	for _, u := range audience {
		out.Audience = append(out.Audience, toUserResponse(u))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
