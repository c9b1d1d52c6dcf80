package handler

import (
	"errors"

	"farmconnect/internal/delivery/http/dto"
	"farmconnect/internal/delivery/http/middleware"
	"farmconnect/internal/domain/user"
	"farmconnect/internal/pkg/response"
	"farmconnect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, token, err := h.uc.Register(c.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "User registered successfully", dto.AuthResponse{
		User:  toUserResponse(usr),
		Token: token,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, token, err := h.uc.Login(c.Context(), usecase.LoginInput{Phone: req.Phone, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Login successful", dto.AuthResponse{
		User:  toUserResponse(usr),
		Token: token,
	})
}

func toUserResponse(u user.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Phone: u.Phone, Role: u.Role}
}

func mapAuthUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrPhoneAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "User already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required fields", nil, err)
	case errors.Is(err, usecase.ErrDataAccess):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
