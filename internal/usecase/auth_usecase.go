package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"farmconnect/internal/domain/user"
	"farmconnect/internal/pkg/jwt"
	"farmconnect/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPhoneAlreadyRegistered = errors.New("phone already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

type RegisterInput struct {
	Name     string
	Phone    string
	Password string
	Role     string
}

type LoginInput struct {
	Phone    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, error)
}

type Auth struct {
	users  repository.UserRepository
	tokens jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, tokens jwt.Service) *Auth {
	return &Auth{users: users, tokens: tokens}
}

func (s *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" || in.Password == "" || !user.ValidRole(in.Role) {
		return user.User{}, "", ErrInvalidInput
	}

	exists, err := s.users.ExistsByPhone(ctx, phone)
	if err != nil {
		return user.User{}, "", fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	if exists {
		return user.User{}, "", ErrPhoneAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return user.User{}, "", fmt.Errorf("%w: %v", ErrDataAccess, err)
	}

	token, err := s.tokens.Generate(u.ID, u.Role)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitize(u), token, nil
}

func (s *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	phone := strings.TrimSpace(in.Phone)
	if phone == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	u, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", fmt.Errorf("%w: %v", ErrDataAccess, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID, u.Role)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitize(u), token, nil
}

func sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
