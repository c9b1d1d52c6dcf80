package usecase

import (
	"context"
	"errors"
	"testing"

	"farmconnect/internal/domain/user"
	"farmconnect/internal/pkg/jwt"

	"github.com/google/uuid"
)

type memUserRepo struct {
	byPhone map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byPhone: make(map[string]user.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u user.User) error {
	r.byPhone[u.Phone] = u
	return nil
}

func (r *memUserRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	_, ok := r.byPhone[phone]
	return ok, nil
}

func (r *memUserRepo) GetByPhone(ctx context.Context, phone string) (user.User, error) {
	u, ok := r.byPhone[phone]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range r.byPhone {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *memUserRepo) ListByRole(ctx context.Context, role string, limit int) ([]user.User, error) {
	out := make([]user.User, 0)
	for _, u := range r.byPhone {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Generate(userID uuid.UUID, role string) (string, error) {
	return s.token, s.err
}

func (s staticTokens) Validate(tokenString string) (jwt.Claims, error) {
	return jwt.Claims{}, errors.New("not implemented")
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUsecase(repo, staticTokens{token: "tok"})

	in := RegisterInput{Name: "Ravi", Phone: "9876543210", Password: "secret", Role: user.RoleFarmer}
	u, token, err := uc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token != "tok" {
		t.Fatalf("token = %q", token)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}

	stored, err := repo.GetByPhone(context.Background(), in.Phone)
	if err != nil {
		t.Fatalf("GetByPhone: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == in.Password {
		t.Fatalf("stored password not hashed")
	}

	logged, token, err := uc.Login(context.Background(), LoginInput{Phone: in.Phone, Password: in.Password})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "tok" || logged.ID != stored.ID {
		t.Fatalf("login = (%s, %q)", logged.ID, token)
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUsecase(repo, staticTokens{token: "tok"})

	in := RegisterInput{Name: "Ravi", Phone: "9876543210", Password: "secret", Role: user.RoleWorker}
	if _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, _, err := uc.Register(context.Background(), in)
	if !errors.Is(err, ErrPhoneAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrPhoneAlreadyRegistered", err)
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	uc := NewAuthUsecase(newMemUserRepo(), staticTokens{token: "tok"})

	cases := []RegisterInput{
		{Phone: "1", Password: "x", Role: user.RoleFarmer},
		{Name: "a", Password: "x", Role: user.RoleFarmer},
		{Name: "a", Phone: "1", Role: user.RoleFarmer},
		{Name: "a", Phone: "1", Password: "x", Role: "admin"},
	}
	for _, in := range cases {
		if _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Register(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUsecase(repo, staticTokens{token: "tok"})

	in := RegisterInput{Name: "Ravi", Phone: "9876543210", Password: "secret", Role: user.RoleCompany}
	if _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := uc.Login(context.Background(), LoginInput{Phone: in.Phone, Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownPhone(t *testing.T) {
	uc := NewAuthUsecase(newMemUserRepo(), staticTokens{token: "tok"})

	_, _, err := uc.Login(context.Background(), LoginInput{Phone: "0000000000", Password: "x"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}
