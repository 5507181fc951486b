package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"parking_service/internal/adapter/persistence/boltstore"
	"parking_service/internal/domain/entities"

	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*AuthUseCase, *boltstore.UserStore, *stubClock) {
	t.Helper()
	db, err := boltstore.Open(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	users := boltstore.NewUserStore(db)
	clock := &stubClock{t0}
	return NewAuthUseCase(users, "test-secret", time.Hour, clock), users, clock
}

func TestAuthUseCase_RegisterAndLogin(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := uc.Register(ctx, RegisterUserInput{Name: "Bia", Email: " Bia@Lot.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != entities.RoleOperator || user.Email != "bia@lot.com" || user.PasswordHash == "secret1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if _, err := uc.Register(ctx, RegisterUserInput{Name: "Bia", Email: "bia@lot.com", Password: "secret1"}); !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}

	res, err := uc.Login(ctx, "BIA@lot.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	if !res.ExpiresAt.Equal(t0.Add(time.Hour)) {
		t.Fatalf("expected expiry one hour after login, got %v", res.ExpiresAt)
	}

	id, err := uc.ValidateToken(res.Token)
	if err != nil {
		t.Fatalf("unexpected validate error: %v", err)
	}
	if id.UserID != user.ID || id.Role != entities.RoleOperator || id.Email != "bia@lot.com" {
		t.Fatalf("unexpected identity: %+v", id)
	}

	if _, err := uc.Login(ctx, "bia@lot.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Login(ctx, "nobody@lot.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthUseCase_RegisterValidation(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterUserInput
		want error
	}{
		{"missing name", RegisterUserInput{Email: "a@b.c", Password: "secret1"}, ErrInvalidName},
		{"bad email", RegisterUserInput{Name: "A", Email: "ab.c", Password: "secret1"}, ErrInvalidEmail},
		{"short password", RegisterUserInput{Name: "A", Email: "a@b.c", Password: "123"}, ErrInvalidPassword},
		{"bad role", RegisterUserInput{Name: "A", Email: "a@b.c", Password: "secret1", Role: "root"}, ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Register(ctx, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthUseCase_TokenRules(t *testing.T) {
	uc, users, clock := newAuthFixture(t)
	ctx := context.Background()

	if _, err := uc.Register(ctx, RegisterUserInput{Name: "Caio", Email: "caio@lot.com", Password: "secret1", Role: "admin"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := uc.Login(ctx, "caio@lot.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}

	t.Run("expired", func(t *testing.T) {
		clock.t = t0.Add(2 * time.Hour)
		defer func() { clock.t = t0 }()
		if _, err := uc.ValidateToken(res.Token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("foreign secret", func(t *testing.T) {
		other := NewAuthUseCase(users, "other-secret", time.Hour, clock)
		if _, err := other.ValidateToken(res.Token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := uc.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("inactive user cannot log in", func(t *testing.T) {
		hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
		if _, err := users.Create(ctx, entities.User{ID: "u-off", Name: "Off", Email: "off@lot.com", PasswordHash: string(hash), Role: entities.RoleOperator}); err != nil {
			t.Fatalf("seed user: %v", err)
		}
		if _, err := uc.Login(ctx, "off@lot.com", "secret1"); !errors.Is(err, ErrUserInactive) {
			t.Fatalf("expected ErrUserInactive, got %v", err)
		}
	})
}

func TestAuthUseCase_ChangePassword(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := uc.Register(ctx, RegisterUserInput{Name: "Duda", Email: "duda@lot.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.ChangePassword(ctx, user.ID, "wrong", "secret2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := uc.ChangePassword(ctx, user.ID, "secret1", "123"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if err := uc.ChangePassword(ctx, user.ID, "secret1", "secret2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Login(ctx, "duda@lot.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should no longer work, got %v", err)
	}
	if _, err := uc.Login(ctx, "duda@lot.com", "secret2"); err != nil {
		t.Fatalf("new password should work, got %v", err)
	}
	if err := uc.ChangePassword(ctx, "missing", "a", "secret2"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthUseCase_EnsureAdmin(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if err := uc.EnsureAdmin(ctx, "", ""); err != nil {
		t.Fatalf("empty bootstrap should be a no-op, got %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := uc.EnsureAdmin(ctx, "admin@lot.com", "admin123"); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}
	list, err := uc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Role != entities.RoleAdmin {
		t.Fatalf("expected one admin, got %+v", list)
	}
}
