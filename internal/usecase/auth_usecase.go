package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/infrastructure/logging"
	"parking_service/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

// Identity is what a valid token says about the caller.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   entities.Role
}

type authClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// IAuthUseCase handles operator accounts and bearer tokens.

type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterUserInput) (entities.User, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	ValidateToken(token string) (Identity, error)
	Me(ctx context.Context, userID string) (entities.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
	ListUsers(ctx context.Context) ([]entities.User, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type AuthUseCase struct {
	users      interfaces.IUserRepository
	secret     []byte
	expiration time.Duration
	clock      interfaces.IClock
	newID      func() string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, secret string, expiration time.Duration, clock interfaces.IClock) *AuthUseCase {
	if expiration <= 0 {
		expiration = 8 * time.Hour
	}
	return &AuthUseCase{
		users:      users,
		secret:     []byte(secret),
		expiration: expiration,
		clock:      clock,
		newID:      uuid.NewString,
	}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterUserInput) (entities.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.User{}, ErrInvalidName
	}
	email, err := normalizeEmail(in.Email, true)
	if err != nil {
		return entities.User{}, err
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, ErrInvalidPassword
	}
	role := entities.Role(strings.ToLower(strings.TrimSpace(in.Role)))
	if role == "" {
		role = entities.RoleOperator
	}
	if !role.Valid() {
		return entities.User{}, ErrInvalidRole
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := u.clock.Now().UTC()
	user := entities.User{
		ID:           u.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.User{}, ErrUserAlreadyExists
		}
		return entities.User{}, err
	}
	logging.WithFields(ctx, map[string]interface{}{"user_id": created.ID, "role": created.Role}).Info("[auth][register] user created")
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logging.WithFields(ctx, map[string]interface{}{"user_id": user.ID}).Warn("[auth][login] password mismatch")
		return LoginResult{}, ErrInvalidCredentials
	}
	if !user.Active {
		return LoginResult{}, ErrUserInactive
	}

	now := u.clock.Now().UTC()
	expiresAt := now.Add(u.expiration)
	claims := authClaims{
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}
	return LoginResult{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}

func (u *AuthUseCase) ValidateToken(token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, ErrInvalidToken
	}
	claims := &authClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return u.secret, nil
	}, jwt.WithTimeFunc(u.clock.Now))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}
	role := entities.Role(claims.Role)
	if !role.Valid() {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: claims.Subject, Name: claims.Name, Email: claims.Email, Role: role}, nil
}

func (u *AuthUseCase) Me(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrInvalidID
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *AuthUseCase) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := u.Me(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}
	if len(next) < minPasswordLength {
		return ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	updated, err := u.users.UpdatePassword(ctx, user.ID, string(hash))
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrUserNotFound
	}
	logging.WithFields(ctx, map[string]interface{}{"user_id": user.ID}).Info("[auth][password] changed")
	return nil
}

func (u *AuthUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	return u.users.List(ctx)
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil
	}
	_, err := u.Register(ctx, RegisterUserInput{Name: "Administrator", Email: email, Password: password, Role: string(entities.RoleAdmin)})
	if errors.Is(err, ErrUserAlreadyExists) {
		return nil
	}
	return err
}
