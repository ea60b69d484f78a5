package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
	"busbook/internal/repositories"
	"busbook/internal/utils"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const errDuplicateEntry = 1062

var errInvalidCredentials = domain.AuthRequiredError{Msg: "invalid username or password"}

// AuthService registers admins and issues the tokens that gate admin routes.
type AuthService struct {
	Admins   repositories.AdminRepository
	Secret   []byte
	TokenTTL time.Duration
	Now      func() time.Time
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

// Register creates an admin account.
func (s AuthService) Register(ctx context.Context, username, password, confirm string) (models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Admin{}, domain.ValidationError{Msg: "username and password are required"}
	}
	if password != confirm {
		return models.Admin{}, domain.ValidationError{Field: "confirm_password", Msg: "passwords do not match"}
	}

	_, err := s.Admins.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return models.Admin{}, domain.ConflictError{Resource: "admin", Msg: "username already taken"}
	case !domain.IsNotFound(err):
		return models.Admin{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	id, err := s.Admins.Create(ctx, username, string(hash))
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
			return models.Admin{}, domain.ConflictError{Resource: "admin", Msg: "username already taken", Err: err}
		}
		return models.Admin{}, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "auth", "register", fmt.Sprintf("admin_id=%d", id))
	return models.Admin{ID: id, Username: username}, nil
}

// Login checks the password and returns a signed token for the admin.
func (s AuthService) Login(ctx context.Context, username, password string) (string, domain.AuthContext, error) {
	admin, err := s.Admins.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if domain.IsNotFound(err) {
			return "", domain.AuthContext{}, errInvalidCredentials
		}
		return "", domain.AuthContext{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", domain.AuthContext{}, errInvalidCredentials
	}

	auth := domain.AuthContext{
		Username:  admin.Username,
		Role:      domain.RoleAdmin,
		ExpiresAt: s.now().Add(s.ttl()).Truncate(time.Second),
	}
	token, err := s.issue(auth)
	if err != nil {
		return "", domain.AuthContext{}, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "auth", "login", "username="+admin.Username)
	return token, auth, nil
}

func (s AuthService) issue(auth domain.AuthContext) (string, error) {
	claims := adminClaims{
		Role: auth.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   auth.Username,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(auth.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return token, nil
}

// ParseToken validates a token and returns the admin it was issued to.
func (s AuthService) ParseToken(raw string) (*domain.AuthContext, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.AuthRequiredError{}
	}
	var claims adminClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domain.AuthRequiredError{Msg: "session expired or invalid", Err: err}
	}
	auth := &domain.AuthContext{Username: claims.Subject, Role: claims.Role}
	if claims.ExpiresAt != nil {
		auth.ExpiresAt = claims.ExpiresAt.Time
	}
	if err := domain.RequireAdmin(auth); err != nil {
		return nil, err
	}
	return auth, nil
}
