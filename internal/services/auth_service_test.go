package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"busbook/internal/domain"
	"busbook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

var insertAdmin = regexp.QuoteMeta("INSERT INTO `admins` (`password`, `username`) VALUES (?, ?)")

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock) {
	gw, mock := newMockGateway(t)
	return AuthService{
		Admins:   repositories.AdminRepository{GW: gw},
		Secret:   []byte("test-secret-0123456789"),
		TokenTTL: time.Hour,
	}, mock
}

func adminRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "password"})
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc, mock := newAuthService(t)

	_, err := svc.Register(context.Background(), "root", "secret1", "secret2")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery(selectAdminByKey).
		WithArgs("root", 1).
		WillReturnRows(adminRows().AddRow(1, "root", "$2a$hash"))

	_, err := svc.Register(context.Background(), "root", "secret", "secret")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRegister_StoresBcryptHash(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery(selectAdminByKey).
		WithArgs("root", 1).
		WillReturnRows(adminRows())
	mock.ExpectExec(insertAdmin).
		WithArgs(sqlmock.AnyArg(), "root").
		WillReturnResult(sqlmock.NewResult(4, 1))

	admin, err := svc.Register(context.Background(), " root ", "secret", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != 4 || admin.Username != "root" {
		t.Fatalf("unexpected admin: %+v", admin)
	}
	expectationsMet(t, mock)
}

func TestLogin_IssuesTokenThatParses(t *testing.T) {
	svc, mock := newAuthService(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	mock.ExpectQuery(selectAdminByKey).
		WithArgs("root", 1).
		WillReturnRows(adminRows().AddRow(1, "root", string(hash)))

	token, auth, err := svc.Login(context.Background(), "root", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !auth.IsAdmin() {
		t.Fatalf("expected admin context, got %+v", auth)
	}

	parsed, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Username != "root" || parsed.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", parsed)
	}
	expectationsMet(t, mock)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	mock.ExpectQuery(selectAdminByKey).
		WithArgs("root", 1).
		WillReturnRows(adminRows().AddRow(1, "root", string(hash)))

	_, _, err := svc.Login(context.Background(), "root", "nope")
	if !domain.IsAuthRequired(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery(selectAdminByKey).
		WithArgs("ghost", 1).
		WillReturnRows(adminRows())

	_, _, err := svc.Login(context.Background(), "ghost", "secret")
	if !domain.IsAuthRequired(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestParseToken_Expired(t *testing.T) {
	svc, _ := newAuthService(t)
	issued := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return issued }

	token, err := svc.issue(domain.AuthContext{Username: "root", Role: domain.RoleAdmin, ExpiresAt: issued.Add(time.Hour)})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.Now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := svc.ParseToken(token); !domain.IsAuthRequired(err) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	svc, _ := newAuthService(t)
	token, err := svc.issue(domain.AuthContext{Username: "root", Role: domain.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := svc
	other.Secret = []byte("another-secret-9876543210")
	if _, err := other.ParseToken(token); !domain.IsAuthRequired(err) {
		t.Fatalf("expected signature failure, got %v", err)
	}
	if _, err := svc.ParseToken(""); !domain.IsAuthRequired(err) {
		t.Fatalf("expected empty token to be rejected, got %v", err)
	}
}
