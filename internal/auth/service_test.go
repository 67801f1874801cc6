package auth

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"golang.org/x/crypto/bcrypt"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestRegisterAndLogin(t *testing.T) {
	mock := newMock(t)

	createdAt := time.Now().Add(-time.Minute)
	updatedAt := time.Now().Add(-time.Minute)

	mock.ExpectQuery(`INSERT INTO admins`).
		WithArgs(pgxmock.AnyArg(), "chair@sk.gov.ph", "skchair", pgxmock.AnyArg(), "Juan Dela Cruz", "SK Chairperson").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, updatedAt))

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("test-secret", mock)
	admin, tokens, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "chair@sk.gov.ph",
		Username: "skchair",
		Password: "password123",
		FullName: "Juan Dela Cruz",
		Position: "SK Chairperson",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if admin.ID == "" || tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected admin and tokens")
	}

	mock.ExpectQuery(`SELECT id, email, username, password_hash, full_name, position, created_at, updated_at`).
		WithArgs("chair@sk.gov.ph").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "username", "password_hash", "full_name", "position", "created_at", "updated_at"}).
			AddRow(admin.ID, admin.Email, admin.Username, admin.PasswordHash, admin.FullName, admin.Position, createdAt, updatedAt))

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), admin.ID, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	_, loginTokens, err := svc.Login(context.Background(), LoginRequest{Email: "chair@sk.gov.ph", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loginTokens.AccessToken == "" || loginTokens.RefreshToken == "" {
		t.Fatalf("expected login tokens")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewService("test-secret", newMock(t))
	if _, _, err := svc.Register(context.Background(), RegisterRequest{Email: "", Username: "u", Password: "p"}); err == nil {
		t.Fatalf("expected error for missing email")
	}
}

func TestLoginInvalidPassword(t *testing.T) {
	mock := newMock(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	now := time.Now()
	mock.ExpectQuery(`SELECT id, email, username, password_hash, full_name, position, created_at, updated_at`).
		WithArgs("chair@sk.gov.ph").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "username", "password_hash", "full_name", "position", "created_at", "updated_at"}).
			AddRow("admin-1", "chair@sk.gov.ph", "skchair", string(hash), "Juan Dela Cruz", "SK Chairperson", now, now))

	svc := NewService("test-secret", mock)
	if _, _, err := svc.Login(context.Background(), LoginRequest{Email: "chair@sk.gov.ph", Password: "wrong"}); err == nil {
		t.Fatalf("expected invalid credentials")
	}
}

func TestValidateRefreshToken(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), "admin-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("test-secret", mock)
	tokens, err := svc.GenerateTokens(context.Background(), "admin-1")
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	expiresAt := time.Now().Add(5 * time.Minute)
	mock.ExpectQuery(`SELECT admin_id, expires_at`).
		WithArgs(tokens.RefreshToken).
		WillReturnRows(pgxmock.NewRows([]string{"admin_id", "expires_at"}).AddRow("admin-1", expiresAt))

	adminID, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
	if adminID != "admin-1" {
		t.Fatalf("unexpected admin_id: %s", adminID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestValidateRefreshTokenExpired(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), "admin-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("test-secret", mock)
	tokens, err := svc.GenerateTokens(context.Background(), "admin-1")
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	mock.ExpectQuery(`SELECT admin_id, expires_at`).
		WithArgs(tokens.RefreshToken).
		WillReturnRows(pgxmock.NewRows([]string{"admin_id", "expires_at"}).AddRow("admin-1", time.Now().Add(-time.Minute)))

	if _, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken); err == nil {
		t.Fatalf("expected expired token error")
	}
}

func TestValidateRefreshTokenMismatch(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), "admin-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("test-secret", mock)
	tokens, err := svc.GenerateTokens(context.Background(), "admin-1")
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	mock.ExpectQuery(`SELECT admin_id, expires_at`).
		WithArgs(tokens.RefreshToken).
		WillReturnRows(pgxmock.NewRows([]string{"admin_id", "expires_at"}).AddRow("someone-else", time.Now().Add(time.Hour)))

	if _, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestValidateAccessToken(t *testing.T) {
	svc := NewService("test-secret", nil)
	token, err := svc.signToken("admin-1", accessTokenTTL)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	adminID, err := svc.ValidateAccessToken(token)
	if err != nil || adminID != "admin-1" {
		t.Fatalf("validate access: %v %s", err, adminID)
	}

	if _, err := svc.ValidateAccessToken("not-a-token"); err == nil {
		t.Fatalf("expected parse error")
	}

	other := NewService("other-secret", nil)
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected signature mismatch")
	}
}

func TestValidateExpiredAccessToken(t *testing.T) {
	svc := NewService("test-secret", nil)
	token, err := svc.signToken("admin-1", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected expiry error")
	}
}
