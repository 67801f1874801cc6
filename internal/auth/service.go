package auth

import (
	"context"
	"errors"
	"time"

	"github.com/russelescultura/sk-barangay-sub000/internal/db"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Service struct {
	secret []byte
	db     db.Querier
}

type Claims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

func NewService(secret string, db db.Querier) *Service {
	return &Service{
		secret: []byte(secret),
		db:     db,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (Admin, TokenResponse, error) {
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return Admin{}, TokenResponse{}, errors.New("email, username, password required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return Admin{}, TokenResponse{}, err
	}

	admin := Admin{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Position:     req.Position,
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO admins (id, email, username, password_hash, full_name, position)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at
	`, admin.ID, admin.Email, admin.Username, admin.PasswordHash, admin.FullName, admin.Position)
	if err := row.Scan(&admin.CreatedAt, &admin.UpdatedAt); err != nil {
		return Admin{}, TokenResponse{}, err
	}

	tokens, err := s.GenerateTokens(ctx, admin.ID)
	if err != nil {
		return Admin{}, TokenResponse{}, err
	}
	return admin, tokens, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (Admin, TokenResponse, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, email, username, password_hash, full_name, position, created_at, updated_at
		FROM admins WHERE email = $1
	`, req.Email)

	var admin Admin
	if err := row.Scan(&admin.ID, &admin.Email, &admin.Username, &admin.PasswordHash, &admin.FullName, &admin.Position, &admin.CreatedAt, &admin.UpdatedAt); err != nil {
		return Admin{}, TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return Admin{}, TokenResponse{}, errors.New("invalid credentials")
	}

	tokens, err := s.GenerateTokens(ctx, admin.ID)
	if err != nil {
		return Admin{}, TokenResponse{}, err
	}
	return admin, tokens, nil
}

func (s *Service) GenerateTokens(ctx context.Context, adminID string) (TokenResponse, error) {
	access, err := s.signToken(adminID, accessTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	refresh, err := s.signToken(adminID, refreshTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	if err := s.saveRefreshToken(ctx, refresh, adminID, refreshTokenTTL); err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
	}, nil
}

func (s *Service) ValidateRefreshToken(ctx context.Context, token string) (string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", err
	}

	adminID, expiresAt, err := s.lookupRefreshToken(ctx, token)
	if err != nil || adminID != claims.AdminID || time.Now().After(expiresAt) {
		return "", errors.New("refresh token invalid")
	}
	return claims.AdminID, nil
}

func (s *Service) ValidateAccessToken(token string) (string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", err
	}
	return claims.AdminID, nil
}

func (s *Service) signToken(adminID string, ttl time.Duration) (string, error) {
	claims := Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("token invalid")
	}
	return claims, nil
}

func (s *Service) saveRefreshToken(ctx context.Context, token, adminID string, ttl time.Duration) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO refresh_tokens (id, admin_id, token, expires_at)
		VALUES ($1,$2,$3,$4)
	`, uuid.NewString(), adminID, token, time.Now().Add(ttl))
	return err
}

func (s *Service) lookupRefreshToken(ctx context.Context, token string) (string, time.Time, error) {
	row := s.db.QueryRow(ctx, `
		SELECT admin_id, expires_at
		FROM refresh_tokens
		WHERE token = $1 AND revoked_at IS NULL
	`, token)
	var adminID string
	var expiresAt time.Time
	if err := row.Scan(&adminID, &expiresAt); err != nil {
		return "", time.Time{}, err
	}
	return adminID, expiresAt, nil
}
