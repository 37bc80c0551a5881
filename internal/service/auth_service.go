//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"errors"
	"time"

	"go_titan_quest/internal/config"
	"go_titan_quest/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrMissingSigningKey は JWT の署名鍵が未設定であることを表す
var ErrMissingSigningKey = errors.New("jwt secret key is not configured")

// AuthService はプレイヤーのアクセストークンを発行します。
// パスワードは持たず、オンボーディング時に発行したトークンがそのまま身元になる。
type AuthService interface {
	IssueToken(playerID uuid.UUID, playerName string) (string, error)
}

type authService struct {
	cfg *config.Config
	now func() time.Time
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg, now: time.Now}
}

// IssueToken は subject にプレイヤーIDを入れた HS256 の JWT を返します。
// 認証が無効な環境ではトークンを発行しない (X-Player-ID ヘッダーで識別する)。
func (s *authService) IssueToken(playerID uuid.UUID, playerName string) (string, error) {
	if !s.cfg.Auth.Enabled {
		return "", nil
	}
	if s.cfg.JWT.SecretKey == "" {
		return "", ErrMissingSigningKey
	}

	now := s.now()
	ttl := s.cfg.JWT.TTL
	if ttl <= 0 {
		ttl = config.DefaultTokenTTL
	}

	claims := &model.JWTCustomClaims{
		PlayerName: playerName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.cfg.JWT.Issuer,
			Subject:   playerID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
