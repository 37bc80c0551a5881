package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_titan_quest/internal/config"
	"go_titan_quest/internal/model"
	"go_titan_quest/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// subject のプレイヤーIDをコンテキストにセットします
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized))
				return
			}

			// "Bearer {token}" の形式を検証
			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized))
				return
			}

			// 署名・有効期限・アルゴリズム (HS256 のみ) を検証
			claims := &model.JWTCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.SecretKey), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(cfg.JWT.Issuer))
			if err != nil || !token.Valid {
				code, msg := "INVALID_TOKEN", "トークンが無効です。"
				if errors.Is(err, jwt.ErrTokenExpired) {
					code, msg = "TOKEN_EXPIRED", "トークンの有効期限が切れています。"
				}
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError(code, msg, "", model.ErrUnauthorized))
				return
			}

			playerID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンのプレイヤー情報が不正です。", "", model.ErrUnauthorized))
				return
			}

			next.ServeHTTP(w, r.WithContext(withPlayer(r.Context(), playerID)))
		})
	}
}

// withPlayer はプレイヤーIDをコンテキストにセットし、ロガーにも付与します
func withPlayer(ctx context.Context, playerID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.PlayerIDKey, playerID)
	return WithLogger(ctx, GetLogger(ctx).With("player_id", playerID.String()))
}

// GetPlayerIDFromContext は認証ミドルウェアがセットしたプレイヤーIDを返します
func GetPlayerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.PlayerIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからプレイヤー情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
