package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTCustomClaims はJWTに含めるカスタムクレーム（ペイロード）
type JWTCustomClaims struct {
	PlayerName string `json:"name,omitempty"`
	jwt.RegisteredClaims // 標準クレーム (iss, sub, exp など) を埋め込む
}
