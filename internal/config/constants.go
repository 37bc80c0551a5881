// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "titan-quest"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultRequestTimeout   = 60 * time.Second
	DefaultShutdownTimeout  = 5 * time.Second
	DefaultTimezone         = "Local"
	DefaultLogLevel         = "info"
	DefaultDatabaseURL      = "titan_quest.db"
	DefaultTokenTTL         = 30 * 24 * time.Hour
	DefaultGeminiModel      = "gemini-2.5-flash"
	DefaultGeminiTimeout    = 30 * time.Second
	DefaultContentLanguage  = "Japanese"
	DefaultMailFrom         = "no-reply@titan-quest.local"
	DefaultAutosaveInterval = 5 * time.Minute
)

// メーラーの種類
const (
	MailerTypeLog = "log"
	MailerTypeSES = "ses"
)
