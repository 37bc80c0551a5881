// internal/config/config.go
package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port            string        `mapstructure:"port"`
		RequestTimeout  time.Duration `mapstructure:"request_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`
	App struct {
		// Timezone はデイリープランの「今日」を決めるタイムゾーン
		Timezone string `mapstructure:"timezone"`
	} `mapstructure:"app"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey string        `mapstructure:"secret_key"`
		Issuer    string        `mapstructure:"issuer"`
		TTL       time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`
	Gemini struct {
		APIKey   string        `mapstructure:"api_key"`
		Model    string        `mapstructure:"model"`
		Timeout  time.Duration `mapstructure:"timeout"`
		Language string        `mapstructure:"language"`
	} `mapstructure:"gemini"`
	Mailer struct {
		Type string `mapstructure:"type"` // "log" or "ses"
		From string `mapstructure:"from"`
	} `mapstructure:"mailer"`
	SES struct {
		Region          string `mapstructure:"region"`
		AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
	} `mapstructure:"ses"`
	Jobs struct {
		AutosaveInterval time.Duration `mapstructure:"autosave_interval"`
	} `mapstructure:"jobs"`
}

var Cfg Config

// LoadConfig は .env → 設定ファイル → 環境変数の順に読み込み、グローバルの Cfg を更新します
func LoadConfig(path string) error {
	// .env はローカル開発用。無くてもエラーにしない
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	// 例: APP_SERVER_PORT → server.port
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	v.BindEnv("gemini.api_key", "GEMINI_API_KEY", "API_KEY")
	v.BindEnv("mailer.type", "MAILER_TYPE")
	v.BindEnv("ses.region", "AWS_REGION")
	v.BindEnv("ses.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("ses.secret_access_key", "AWS_SECRET_ACCESS_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&cfg, v.IsSet("auth.enabled"))
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Gemini Model: %s (api key set: %t)", Cfg.Gemini.Model, Cfg.Gemini.APIKey != "")
	log.Printf("Mailer: %s", Cfg.Mailer.Type)

	return nil
}

// applyDefaults は未設定の項目にデフォルト値を入れます
func applyDefaults(cfg *Config, authSet bool) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = DefaultTimezone
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Player-ID"}
	}
	if cfg.Database.URL == "" {
		log.Printf("Warning: Database URL is not set, using default '%s'", DefaultDatabaseURL)
		cfg.Database.URL = DefaultDatabaseURL
	}
	// 認証は未設定なら有効 (本番寄りのデフォルト)
	if !authSet {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		cfg.Auth.Enabled = true
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = AppName
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = DefaultTokenTTL
	}
	if cfg.Auth.Enabled && cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set while auth is enabled.")
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = DefaultGeminiModel
	}
	if cfg.Gemini.Timeout <= 0 {
		cfg.Gemini.Timeout = DefaultGeminiTimeout
	}
	if cfg.Gemini.Language == "" {
		cfg.Gemini.Language = DefaultContentLanguage
	}
	if cfg.Gemini.APIKey == "" {
		log.Println("Warning: Gemini API key is not set. Fallback content will be served.")
	}
	if cfg.Mailer.Type == "" {
		cfg.Mailer.Type = MailerTypeLog
	}
	if cfg.Mailer.From == "" {
		cfg.Mailer.From = DefaultMailFrom
	}
	if cfg.Jobs.AutosaveInterval <= 0 {
		cfg.Jobs.AutosaveInterval = DefaultAutosaveInterval
	}
}
