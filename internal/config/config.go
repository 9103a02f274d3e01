package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Fiscal FiscalConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds token verification settings. Tokens are issued by the
// identity service; this application only verifies them.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for receipt storage.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FiscalConfig holds the fiscal policy constants. They back the engine's
// fallback and correction behavior so a rate change never touches the
// aggregation code.
type FiscalConfig struct {
	DefaultVATPercent     float64 `mapstructure:"default_vat_percent"`
	IRPFEstimatePercent   float64 `mapstructure:"irpf_estimate_percent"`
	AnomalyMinWithholding float64 `mapstructure:"anomaly_min_withholding"`
	CorrectionMinBase     float64 `mapstructure:"correction_min_base"`
}

// Load reads configuration from environment variables with the FACTURALO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FACTURALO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "facturalo")
	v.SetDefault("db.password", "facturalo_secret")
	v.SetDefault("db.name", "facturalo_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "facturalo")

	// S3 defaults
	v.SetDefault("s3.region", "eu-west-1")
	v.SetDefault("s3.bucket", "facturalo-receipts")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 20)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Fiscal policy defaults (Spanish regime)
	v.SetDefault("fiscal.default_vat_percent", 21.0)
	v.SetDefault("fiscal.irpf_estimate_percent", 15.0)
	v.SetDefault("fiscal.anomaly_min_withholding", 10.0)
	v.SetDefault("fiscal.correction_min_base", 1000.0)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "FACTURALO_SERVER_PORT",
		"server.read_timeout":            "FACTURALO_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "FACTURALO_SERVER_WRITE_TIMEOUT",
		"server.environment":             "FACTURALO_SERVER_ENVIRONMENT",
		"db.host":                        "FACTURALO_DB_HOST",
		"db.port":                        "FACTURALO_DB_PORT",
		"db.user":                        "FACTURALO_DB_USER",
		"db.password":                    "FACTURALO_DB_PASSWORD",
		"db.name":                        "FACTURALO_DB_NAME",
		"db.sslmode":                     "FACTURALO_DB_SSLMODE",
		"db.max_open":                    "FACTURALO_DB_MAX_OPEN",
		"db.max_idle":                    "FACTURALO_DB_MAX_IDLE",
		"jwt.secret":                     "FACTURALO_JWT_SECRET",
		"jwt.issuer":                     "FACTURALO_JWT_ISSUER",
		"s3.region":                      "FACTURALO_S3_REGION",
		"s3.bucket":                      "FACTURALO_S3_BUCKET",
		"s3.endpoint":                    "FACTURALO_S3_ENDPOINT",
		"s3.access_key":                  "FACTURALO_S3_ACCESS_KEY",
		"s3.secret_key":                  "FACTURALO_S3_SECRET_KEY",
		"s3.max_file_size_mb":            "FACTURALO_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":              "FACTURALO_S3_PRESIGN_EXPIRY",
		"log.level":                      "FACTURALO_LOG_LEVEL",
		"log.format":                     "FACTURALO_LOG_FORMAT",
		"cors.allowed_origins":           "FACTURALO_CORS_ALLOWED_ORIGINS",
		"fiscal.default_vat_percent":     "FACTURALO_FISCAL_DEFAULT_VAT_PERCENT",
		"fiscal.irpf_estimate_percent":   "FACTURALO_FISCAL_IRPF_ESTIMATE_PERCENT",
		"fiscal.anomaly_min_withholding": "FACTURALO_FISCAL_ANOMALY_MIN_WITHHOLDING",
		"fiscal.correction_min_base":     "FACTURALO_FISCAL_CORRECTION_MIN_BASE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FACTURALO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FACTURALO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Fiscal = FiscalConfig{
		DefaultVATPercent:     v.GetFloat64("fiscal.default_vat_percent"),
		IRPFEstimatePercent:   v.GetFloat64("fiscal.irpf_estimate_percent"),
		AnomalyMinWithholding: v.GetFloat64("fiscal.anomaly_min_withholding"),
		CorrectionMinBase:     v.GetFloat64("fiscal.correction_min_base"),
	}

	return cfg, nil
}
