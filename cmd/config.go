package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
)

const (
	MailProviderSMTP = "smtp"
	MailProviderSES  = "ses"
)

type Config struct {
	AppEnv   string
	HTTPHost string
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret string
	SessionName   string
	SessionMaxAge int

	MailProvider string
	MailFrom     string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	AWSRegion    string
	AlertEmail   string

	UploadDir     string
	UploadMaxSize string

	ReconciliationSchedule string
	ReconciliationLocation *time.Location
}

// LoadConfig reads .env (if present) into the environment and builds the
// configuration. Variables already set in the environment win.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var problems []error

	redisDB, err := envInt("REDIS_DB", 0)
	problems = append(problems, err)
	maxAge, err := envInt("SESSION_MAX_AGE", 7*24*60*60)
	problems = append(problems, err)
	smtpPort, err := envInt("SMTP_PORT", 25)
	problems = append(problems, err)

	loc := time.Local
	if tz := os.Getenv("RECONCILIATION_TIMEZONE"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			problems = append(problems, fmt.Errorf("RECONCILIATION_TIMEZONE: %w", err))
		}
	}

	cfg := Config{
		AppEnv:   env("APP_ENV", "dev"),
		HTTPHost: env("HTTP_HOST", "0.0.0.0"),
		HTTPPort: env("HTTP_PORT", "1169"),

		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     env("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     env("DB_NAME", "visadesk"),
		DBSslMode:  env("DB_SSLMODE", "disable"),

		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionName:   env("SESSION_NAME", "visadesk_session"),
		SessionMaxAge: maxAge,

		MailProvider: strings.ToLower(env("MAIL_PROVIDER", MailProviderSMTP)),
		MailFrom:     env("MAIL_FROM", "noreply@visadesk.local"),
		SMTPHost:     env("SMTP_HOST", "localhost"),
		SMTPPort:     smtpPort,
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		AWSRegion:    env("AWS_REGION", "us-east-1"),
		AlertEmail:   os.Getenv("ALERT_EMAIL"),

		UploadDir:     env("UPLOAD_DIR", "./uploads"),
		UploadMaxSize: env("UPLOAD_MAX_SIZE", "10M"),

		ReconciliationSchedule: env("RECONCILIATION_SCHEDULE", "1 1 * * *"),
		ReconciliationLocation: loc,
	}

	problems = append(problems, cfg.Validate())
	if err = errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []error
	if c.SessionSecret == "" {
		problems = append(problems, errors.New("SESSION_SECRET is required"))
	} else if len(c.SessionSecret) < 32 {
		problems = append(problems, errors.New("SESSION_SECRET must be at least 32 bytes"))
	}
	if c.AlertEmail == "" {
		problems = append(problems, errors.New("ALERT_EMAIL is required"))
	}
	if c.MailProvider != MailProviderSMTP && c.MailProvider != MailProviderSES {
		problems = append(problems, fmt.Errorf("MAIL_PROVIDER must be %q or %q", MailProviderSMTP, MailProviderSES))
	}
	if _, err := c.UploadMaxBytes(); err != nil {
		problems = append(problems, fmt.Errorf("UPLOAD_MAX_SIZE: %w", err))
	}
	return errors.Join(problems...)
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func (c Config) HTTPAddr() string {
	return c.HTTPHost + ":" + c.HTTPPort
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// UploadMaxBytes parses UploadMaxSize ("10M", "512K") the way echo's body
// limit does.
func (c Config) UploadMaxBytes() (int64, error) {
	return bytes.Parse(c.UploadMaxSize)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
