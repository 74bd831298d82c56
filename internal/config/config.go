package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	SessionSecret      string
	SessionTTL         time.Duration
	SessionCookieSecure bool
	ResetCodeTTL       time.Duration
	ResetCodeLength    int
	AllowOrigins       []string
	LogstashTCPAddr    string
	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinIOBucketProfile string
	MinIOPublicURL     string
	SMTPHost           string
	SMTPPort           string
	SMTPUsername       string
	SMTPPassword       string
	SMTPFrom           string
	AvatarMaxBytes     int64
	AvatarMaxDimension int
	FFmpegPath         string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	codeLen := 6
	if v, err := strconv.Atoi(getenv("RESET_CODE_LENGTH", "6")); err == nil && v > 0 {
		codeLen = v
	}

	avatarMax := int64(5 * 1024 * 1024)
	if v, err := strconv.ParseInt(getenv("AVATAR_MAX_BYTES", "5242880"), 10, 64); err == nil && v > 0 {
		avatarMax = v
	}

	avatarDim := 1024
	if v, err := strconv.Atoi(getenv("AVATAR_MAX_DIMENSION", "1024")); err == nil && v > 0 {
		avatarDim = v
	}

	return Config{
		Port:               getenv("PORT", "3001"),
		DatabaseURL:        must("DATABASE_URL"),
		SessionSecret:      must("SESSION_SECRET"),
		SessionTTL:         duration("SESSION_TTL", 14*24*time.Hour),
		SessionCookieSecure: getenv("SESSION_COOKIE_SECURE", "false") == "true",
		ResetCodeTTL:       duration("RESET_CODE_TTL", 10*time.Minute),
		ResetCodeLength:    codeLen,
		AllowOrigins:       splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:    getenv("LOGSTASH_TCP_ADDR", ""),
		MinIOEndpoint:      must("MINIO_ENDPOINT"),
		MinIOAccessKey:     must("MINIO_ACCESS_KEY"),
		MinIOSecretKey:     must("MINIO_SECRET_KEY"),
		MinIOUseSSL:        getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketProfile: getenv("MINIO_BUCKET_PROFILE", "linkup-profiles"),
		MinIOPublicURL:     getenv("MINIO_PUBLIC_URL", ""),
		SMTPHost:           getenv("SMTP_HOST", ""),
		SMTPPort:           getenv("SMTP_PORT", ""),
		SMTPUsername:       getenv("SMTP_USERNAME", ""),
		SMTPPassword:       getenv("SMTP_PASSWORD", ""),
		SMTPFrom:           getenv("SMTP_FROM", ""),
		AvatarMaxBytes:     avatarMax,
		AvatarMaxDimension: avatarDim,
		FFmpegPath:         getenv("FFMPEG_PATH", "ffmpeg"),
	}
}

func duration(k string, d time.Duration) time.Duration {
	if v, err := time.ParseDuration(getenv(k, "")); err == nil && v > 0 {
		return v
	}
	return d
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
