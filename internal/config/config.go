package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort        = "8080"
	defaultMaxUploadBytes = 10 << 20
)

type Config struct {
	AppEnv  string
	AppPort string

	CORSAllowedOrigin string

	// DatabaseURL may be empty; the store then runs in unavailable mode.
	DatabaseURL string

	JWTSecret      string
	OwnerOpenID    string
	OAuthServerURL string

	DiscordWebhookURL string

	StorageDisk      string
	StorageLocalRoot string
	StorageURL       string
	S3Bucket         string
	S3Region         string
	S3Key            string
	S3Secret         string
	S3Endpoint       string
	S3URL            string

	RedisAddr     string
	RedisPassword string

	MaxUploadBytes int64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:            os.Getenv("APP_ENV"),
		AppPort:           getEnv("APP_PORT", defaultAppPort),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		OwnerOpenID:       os.Getenv("OWNER_OPEN_ID"),
		OAuthServerURL:    os.Getenv("OAUTH_SERVER_URL"),
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
		StorageDisk:       getEnv("STORAGE_DISK", "local"),
		StorageLocalRoot:  getEnv("STORAGE_LOCAL_ROOT", "storage"),
		StorageURL:        getEnv("STORAGE_URL", "http://localhost:"+getEnv("APP_PORT", defaultAppPort)+"/storage"),
		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Region:          getEnv("S3_REGION", "ap-southeast-1"),
		S3Key:             os.Getenv("S3_KEY"),
		S3Secret:          os.Getenv("S3_SECRET"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3URL:             os.Getenv("S3_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		MaxUploadBytes:    getEnvInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
