package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	LogLevel    string
	ServerPort  string

	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration
	MongoSocketTimeout  time.Duration

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	CORSAllowedOrigins []string

	UploadDir         string
	MaxUploadBytes    int64
	ImageMaxDimension int
	ImageQuality      float32

	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicURL       string

	RedisURL          string
	DashboardCacheTTL time.Duration

	AuditDatabaseURL string
}

func Load() (*Config, error) {
	connectTimeout, err := getDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	socketTimeout, err := getDuration("MONGO_SOCKET_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	jwtTTL, err := getDuration("JWT_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("DASHBOARD_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, err
	}

	maxUploadMB, err := getInt("MAX_UPLOAD_MB", 16)
	if err != nil {
		return nil, err
	}
	maxDimension, err := getInt("IMAGE_MAX_DIMENSION", 1024)
	if err != nil {
		return nil, err
	}
	quality, err := getInt("IMAGE_QUALITY", 80)
	if err != nil {
		return nil, err
	}
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("invalid IMAGE_QUALITY: %d is outside 1..100", quality)
	}

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ServerPort:  getEnv("SERVER_PORT", "5000"),

		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017/inventory"),
		MongoDatabase:       getEnv("MONGO_DATABASE", ""),
		MongoConnectTimeout: connectTimeout,
		MongoSocketTimeout:  socketTimeout,

		JWTSecret: getEnv("JWT_SECRET", getEnv("SECRET_KEY", "changeme")),
		JWTIssuer: getEnv("JWT_ISSUER", "matcha-inventory"),
		JWTTTL:    jwtTTL,

		CORSAllowedOrigins: parseCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:    int64(maxUploadMB) * 1024 * 1024,
		ImageMaxDimension: maxDimension,
		ImageQuality:      float32(quality),

		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3PublicURL:       strings.TrimRight(getEnv("S3_PUBLIC_URL", ""), "/"),

		RedisURL:          getEnv("REDIS_URL", ""),
		DashboardCacheTTL: cacheTTL,

		AuditDatabaseURL: getEnv("AUDIT_DATABASE_URL", ""),
	}, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// getDuration accepts Go duration strings ("15s") or a bare number of seconds.
func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return def, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}
