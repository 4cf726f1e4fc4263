package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type (
	APP struct {
		Name              string
		Host              string
		Port              string
		Env               string
		JWTSecret         string
		AdminEmail        string
		AdminPasswordHash string
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	S3 struct {
		Region          string
		AccessKeyID     string
		SecretAccessKey string
		Endpoint        string
		Bucket          string
		PublicBaseURL   string
		SignedURLTTL    time.Duration
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	Media struct {
		MaxImageWidth  int
		JPEGQuality    int
		MaxUploadFiles int
		OverlayTTL     time.Duration
		// TextMark is rendered as the watermark when no overlay assets
		// have been uploaded yet. Empty disables the fallback.
		TextMark string
	}

	Config struct {
		App   APP
		DB    DB
		S3    S3
		MQ    MQ
		Media Media
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func Load() Config {
	app := APP{
		Name:              getEnv("SERVICE_NAME", "realtyofficeapi"),
		Host:              getEnv("SERVICE_HOST", ""),
		Port:              getEnv("SERVICE_PORT", "8080"),
		Env:               getEnv("SERVICE_ENV", ""),
		JWTSecret:         getEnv("SERVICE_JWT_SECRET", ""),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	s3 := S3{
		Region:          getEnv("S3_REGION", ""),
		AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		Endpoint:        getEnv("S3_ENDPOINT", ""),
		Bucket:          getEnv("S3_BUCKET_IMAGES", "property-images"),
		PublicBaseURL:   getEnv("S3_PUBLIC_BASE_URL", ""),
		SignedURLTTL:    getEnvDuration("S3_SIGNED_URL_TTL", 15*time.Minute),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "inquiries"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "inquiry-notifications"),
	}
	media := Media{
		MaxImageWidth:  getEnvInt("MEDIA_MAX_IMAGE_WIDTH", 1200),
		JPEGQuality:    getEnvInt("MEDIA_JPEG_QUALITY", 80),
		MaxUploadFiles: getEnvInt("MEDIA_MAX_UPLOAD_FILES", 10),
		OverlayTTL:     getEnvDuration("MEDIA_OVERLAY_CACHE_TTL", 5*time.Minute),
		TextMark:       getEnv("MEDIA_TEXT_MARK", ""),
	}

	return Config{
		App:   app,
		DB:    db,
		S3:    s3,
		MQ:    mq,
		Media: media,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
