package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Reminder  ReminderConfig  `yaml:"reminder"`
	Recording RecordingConfig `yaml:"recording"`
	Storage   StorageConfig   `yaml:"storage"`
	Delivery  DeliveryConfig  `yaml:"delivery"`
	Cleanup   CleanupConfig   `yaml:"cleanup"`
}

// CORSConfig holds CORS settings. AllowedHeaders lists request headers
// allowed in addition to the ones the API itself reads.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Accept,Accept-Language"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"memoir"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits anonymous traffic on the public recording routes.
type RateLimitConfig struct {
	PublicPerMinute int           `yaml:"public_per_minute" env:"RATE_LIMIT_PUBLIC_PER_MINUTE" env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// ReminderConfig holds the reminder eligibility parameters.
// The daily cap counts reminders within one calendar day of DayTimezone.
type ReminderConfig struct {
	Cooldown         time.Duration `yaml:"cooldown"           env:"REMINDER_COOLDOWN"            env-default:"24h"`
	StrictCooldown   time.Duration `yaml:"strict_cooldown"    env:"REMINDER_STRICT_COOLDOWN"     env-default:"72h"`
	MaxPerAssignment int           `yaml:"max_per_assignment" env:"REMINDER_MAX_PER_ASSIGNMENT"  env-default:"3"`
	DailyCap         int           `yaml:"daily_cap"          env:"REMINDER_DAILY_CAP"           env-default:"5"`
	DayTimezone      string        `yaml:"day_timezone"       env:"REMINDER_DAY_TIMEZONE"        env-default:"UTC"`

	// Location is parsed from DayTimezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// RecordingConfig holds intake limits for uploaded audio.
type RecordingConfig struct {
	MaxDurationSeconds     int           `yaml:"max_duration_seconds"  env:"RECORDING_MAX_DURATION_SECONDS" env-default:"180"`
	MaxUploadBytes         int64         `yaml:"max_upload_bytes"      env:"RECORDING_MAX_UPLOAD_BYTES"     env-default:"26214400"`
	AllowedContentTypesRaw string        `yaml:"allowed_content_types" env:"RECORDING_ALLOWED_TYPES"        env-default:"audio/webm,audio/ogg,audio/mpeg,audio/mp4,audio/x-m4a,audio/aac,audio/wav,audio/x-wav"`
	CommitTimeout          time.Duration `yaml:"commit_timeout"        env:"RECORDING_COMMIT_TIMEOUT"       env-default:"15s"`

	// AllowedContentTypes is parsed from AllowedContentTypesRaw during validation.
	AllowedContentTypes []string `yaml:"-" env:"-"`
}

// StorageConfig selects and configures the blob store for recordings.
type StorageConfig struct {
	Type           string        `yaml:"type"              env:"STORAGE_TYPE"              env-default:"filesystem"`
	FSRoot         string        `yaml:"fs_root"           env:"STORAGE_FS_ROOT"           env-default:"./data/recordings"`
	S3Bucket       string        `yaml:"s3_bucket"         env:"STORAGE_S3_BUCKET"`
	S3Region       string        `yaml:"s3_region"         env:"STORAGE_S3_REGION"         env-default:"us-east-1"`
	S3Endpoint     string        `yaml:"s3_endpoint"       env:"STORAGE_S3_ENDPOINT"`
	S3AccessKey    string        `yaml:"s3_access_key"     env:"STORAGE_S3_ACCESS_KEY"`
	S3SecretKey    string        `yaml:"s3_secret_key"     env:"STORAGE_S3_SECRET_KEY"`
	S3UsePathStyle bool          `yaml:"s3_use_path_style" env:"STORAGE_S3_USE_PATH_STYLE" env-default:"false"`
	SignedURLTTL   time.Duration `yaml:"signed_url_ttl"    env:"STORAGE_SIGNED_URL_TTL"    env-default:"15m"`
}

// DeliveryConfig selects the outbound senders and the public link base.
// Provider "log" writes messages to the application log instead of sending.
type DeliveryConfig struct {
	PublicBaseURL   string        `yaml:"public_base_url"  env:"DELIVERY_PUBLIC_BASE_URL"  env-default:"http://localhost:8080"`
	RequestTimeout  time.Duration `yaml:"request_timeout"  env:"DELIVERY_REQUEST_TIMEOUT"  env-default:"10s"`
	DispatchTimeout time.Duration `yaml:"dispatch_timeout" env:"DELIVERY_DISPATCH_TIMEOUT" env-default:"30s"`

	SMSProvider string `yaml:"sms_provider" env:"DELIVERY_SMS_PROVIDER" env-default:"log"`
	SMSEndpoint string `yaml:"sms_endpoint" env:"DELIVERY_SMS_ENDPOINT"`
	SMSAPIKey   string `yaml:"sms_api_key"  env:"DELIVERY_SMS_API_KEY"`
	SMSFrom     string `yaml:"sms_from"     env:"DELIVERY_SMS_FROM"`

	EmailProvider string `yaml:"email_provider" env:"DELIVERY_EMAIL_PROVIDER" env-default:"log"`
	EmailEndpoint string `yaml:"email_endpoint" env:"DELIVERY_EMAIL_ENDPOINT"`
	EmailAPIKey   string `yaml:"email_api_key"  env:"DELIVERY_EMAIL_API_KEY"`
	EmailFrom     string `yaml:"email_from"     env:"DELIVERY_EMAIL_FROM"     env-default:"Memoir <no-reply@memoir.local>"`

	PushProvider    string `yaml:"push_provider"     env:"DELIVERY_PUSH_PROVIDER"     env-default:"log"`
	PushEndpoint    string `yaml:"push_endpoint"     env:"DELIVERY_PUSH_ENDPOINT"     env-default:"https://exp.host/--/api/v2/push/send"`
	PushAccessToken string `yaml:"push_access_token" env:"DELIVERY_PUSH_ACCESS_TOKEN"`
}

// CleanupConfig holds retention settings for the cleanup job.
type CleanupConfig struct {
	ReadNotificationRetention time.Duration `yaml:"read_notification_retention" env:"CLEANUP_READ_NOTIFICATION_RETENTION" env-default:"720h"`
	ReminderLogRetention      time.Duration `yaml:"reminder_log_retention"      env:"CLEANUP_REMINDER_LOG_RETENTION"      env-default:"2160h"`
}

// IsAllowedContentType reports whether ct (parameters stripped, case-insensitive)
// is in the allow-list.
func (c RecordingConfig) IsAllowedContentType(ct string) bool {
	base, _, _ := strings.Cut(ct, ";")
	base = strings.ToLower(strings.TrimSpace(base))
	for _, a := range c.AllowedContentTypes {
		if a == base {
			return true
		}
	}
	return false
}
