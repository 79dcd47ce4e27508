package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	Notify    *NotifyConfig
	Storage   *StorageConfig
	Shop      *ShopConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // BeCreativeSpace
	Environment    string        // development, production
	Port           string        // :8083
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      bool
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	ProductTTL      time.Duration
}

type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	CookieDomain      string
}

type EmailConfig struct {
	ApiKey       string
	From         string
	SupportEmail string
}

// NotifyConfig configures the fire-and-forget notification webhook
// (email to the customer, chat card push to the vendor).
type NotifyConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// StorageConfig configures the external blob store used for customer
// uploads (customization images, quote references).
type StorageConfig struct {
	Endpoint      string // storage API base URL
	Bucket        string
	ServiceKey    string
	PublicBaseURL string // prefix for public object URLs
	MaxUploadSize int64  // in bytes
}

// RateLimitConfig carries per-endpoint-class request budgets. Counters
// live in Redis so the limits hold across replicas.
type RateLimitConfig struct {
	Enabled        bool
	AuthLimit      int
	AuthWindow     time.Duration
	AdminLimit     int
	AdminWindow    time.Duration
	CheckoutLimit  int
	CheckoutWindow time.Duration
	UploadLimit    int
	UploadWindow   time.Duration
	GeneralLimit   int
	GeneralWindow  time.Duration
}

type ShopConfig struct {
	FreeShippingThreshold int64 // order subtotal at which shipping is free
	DefaultShippingCost   int64
	LowStockWebhookOn     bool
}
