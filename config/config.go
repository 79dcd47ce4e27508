package config

import (
	"sync"
	"time"

	"bcspace_server/structs"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "BeCreativeSpace_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8083"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"localhost", "http://localhost:3000"}),
				AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
				AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length", "Authorization"}),
			},
			Database: &structs.DatabaseConfig{
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "bcspace_db"),
				SSLMode:      getEnvAsBool("DB_SSL_MODE", false),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			},
			Cache: &structs.CacheConfig{
				Address:         getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
				Username:        getEnvAsString("REDIS_USERNAME", ""),
				Password:        getEnvAsString("REDIS_PASSWORD", ""),
				DB:              getEnvAsInt("REDIS_DB", 0),
				PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				MaxIdleConns:    getEnvAsInt("REDIS_MAX_IDLE_CONNS", 5),
				PoolTimeout:     getEnvAsTimeDuration("REDIS_POOL_TIMEOUT", 30*time.Second),
				IdleTimeout:     getEnvAsTimeDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
				DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
				MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
				MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
				ProductTTL:      getEnvAsTimeDuration("REDIS_PRODUCT_TTL", 5*time.Minute),
			},
			Auth: &structs.AuthConfig{
				AccessTokenSecret: getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
				AccessTokenExpiry: getEnvAsTimeDuration("AUTH_ACCESS_TOKEN_EXPIRY", 12*time.Hour),
				CookieDomain:      getEnvAsString("AUTH_COOKIE_DOMAIN", ""),
			},
			Email: &structs.EmailConfig{
				ApiKey:       getEnvAsString("RESEND_API_KEY", ""),
				From:         getEnvAsString("EMAIL_FROM", "orders@becreativespace.example"),
				SupportEmail: getEnvAsString("EMAIL_SUPPORT", "support@becreativespace.example"),
			},
			Notify: &structs.NotifyConfig{
				WebhookURL: getEnvAsString("NOTIFY_WEBHOOK_URL", ""),
				Timeout:    getEnvAsTimeDuration("NOTIFY_TIMEOUT", 10*time.Second),
			},
			Storage: &structs.StorageConfig{
				Endpoint:      getEnvAsString("STORAGE_ENDPOINT", ""),
				Bucket:        getEnvAsString("STORAGE_BUCKET", "uploads"),
				ServiceKey:    getEnvAsString("STORAGE_SERVICE_KEY", ""),
				PublicBaseURL: getEnvAsString("STORAGE_PUBLIC_BASE_URL", ""),
				MaxUploadSize: int64(getEnvAsInt("STORAGE_MAX_UPLOAD_SIZE", 10<<20)), // 10 MB
			},
			Shop: &structs.ShopConfig{
				FreeShippingThreshold: int64(getEnvAsInt("SHOP_FREE_SHIPPING_THRESHOLD", 599)),
				DefaultShippingCost:   int64(getEnvAsInt("SHOP_DEFAULT_SHIPPING_COST", 60)),
				LowStockWebhookOn:     getEnvAsBool("SHOP_LOW_STOCK_WEBHOOK", true),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:        getEnvAsBool("RATE_LIMIT_ENABLED", true),
				AuthLimit:      getEnvAsInt("RATE_LIMIT_AUTH", 10),
				AuthWindow:     getEnvAsTimeDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
				AdminLimit:     getEnvAsInt("RATE_LIMIT_ADMIN", 120),
				AdminWindow:    getEnvAsTimeDuration("RATE_LIMIT_ADMIN_WINDOW", time.Minute),
				CheckoutLimit:  getEnvAsInt("RATE_LIMIT_CHECKOUT", 15),
				CheckoutWindow: getEnvAsTimeDuration("RATE_LIMIT_CHECKOUT_WINDOW", time.Minute),
				UploadLimit:    getEnvAsInt("RATE_LIMIT_UPLOAD", 20),
				UploadWindow:   getEnvAsTimeDuration("RATE_LIMIT_UPLOAD_WINDOW", time.Minute),
				GeneralLimit:   getEnvAsInt("RATE_LIMIT_GENERAL", 100),
				GeneralWindow:  getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
