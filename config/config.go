// Package config provides configuration management for the order engine.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Engine   EngineConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// EngineConfig holds planning parameters. Defaults follow the bar's
// operating policy; overrides are read from the environment.
type EngineConfig struct {
	// BufferRate is the safety margin applied before rounding (0.10 = 10%).
	BufferRate float64
	// GlasswareIncrement is the carton multiple glassware rounds up to.
	GlasswareIncrement int
	// GlasswareMinimum is the glassware order floor.
	GlasswareMinimum int
	// GarnishGramIncrement is the gram multiple for garnish rounding.
	GarnishGramIncrement int
	// DefaultLiquorPackSize is the bottle size assumed for liquor
	// requirements without offers or a pack size hint, in ml.
	DefaultLiquorPackSize float64
	// MaxSearchNodes bounds the pack combination search.
	MaxSearchNodes int
}

// CacheConfig holds plan and catalog cache configuration.
type CacheConfig struct {
	Size        int
	TTL         time.Duration
	SnapshotTTL time.Duration
}

// AuthConfig holds staff authentication configuration.
type AuthConfig struct {
	Enabled   bool
	APIKeys   map[string]bool
	JWTSecret string
	TokenTTL  time.Duration
	Issuer    string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Engine: EngineConfig{
			BufferRate:            getEnvFloat("ENGINE_BUFFER_RATE", 0.10),
			GlasswareIncrement:    getEnvInt("ENGINE_GLASSWARE_INCREMENT", 12),
			GlasswareMinimum:      getEnvInt("ENGINE_GLASSWARE_MINIMUM", 24),
			GarnishGramIncrement:  getEnvInt("ENGINE_GARNISH_GRAM_INCREMENT", 15),
			DefaultLiquorPackSize: getEnvFloat("ENGINE_DEFAULT_BOTTLE_ML", 700),
			MaxSearchNodes:        getEnvInt("ENGINE_MAX_SEARCH_NODES", 200000),
		},
		Cache: CacheConfig{
			Size:        getEnvInt("CACHE_SIZE", 1000),
			TTL:         getEnvDuration("CACHE_TTL", 5*time.Minute),
			SnapshotTTL: getEnvDuration("CATALOG_SNAPSHOT_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled:   getEnvBool("AUTH_ENABLED", false),
			APIKeys:   parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecret: getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			TokenTTL:  getEnvDuration("JWT_TOKEN_TTL", 8*time.Hour),
			Issuer:    getEnv("JWT_ISSUER", "order-engine"),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "order_engine"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
