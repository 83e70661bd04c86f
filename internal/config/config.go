package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MinJWTSecretLength is the shortest signing secret tokens will be issued with.
const MinJWTSecretLength = 16

// Store drivers selectable with STORE_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Config holds application level configuration loaded from environment variables.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	ServerPort         string
	JWTSecret          string
	AllowSeed          bool
	CORSOrigins        []string
	CORSOriginSuffixes []string
	StoreDriver        string
	MySQLDSN           string
	PostgresDSN        string
	MongoURI           string
	MongoDatabase      string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	SwaggerHost        string
	RateLimitPerMinute int
	LogLevel           string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:         getEnv("SERVER_PORT", getEnv("PORT", "8080")),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AllowSeed:          getEnvBool("ALLOW_SEED", false),
		CORSOrigins:        getEnvList("CORS_ORIGINS"),
		CORSOriginSuffixes: getEnvList("CORS_ORIGIN_SUFFIXES"),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", DriverMySQL)),
		MySQLDSN:           getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/portfolio?charset=utf8mb4&parseTime=True&loc=Local"),
		PostgresDSN:        getEnv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=portfolio port=5432 sslmode=disable"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DATABASE", "portfolio"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

// SecretLongEnough reports whether secret has at least MinJWTSecretLength characters.
func SecretLongEnough(secret string) bool {
	return utf8.RuneCountInString(secret) >= MinJWTSecretLength
}

// SecretIsValid reports whether the JWT secret is long enough to sign tokens.
func (c *Config) SecretIsValid() bool {
	return SecretLongEnough(c.JWTSecret)
}

// Warnings lists configuration problems worth surfacing at startup.
// None of them stop the process: login fails closed on a weak secret.
func (c *Config) Warnings() []string {
	var out []string
	if !c.SecretIsValid() {
		out = append(out, fmt.Sprintf("JWT_SECRET is unset or shorter than %d characters; login will fail", MinJWTSecretLength))
	}
	if c.AllowSeed {
		out = append(out, "ALLOW_SEED is enabled; disable it once the first admin exists")
	}
	switch c.StoreDriver {
	case DriverMySQL, DriverPostgres, DriverMongo, DriverMemory:
	default:
		out = append(out, fmt.Sprintf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	return out
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + c.ServerPort
}

// OriginAllowed decides whether a cross-origin request source may call the API.
// Requests without an Origin header (curl, server-to-server) are allowed.
func (c *Config) OriginAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range c.CORSOrigins {
		if o == origin {
			return true
		}
	}
	u, err := url.Parse(origin)
	if err != nil || u.Scheme != "https" {
		return false
	}
	host := u.Hostname()
	for _, suffix := range c.CORSOriginSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
