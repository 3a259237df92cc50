package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	MarketDataJSON     = "json"
	MarketDataPostgres = "postgres"

	ExtractorAuto    = "auto"
	ExtractorKeyword = "keyword"
	ExtractorLLM     = "llm"
)

type Config struct {
	App        AppConfig
	MarketData MarketDataConfig
	Extractor  ExtractorConfig
	Redis      RedisConfig
	RabbitMQ   RabbitMQConfig
	Database   DatabaseConfig
}

type AppConfig struct {
	AppName          string
	Environment      string
	HTTPPort         string
	CORSAllowOrigins []string
}

type MarketDataConfig struct {
	Source string
	Path   string
}

type ExtractorConfig struct {
	Mode         string
	GeminiAPIKey string
	GeminiModel  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// Enabled reports whether a Redis host was configured at all.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

const (
	defaultRedisTTL    = 600 * time.Second
	defaultGeminiModel = "gemini-2.5-flash-lite"
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	def := func(key, fallback string) string {
		if v := opt(key); v != "" {
			return v
		}
		return fallback
	}
	oneOf := func(key, fallback string, allowed ...string) string {
		v := strings.ToLower(def(key, fallback))
		for _, a := range allowed {
			if v == a {
				return v
			}
		}
		invalid = append(invalid, key+"="+v)
		return v
	}

	cfg.App = AppConfig{
		AppName:          def("APP_NAME", "career-guide"),
		Environment:      def("APP_ENV", "development"),
		HTTPPort:         def("HTTP_PORT", "8000"),
		CORSAllowOrigins: splitList(def("CORS_ALLOW_ORIGINS", "*")),
	}

	cfg.MarketData = MarketDataConfig{
		Source: oneOf("MARKET_DATA_SOURCE", MarketDataJSON, MarketDataJSON, MarketDataPostgres),
		Path:   def("MARKET_DATA_PATH", "job_market_data.json"),
	}

	cfg.Extractor = ExtractorConfig{
		Mode:         oneOf("EXTRACTOR", ExtractorAuto, ExtractorAuto, ExtractorKeyword, ExtractorLLM),
		GeminiAPIKey: opt("GEMINI_API_KEY"),
		GeminiModel:  def("GEMINI_MODEL", defaultGeminiModel),
	}
	if cfg.Extractor.Mode == ExtractorLLM && cfg.Extractor.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     def("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      parseSeconds(opt("REDIS_TTL"), defaultRedisTTL),
	}

	cfg.RabbitMQ = RabbitMQConfig{
		URL:      opt("RABBITMQ_URL"),
		Exchange: def("RABBITMQ_EXCHANGE", "student_updates"),
	}

	if cfg.MarketData.Source == MarketDataPostgres {
		cfg.Database = DatabaseConfig{
			DBHost:     req("DB_HOST"),
			DBPort:     req("DB_PORT"),
			DBName:     req("DB_NAME"),
			DBUser:     req("DB_USER"),
			DBPassword: opt("DB_PASSWORD"),
			DBSSLMode:  opt("DB_SSL_MODE"),

			ConnectTimeout: parseSeconds(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
			PoolMaxConns:   parsePoolSize(opt("DB_POOL_MAX_CONNS")),
		}
	} else {
		cfg.Database = LoadDatabase()
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// LoadDatabase reads only the DB_* keys. Used by tooling that talks to
// Postgres regardless of the configured market data source.
func LoadDatabase() DatabaseConfig {
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	return DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout: parseSeconds(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:   parsePoolSize(opt("DB_POOL_MAX_CONNS")),
	}
}

// HasDatabase reports whether enough connection settings exist to dial.
func (c DatabaseConfig) HasDatabase() bool {
	return c.DBHost != "" && c.DBPort != "" && c.DBName != "" && c.DBUser != ""
}

func parseSeconds(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return time.Duration(v) * time.Second
}

func parsePoolSize(raw string) int32 {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v <= 0 {
		return 0
	}
	return int32(v)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
