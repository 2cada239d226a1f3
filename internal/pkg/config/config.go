package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timeouts, limits, schedules)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Shopify      ShopifyConfig
	Chain        ChainConfig
	Verification VerificationConfig
	RateLimit    RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// ShopifyConfig holds the app credentials used to validate merchant session tokens.
type ShopifyConfig struct {
	APIKey    string `envconfig:"SHOPIFY_API_KEY" required:"true"`
	APISecret string `envconfig:"SHOPIFY_API_SECRET" required:"true"`
}

type ChainConfig struct {
	EthereumRPCURL string        `envconfig:"ETHEREUM_RPC_URL"`
	PolygonRPCURL  string        `envconfig:"POLYGON_RPC_URL"`
	BSCRPCURL      string        `envconfig:"BSC_RPC_URL"`
	RegistryFile   string        `envconfig:"CHAIN_REGISTRY_FILE"`
	CallTimeout    time.Duration `envconfig:"CHAIN_CALL_TIMEOUT" default:"5s"`
	ProbeAttempts  uint          `envconfig:"CHAIN_PROBE_ATTEMPTS" default:"3"`
}

type VerificationConfig struct {
	SessionTTL         time.Duration `envconfig:"SESSION_TTL" default:"15m"`
	SweepSchedule      string        `envconfig:"SESSION_SWEEP_SCHEDULE" default:"@every 1m"`
	RuleTimeout        time.Duration `envconfig:"ELIGIBILITY_RULE_TIMEOUT" default:"8s"`
	EligibilityWorkers int           `envconfig:"ELIGIBILITY_CONCURRENCY" default:"8"`
}

type RateLimitConfig struct {
	RPS   float64       `envconfig:"RATE_LIMIT_RPS" default:"2"`
	Burst int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
	TTL   time.Duration `envconfig:"RATE_LIMIT_CLIENT_TTL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Shopify: ShopifyConfig{
			APIKey:    "test-api-key",
			APISecret: "test-api-secret",
		},
		Chain: ChainConfig{
			CallTimeout:   2 * time.Second,
			ProbeAttempts: 1,
		},
		Verification: VerificationConfig{
			SessionTTL:         15 * time.Minute,
			SweepSchedule:      "@every 1m",
			RuleTimeout:        2 * time.Second,
			EligibilityWorkers: 4,
		},
		RateLimit: RateLimitConfig{
			RPS:   1000,
			Burst: 1000,
			TTL:   time.Minute,
		},
	}
}
