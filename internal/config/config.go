package config

import (
	"crypto"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

const (
	// StorageDriverPostgres keeps CRM data in postgres
	StorageDriverPostgres = "postgres"
	// StorageDriverMongo keeps CRM data in mongo, users stay in postgres
	StorageDriverMongo = "mongo"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

// HTTPCfg represents http server config
type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// StorageCfg selects datastore for CRM entities
type StorageCfg struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
}

// PostgresCfg represents postgres connection config
type PostgresCfg struct {
	User           string        `env:"POSTGRES_USER"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DB"`
	Host           string        `env:"POSTGRES_HOST" envDefault:"pg-crm"`
	SslMode        string        `env:"POSTGRES_SLL_MODE" envDefault:"disable"`
	Port           int           `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn    int           `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" envDefault:"5s"`
}

// MongoCfg represents mongo connection config
type MongoCfg struct {
	User        string `env:"MONGO_USER" envDefault:""`
	Password    string `env:"MONGO_PASSWORD" envDefault:""`
	Host        string `env:"MONGO_HOST" envDefault:"mongo-crm"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DB" envDefault:"crm"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

// RedisCfg represents redis connection config
type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"redis-crm:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// JwtCfg represents access token config
type JwtCfg struct {
	Issuer         string        `env:"AUTH_JWT_ISSUER" envDefault:"crm"`
	TimeToLive     time.Duration `env:"AUTH_JWT_TIME_TO_LIVE" envDefault:"10m"`
	PrivateKeyFile string        `env:"AUTH_JWT_PRIVATE_KEY_FILE"`
	PublicKeyFile  string        `env:"AUTH_JWT_PUBLIC_KEY_FILE"`
	SigningMethod  jwt.SigningMethod
	PrivateKey     crypto.PrivateKey
	PublicKey      crypto.PublicKey
}

// RefreshTokenCfg represents refresh token config
type RefreshTokenCfg struct {
	MaxCount   int           `env:"AUTH_REFRESH_TOKEN_MAX_COUNT" envDefault:"5"`
	TimeToLive time.Duration `env:"AUTH_REFRESH_TOKEN_TIME_TO_LIVE" envDefault:"720h"`
}

// CookieCfg represents session cookies config used by web pages
type CookieCfg struct {
	AccessTokenName  string `env:"AUTH_ACCESS_TOKEN_COOKIE_NAME" envDefault:"access-token"`
	RefreshTokenName string `env:"AUTH_REFRESH_TOKEN_COOKIE_NAME" envDefault:"refresh-token"`
	Secure           bool   `env:"AUTH_COOKIE_SECURE" envDefault:"false"`
}

// AuthCfg groups auth related configs
type AuthCfg struct {
	JwtCfg          JwtCfg
	RefreshTokenCfg RefreshTokenCfg
	CookieCfg       CookieCfg
}

// TelemetryCfg represents tracing config, empty endpoint disables export
type TelemetryCfg struct {
	ServiceName  string  `env:"OTEL_SERVICE_NAME" envDefault:"crm"`
	OtlpEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	SampleRatio  float64 `env:"OTEL_TRACES_SAMPLE_RATIO" envDefault:"1"`
}

// LogCfg represents logger config
type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Config is application config
type Config struct {
	HTTPCfg      HTTPCfg
	StorageCfg   StorageCfg
	PostgresCfg  PostgresCfg
	MongoCfg     MongoCfg
	RedisCfg     RedisCfg
	AuthCfg      AuthCfg
	TelemetryCfg TelemetryCfg
	LogCfg       LogCfg
}

// Build reads config from environment, .env file is loaded first if present
func Build() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file - %w", err)
	}

	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	switch cfg.StorageCfg.Driver {
	case StorageDriverPostgres, StorageDriverMongo:
	default:
		return nil, fmt.Errorf("unknown storage driver %s", cfg.StorageCfg.Driver)
	}

	if err := loadJwtKeys(&cfg.AuthCfg.JwtCfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadJwtKeys(cfg *JwtCfg) error {
	cfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	privateKeyBytes, err := os.ReadFile(cfg.PrivateKeyFile)
	if err != nil {
		return fmt.Errorf("failed to read private key file for jwt - %w", err)
	}

	privateKey, err := jwt.ParseEdPrivateKeyFromPEM(privateKeyBytes)
	if err != nil {
		return fmt.Errorf("failed to parse private key for jwt - %w", err)
	}
	cfg.PrivateKey = privateKey

	publicKeyBytes, err := os.ReadFile(cfg.PublicKeyFile)
	if err != nil {
		return fmt.Errorf("failed to read public key file for jwt - %w", err)
	}

	publicKey, err := jwt.ParseEdPublicKeyFromPEM(publicKeyBytes)
	if err != nil {
		return fmt.Errorf("failed to parse public key for jwt - %w", err)
	}
	cfg.PublicKey = publicKey

	return nil
}
