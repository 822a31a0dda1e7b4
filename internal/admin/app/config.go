package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
)

// Database drivers selectable with DATABASE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
	DriverNone   = "none"
)

// devJWTSecret is used outside prod when JWT_SECRET is unset.
const devJWTSecret = "dev-only-insecure-secret"

type Config struct {
	Port                int           `env:"PORT,default=4000"`
	Env                 string        `env:"ENV,default=dev"` // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL,default=info"`
	LogFormat           string        `env:"LOG_FORMAT,default=json"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD,default=10s"`

	DatabaseDriver    string        `env:"DATABASE_DRIVER,default=sqlite"`
	DatabaseFile      string        `env:"DATABASE_FILE,default=admin.db"`
	MongoURI          string        `env:"MONGODB_URI"`
	MongoDatabase     string        `env:"MONGODB_DATABASE,default=admin"`
	StorePingInterval time.Duration `env:"STORE_PING_INTERVAL,default=15s"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTIssuer string        `env:"JWT_ISSUER,default=admin-api"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,default=168h"`

	// Fallback administrator, usable before any user records exist.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminName     string `env:"ADMIN_NAME,default=Admin"`

	// Comma-separated roles allowed to write users and roles. Empty
	// disables the check.
	AdminRoles string `env:"ADMIN_ROLES"`

	AllowPlaintextPasswords bool `env:"AUTH_ALLOW_PLAINTEXT_PASSWORDS,default=false"`

	// Comma-separated browser origins. Empty allows any.
	CORSOrigins string `env:"CORS_ORIGINS"`

	Collections store.CollectionNames
}

// LoadConfig reads .env (when present) into the environment, then decodes
// the environment into a Config.
func LoadConfig() (Config, error) {
	return loadConfig(".env")
}

func loadConfig(dotenv string) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))
	switch cfg.DatabaseDriver {
	case DriverSQLite, DriverMongo, DriverNone:
	default:
		return Config{}, fmt.Errorf("unknown DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	if cfg.JWTSecret == "" && cfg.Env == "prod" {
		return Config{}, errors.New("JWT_SECRET is required in prod")
	}

	return cfg, nil
}

// AdminRoleList splits ADMIN_ROLES.
func (c Config) AdminRoleList() []string { return splitList(c.AdminRoles) }

// CORSOriginList splits CORS_ORIGINS.
func (c Config) CORSOriginList() []string { return splitList(c.CORSOrigins) }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
