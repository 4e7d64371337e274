package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gin      GinConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Admin    AdminSeedConfig
	Booking  BookingConfig
}

type ServerConfig struct {
	Port              string        `env:"PORT"                       env-default:"5000"`
	ReadTimeout       time.Duration `env:"SERVER_READ_TIMEOUT"        env-default:"10s"`
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT" env-default:"5s"`
	WriteTimeout      time.Duration `env:"SERVER_WRITE_TIMEOUT"       env-default:"20s"`
	IdleTimeout       time.Duration `env:"SERVER_IDLE_TIMEOUT"        env-default:"60s"`
	ShutdownTimeout   time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"    env-default:"15s"`
}

func (s ServerConfig) Addr() string {
	return ":" + strings.TrimPrefix(s.Port, ":")
}

type GinConfig struct {
	Mode string `env:"GIN_MODE" env-default:"debug"`
}

type LoggerConfig struct {
	Mode     string `env:"LOG_MODE"  env-default:"development"`
	Level    string `env:"LOG_LEVEL" env-default:"info"`
	Filename string `env:"LOG_FILE"`
}

type DatabaseConfig struct {
	URL             string        `env:"MYSQL_URL"`
	FallbackURL     string        `env:"DATABASE_URL"`
	User            string        `env:"DB_USER"              env-default:"root"`
	Password        string        `env:"DB_PASS"`
	Host            string        `env:"DB_HOST"              env-default:"127.0.0.1"`
	Port            string        `env:"DB_PORT"              env-default:"3306"`
	Name            string        `env:"DB_NAME"              env-default:"travel_db"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS"    env-default:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS"    env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
	SlowThreshold   time.Duration `env:"DB_SLOW_THRESHOLD"    env-default:"1s"`
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"  env-required:"true"`
	JWTExpire  time.Duration `env:"JWT_EXPIRE"  env-default:"720h"`
	BcryptCost int           `env:"BCRYPT_COST" env-default:"10"`
}

type CORSConfig struct {
	Origins []string `env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

type AdminSeedConfig struct {
	Name     string `env:"ADMIN_NAME" env-default:"Administrator"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

type BookingConfig struct {
	OrderIDAttempts int `env:"ORDER_ID_ATTEMPTS" env-default:"25"`
}

// Load reads .env (if present) into the process environment and then fills the
// config from the environment.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, dotenv, fmt.Errorf("read config: %w", err)
	}
	cfg.CORS.Origins = trimOrigins(cfg.CORS.Origins)
	return &cfg, dotenv, nil
}

func trimOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, part := range raw {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
