package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config representa a configuração completa da aplicação
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
	Tracing  TracingConfig
	Features FeaturesConfig
}

// ServerConfig contém configurações do servidor HTTP
type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLS          bool
	CertFile     string
	KeyFile      string
}

// DatabaseConfig contém configurações do banco de dados
type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
	MigrationDir    string
	SkipMigrations  bool
}

// RedisOptions contém configurações específicas para Redis
type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

// CacheConfig contém configurações do cache
type CacheConfig struct {
	Enabled bool
	Type    string // redis, memory, none
	TTL     time.Duration
	Redis   RedisOptions
}

// AuthConfig contém configurações de autenticação
type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
	PublicPaths     []string
}

// LoggingConfig contém configurações de logging
type LoggingConfig struct {
	Level      string
	Format     string // json, console
	Production bool
}

// MetricsConfig contém configurações de métricas
type MetricsConfig struct {
	Enabled        bool
	PrometheusPath string
}

// TracingConfig contém configurações de rastreamento
type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

// FeaturesConfig contém flags de recursos
type FeaturesConfig struct {
	RateLimiter       bool
	RequestsPerMinute int
}

// LoadConfig carrega a configuração de diversas fontes (arquivo, env, defaults)
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/helpdesk")

	if err := v.ReadInConfig(); err != nil {
		// Ignorar se o arquivo não for encontrado: defaults + env bastam
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
		}
	}

	v.SetEnvPrefix("HD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	return &cfg, nil
}

// Default retorna a configuração padrão, usada pelo comando genconfig.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	// Servidor
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.readtimeout", 10*time.Second)
	v.SetDefault("server.writetimeout", 10*time.Second)
	v.SetDefault("server.idletimeout", 60*time.Second)
	v.SetDefault("server.tls", false)

	// Banco de dados
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "helpdesk.db")
	v.SetDefault("database.maxidleconns", 10)
	v.SetDefault("database.maxopenconns", 50)
	v.SetDefault("database.connmaxlifetime", time.Hour)
	v.SetDefault("database.slowthreshold", 200*time.Millisecond)
	v.SetDefault("database.migrationdir", "./migrations")
	v.SetDefault("database.skipmigrations", false)

	// Cache
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.redis.address", "")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)

	// Autenticação
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.tokenexpiration", 24*time.Hour)
	v.SetDefault("auth.publicpaths", []string{"/login", "/health", "/metrics"})

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.production", true)

	// Métricas
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.prometheuspath", "/metrics")

	// Tracing
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.servicename", "helpdesk")

	// Features
	v.SetDefault("features.ratelimiter", false)
	v.SetDefault("features.requestsperminute", 120)
}
