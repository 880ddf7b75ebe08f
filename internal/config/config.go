package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	defaultJWTSecret = "change-me"
)

// Config holds all application configuration. Every key can be overridden
// by an environment variable named after it, e.g. MONGODB_URI or JWT_SECRET.
type Config struct {
	Port  string `mapstructure:"port"`
	Store struct {
		Driver string `mapstructure:"driver"`
	} `mapstructure:"store"`
	MongoDB struct {
		URI      string `mapstructure:"uri"`
		Database string `mapstructure:"database"`
	} `mapstructure:"mongodb"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Redis struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"redis"`
	JWT struct {
		Secret string        `mapstructure:"secret"`
		TTL    time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`
	Refresh struct {
		TTL time.Duration `mapstructure:"ttl"`
	} `mapstructure:"refresh"`
	Report struct {
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"report"`
	Snapshot struct {
		Path     string        `mapstructure:"path"`
		Interval time.Duration `mapstructure:"interval"`
	} `mapstructure:"snapshot"`
	Seed struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"seed"`
	Admin struct {
		Email    string `mapstructure:"email"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"admin"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
	} `mapstructure:"kafka"`
	RateLimit struct {
		RPS   float64 `mapstructure:"rps"`
		Burst int     `mapstructure:"burst"`
	} `mapstructure:"ratelimit"`
	Static struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"static"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "braintree")
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("jwt.secret", defaultJWTSecret)
	v.SetDefault("jwt.ttl", 24*time.Hour)
	v.SetDefault("refresh.ttl", 7*24*time.Hour)
	v.SetDefault("report.timeout", 5*time.Second)
	v.SetDefault("snapshot.path", "dashboard-data.json")
	v.SetDefault("snapshot.interval", 30*time.Second)
	v.SetDefault("seed.enabled", true)
	v.SetDefault("admin.email", "admin@braintree.com")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("admin.name", "Admin")
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "dashboard-events")
	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("static.dir", "public")
}

// Load reads .env, then an optional config file, then the environment.
// An empty path searches for config.yaml in . and ./config.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("[config] loaded .env")
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Printf("[config] using %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("[config] PORT=%s STORE_DRIVER=%s", cfg.Port, cfg.Store.Driver)
	if cfg.JWT.Secret == defaultJWTSecret {
		log.Println("[config] warning: JWT_SECRET is not set, using the built-in default")
	}
	return &cfg, nil
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo:
		if c.MongoDB.URI == "" {
			return errors.New("mongodb.uri is required for the mongo store")
		}
	case DriverPostgres:
		if c.Database.URL == "" {
			return errors.New("database.url is required for the postgres store")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret must not be empty")
	}
	if c.Report.Timeout <= 0 {
		return errors.New("report.timeout must be positive")
	}
	if c.Snapshot.Interval <= 0 {
		return errors.New("snapshot.interval must be positive")
	}
	return nil
}

// splitList accepts both yaml lists and comma separated env values.
func splitList(in []string) []string {
	out := []string{}
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
