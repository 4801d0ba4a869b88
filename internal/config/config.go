package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	CORS     CORSConfig     `yaml:"cors"`
	Content  ContentConfig  `yaml:"content"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig MySQL settings
type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
}

// GetDSN builds the MySQL DSN
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// RedisConfig Redis settings
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// JWTConfig token settings
type JWTConfig struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // minutes
	RefreshIn int    `yaml:"refresh_in"` // hours
}

// CORSConfig CORS settings
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

// ContentConfig post body storage settings
type ContentConfig struct {
	// Mode selects where post bodies live: "inline" keeps them in the
	// posts table, "remote" stores them in the blob store and records
	// only the key.
	Mode      string        `yaml:"mode"`
	Backend   string        `yaml:"backend"` // "webdav" or "s3"
	KeyPrefix string        `yaml:"key_prefix"`
	TimeoutS  int           `yaml:"timeout"` // per-operation timeout, seconds
	WebDAV    WebDAVConfig  `yaml:"webdav"`
	S3        S3StoreConfig `yaml:"s3"`
}

// WebDAVConfig WebDAV backend settings
type WebDAVConfig struct {
	Hostname string `yaml:"hostname"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// S3StoreConfig S3-compatible backend settings
type S3StoreConfig struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	BasePath        string `yaml:"base_path"`
	ForcePathStyle  bool   `yaml:"force_path_style"`
}

// Load reads the yaml config file and applies environment overrides.
// Secrets always come from the environment when set, so config files can
// be committed without credentials.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required (set JWT_SECRET)")
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{
			Host:            "127.0.0.1",
			Port:            3306,
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{Host: "127.0.0.1", Port: 6379, PoolSize: 10},
		JWT:   JWTConfig{ExpiresIn: 15, RefreshIn: 168},
		Content: ContentConfig{
			Mode:      "inline",
			Backend:   "webdav",
			KeyPrefix: "posts",
			TimeoutS:  10,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Database.Host, "DATABASE_HOST")
	setInt(&cfg.Database.Port, "DATABASE_PORT")
	setString(&cfg.Database.User, "DATABASE_USER")
	setString(&cfg.Database.Password, "DATABASE_PASSWORD")
	setString(&cfg.Database.Name, "DATABASE_NAME")

	setString(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")

	setString(&cfg.Content.Mode, "CONTENT_MODE")
	setString(&cfg.Content.Backend, "CONTENT_BACKEND")
	setString(&cfg.Content.WebDAV.Hostname, "WEBDAV_HOSTNAME")
	setString(&cfg.Content.WebDAV.Username, "WEBDAV_USERNAME")
	setString(&cfg.Content.WebDAV.Password, "WEBDAV_PASSWORD")
	setString(&cfg.Content.S3.Endpoint, "S3_ENDPOINT")
	setString(&cfg.Content.S3.AccessKeyID, "S3_ACCESS_KEY_ID")
	setString(&cfg.Content.S3.SecretAccessKey, "S3_SECRET_ACCESS_KEY")
	setString(&cfg.Content.S3.Bucket, "S3_BUCKET")
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func setInt(dst *int, env string) {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
