package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory = "memory"
	BackendGorm   = "gorm"
	BackendSQL    = "sql"

	FileHostMinIO = "minio"
	FileHostLocal = "local"

	ImporterMock = "mock"
	ImporterPage = "page"
)

type Config struct {
	HTTPAddr string `yaml:"http_addr"`

	JWTSecret string        `yaml:"jwt_secret"`
	JWTTTL    time.Duration `yaml:"jwt_ttl"`

	StoreBackend string `yaml:"store_backend"`
	DBUser       string `yaml:"db_user"`
	DBPassword   string `yaml:"db_password"`
	DBHost       string `yaml:"db_host"`
	DBPort       string `yaml:"db_port"`
	DBName       string `yaml:"db_name"`
	DBSSLMode    string `yaml:"db_sslmode"`

	FileHost       string `yaml:"file_host"`
	MinIOEndpoint  string `yaml:"minio_endpoint"`
	MinIOAccessKey string `yaml:"minio_access_key"`
	MinIOSecretKey string `yaml:"minio_secret_key"`
	MinIOBucket    string `yaml:"minio_bucket"`
	MinIOPublicURL string `yaml:"minio_public_url"`
	MinIOUseSSL    bool   `yaml:"minio_use_ssl"`
	UploadDir      string `yaml:"upload_dir"`
	UploadBaseURL  string `yaml:"upload_base_url"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`

	SocialImporter string `yaml:"social_importer"`
	// SocialPageURL is a template with one %s for the username, e.g.
	// "https://www.instagram.com/%s/". Keyed by platform.
	SocialPageURL map[string]string `yaml:"social_page_url"`

	LogDir    string `yaml:"log_dir"`
	LogStdout bool   `yaml:"log_stdout"`
}

func Default() Config {
	return Config{
		HTTPAddr:       ":8000",
		JWTTTL:         24 * time.Hour,
		StoreBackend:   BackendMemory,
		DBHost:         "localhost",
		DBPort:         "5432",
		DBSSLMode:      "disable",
		FileHost:       FileHostLocal,
		MinIOBucket:    "artfolio",
		UploadDir:      "./uploads",
		UploadBaseURL:  "http://localhost:8000/files",
		MaxUploadBytes: 10 << 20,
		SocialImporter: ImporterMock,
		SocialPageURL: map[string]string{
			"instagram": "https://www.instagram.com/%s/",
			"twitter":   "https://x.com/%s",
		},
		LogDir: "./logs",
	}
}

// Load builds the config from defaults, then the optional YAML file, then
// .env and the process environment.
func Load(file string) (Config, error) {
	cfg := Default()
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg.HTTPAddr = getEnv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTTTL = getEnvDuration("JWT_TTL", cfg.JWTTTL)
	cfg.StoreBackend = getEnv("STORE_BACKEND", cfg.StoreBackend)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.DBSSLMode = getEnv("DB_SSLMODE", cfg.DBSSLMode)
	cfg.FileHost = getEnv("FILE_HOST", cfg.FileHost)
	cfg.MinIOEndpoint = getEnv("MINIO_ENDPOINT", cfg.MinIOEndpoint)
	cfg.MinIOAccessKey = getEnv("MINIO_ACCESS_KEY", cfg.MinIOAccessKey)
	cfg.MinIOSecretKey = getEnv("MINIO_SECRET_KEY", cfg.MinIOSecretKey)
	cfg.MinIOBucket = getEnv("MINIO_BUCKET", cfg.MinIOBucket)
	cfg.MinIOPublicURL = getEnv("MINIO_PUBLIC_URL", cfg.MinIOPublicURL)
	cfg.MinIOUseSSL = getEnvBool("MINIO_USE_SSL", cfg.MinIOUseSSL)
	cfg.UploadDir = getEnv("UPLOAD_DIR", cfg.UploadDir)
	cfg.UploadBaseURL = getEnv("UPLOAD_BASE_URL", cfg.UploadBaseURL)
	cfg.MaxUploadBytes = getEnvInt("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)
	cfg.SocialImporter = getEnv("SOCIAL_IMPORTER", cfg.SocialImporter)
	cfg.LogDir = getEnv("LOG_DIR", cfg.LogDir)
	cfg.LogStdout = getEnvBool("LOG_STDOUT", cfg.LogStdout)

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.StoreBackend {
	case BackendMemory, BackendGorm, BackendSQL:
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	switch c.FileHost {
	case FileHostMinIO, FileHostLocal:
	default:
		return fmt.Errorf("unknown file host %q", c.FileHost)
	}
	switch c.SocialImporter {
	case ImporterMock, ImporterPage:
	default:
		return fmt.Errorf("unknown social importer %q", c.SocialImporter)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// PostgresDSN is the keyword/value connection string shared by both SQL backends.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
