package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	AssetBackendLocal = "local"
	AssetBackendS3    = "s3"

	RecordBackendFile     = "file"
	RecordBackendPostgres = "postgres"
	RecordBackendSQLite   = "sqlite"
)

type (
	Config struct {
		HTTP    HTTP
		Log     Log
		Assets  Assets
		Local   Local
		S3      S3
		Records Records
		PG      PG
		QR      QR
		Kafka   Kafka
		Swagger Swagger
	}

	HTTP struct {
		Port           string        `env:"HTTP_PORT" envDefault:"8080"`
		PublicBaseURL  string        `env:"HTTP_PUBLIC_BASE_URL"`
		BodyLimit      int           `env:"HTTP_BODY_LIMIT" envDefault:"33554432"`
		ReadTimeout    time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout   time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		UsePreforkMode bool          `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Assets struct {
		Backend string `env:"ASSET_BACKEND" envDefault:"local"`
	}

	Local struct {
		UploadDir     string `env:"LOCAL_UPLOAD_DIR" envDefault:"./uploads"`
		UploadURLPath string `env:"LOCAL_UPLOAD_URL_PATH" envDefault:"/uploads"`
	}

	S3 struct {
		Endpoint       string        `env:"S3_ENDPOINT"`
		AccessKey      string        `env:"S3_ACCESS_KEY"`
		SecretKey      string        `env:"S3_SECRET_KEY"`
		Bucket         string        `env:"S3_BUCKET"`
		Region         string        `env:"S3_REGION"`
		PublicBaseURL  string        `env:"S3_PUBLIC_BASE_URL"`
		UsePathStyle   bool          `env:"S3_USE_PATH_STYLE" envDefault:"true"`
		CfgLoadTimeout time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
	}

	Records struct {
		Backend    string `env:"RECORD_BACKEND" envDefault:"file"`
		FilePath   string `env:"RECORD_FILE_PATH" envDefault:"./data/landing_pages.json"`
		SQLitePath string `env:"SQLITE_PATH" envDefault:"./data/landing_pages.db"`
	}

	PG struct {
		PoolMax int    `env:"PG_POOL_MAX" envDefault:"2"`
		URL     string `env:"PG_URL"`
	}

	QR struct {
		Size          int  `env:"QR_SIZE" envDefault:"256"`
		ResizeEnabled bool `env:"QR_RESIZE_ENABLED" envDefault:"true"`
		ResizeWidth   int  `env:"QR_RESIZE_WIDTH" envDefault:"500"`
	}

	Kafka struct {
		Enabled      bool          `env:"KAFKA_ENABLED" envDefault:"false"`
		Brokers      []string      `env:"KAFKA_BROKERS"`
		Topic        string        `env:"KAFKA_TOPIC" envDefault:"landing-pages"`
		BatchTimeout time.Duration `env:"KAFKA_BATCH_TIMEOUT" envDefault:"50ms"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// Validate checks settings that depend on the selected backends.
func (c *Config) Validate() error {
	var errList []error

	switch c.Assets.Backend {
	case AssetBackendLocal:
		if c.Local.UploadDir == "" {
			errList = append(errList, errors.New("LOCAL_UPLOAD_DIR is required for the local asset backend"))
		}
	case AssetBackendS3:
		if c.S3.Bucket == "" {
			errList = append(errList, errors.New("S3_BUCKET is required for the s3 asset backend"))
		}
		if c.S3.Endpoint == "" && c.S3.PublicBaseURL == "" {
			errList = append(errList, errors.New("S3_ENDPOINT or S3_PUBLIC_BASE_URL is required for the s3 asset backend"))
		}
	default:
		errList = append(errList, fmt.Errorf("unknown ASSET_BACKEND %q", c.Assets.Backend))
	}

	switch c.Records.Backend {
	case RecordBackendFile:
		if c.Records.FilePath == "" {
			errList = append(errList, errors.New("RECORD_FILE_PATH is required for the file record backend"))
		}
	case RecordBackendPostgres:
		if c.PG.URL == "" {
			errList = append(errList, errors.New("PG_URL is required for the postgres record backend"))
		}
	case RecordBackendSQLite:
		if c.Records.SQLitePath == "" {
			errList = append(errList, errors.New("SQLITE_PATH is required for the sqlite record backend"))
		}
	default:
		errList = append(errList, fmt.Errorf("unknown RECORD_BACKEND %q", c.Records.Backend))
	}

	if c.QR.Size <= 0 {
		errList = append(errList, errors.New("QR_SIZE must be positive"))
	}

	if c.QR.ResizeEnabled && c.QR.ResizeWidth <= 0 {
		errList = append(errList, errors.New("QR_RESIZE_WIDTH must be positive"))
	}

	if c.Kafka.Enabled && c.Kafka.BatchTimeout <= 0 {
		errList = append(errList, errors.New("KAFKA_BATCH_TIMEOUT must be positive"))
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errList = append(errList, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is set"))
	}

	return errors.Join(errList...)
}
