package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sa-pphire/qr-code-gen/config"
	"github.com/Sa-pphire/qr-code-gen/internal/infrastructure"
	infrakafka "github.com/Sa-pphire/qr-code-gen/internal/infrastructure/kafka"
	"github.com/Sa-pphire/qr-code-gen/internal/repo"
	"github.com/Sa-pphire/qr-code-gen/internal/repo/persistent"
	"github.com/Sa-pphire/qr-code-gen/pkg/kafka/producer"
	"github.com/Sa-pphire/qr-code-gen/pkg/postgres"
	"github.com/Sa-pphire/qr-code-gen/pkg/s3client"
	"github.com/Sa-pphire/qr-code-gen/pkg/sqlite"
	"github.com/gofiber/fiber/v2"
)

// closer releases a backend on shutdown.
type closer func() error

func newAssetRepo(ctx context.Context, cfg *config.Config, app *fiber.App) (repo.AssetRepo, error) {
	if cfg.Assets.Backend == config.AssetBackendS3 {
		s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
		defer s3Cancel()

		s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey,
			s3client.Region(cfg.S3.Region),
			s3client.UsePathStyle(cfg.S3.UsePathStyle),
		)
		if err != nil {
			return nil, fmt.Errorf("app - newAssetRepo - s3client.New: %w", err)
		}

		err = s3c.EnsureBucket(s3Ctx, cfg.S3.Bucket)
		if err != nil {
			return nil, fmt.Errorf("app - newAssetRepo - s3c.EnsureBucket: %w", err)
		}

		publicBaseURL := cfg.S3.PublicBaseURL
		if publicBaseURL == "" {
			publicBaseURL = strings.TrimRight(cfg.S3.Endpoint, "/") + "/" + cfg.S3.Bucket
		}

		return persistent.NewS3AssetRepo(s3c, cfg.S3.Bucket, publicBaseURL), nil
	}

	assets, err := persistent.NewLocalAssetRepo(cfg.Local.UploadDir, cfg.Local.UploadURLPath)
	if err != nil {
		return nil, fmt.Errorf("app - newAssetRepo - persistent.NewLocalAssetRepo: %w", err)
	}

	app.Static(cfg.Local.UploadURLPath, cfg.Local.UploadDir)

	return assets, nil
}

func newLandingPageRepo(ctx context.Context, cfg *config.Config) (repo.LandingPageRepo, closer, error) {
	switch cfg.Records.Backend {
	case config.RecordBackendPostgres:
		pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
		if err != nil {
			return nil, nil, fmt.Errorf("app - newLandingPageRepo - postgres.New: %w", err)
		}

		pages := persistent.NewLandingPagePostgresRepo(pg)
		if err = pages.Migrate(ctx); err != nil {
			pg.Close()

			return nil, nil, fmt.Errorf("app - newLandingPageRepo - pages.Migrate: %w", err)
		}

		return pages, func() error { pg.Close(); return nil }, nil

	case config.RecordBackendSQLite:
		gdb, err := sqlite.New(cfg.Records.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("app - newLandingPageRepo - sqlite.New: %w", err)
		}

		pages, err := persistent.NewLandingPageSQLiteRepo(gdb)
		if err != nil {
			_ = sqlite.Close(gdb)

			return nil, nil, fmt.Errorf("app - newLandingPageRepo - persistent.NewLandingPageSQLiteRepo: %w", err)
		}

		return pages, func() error { return sqlite.Close(gdb) }, nil

	default:
		pages, err := persistent.NewLandingPageFileRepo(cfg.Records.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("app - newLandingPageRepo - persistent.NewLandingPageFileRepo: %w", err)
		}

		return pages, func() error { return nil }, nil
	}
}

func newEventPublisher(ctx context.Context, cfg *config.Config) (infrastructure.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		return infrakafka.NopPublisher{}, nil
	}

	kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers, producer.BatchTimeout(cfg.Kafka.BatchTimeout))
	if err != nil {
		return nil, fmt.Errorf("app - newEventPublisher - producer.New: %w", err)
	}

	return infrakafka.NewEventProducer(kafkaProducer, cfg.Kafka.Topic), nil
}
