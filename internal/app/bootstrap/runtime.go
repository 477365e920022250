// Package bootstrap wires the submission pipeline's collaborators from
// configuration. Every builder degrades to a safe fallback when its backend
// is not configured, so a partially configured environment still captures
// leads.
package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/stoneworks/lead-intake/internal/awsconfig"
	appconfig "github.com/stoneworks/lead-intake/internal/config"
	"github.com/stoneworks/lead-intake/internal/cooldown"
	"github.com/stoneworks/lead-intake/internal/intake"
	"github.com/stoneworks/lead-intake/internal/leadstore"
	"github.com/stoneworks/lead-intake/internal/notify"
	"github.com/stoneworks/lead-intake/internal/photostore"
	"github.com/stoneworks/lead-intake/internal/track"
	"github.com/stoneworks/lead-intake/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildCooldownGuard returns the submit rate guard. Redis backs it when
// available; otherwise an in-process store, which still protects a single
// instance.
func BuildCooldownGuard(redisClient *redis.Client, cfg *appconfig.Config, logger *logging.Logger) *cooldown.Guard {
	window := 30 * time.Second
	if cfg != nil && cfg.CooldownWindow > 0 {
		window = cfg.CooldownWindow
	}

	var store cooldown.Store
	if redisClient != nil {
		store = cooldown.NewRedisStore(redisClient)
	} else {
		store = cooldown.NewMemoryStore()
	}
	return cooldown.NewGuard(store, window, time.Now, logger)
}

// BuildPhotoStore returns the S3-backed photo store. An empty bucket leaves
// the store unconfigured; photo uploads are then skipped.
func BuildPhotoStore(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *photostore.Store {
	if cfg == nil || cfg.LeadPhotosBucket == "" {
		return nil
	}
	awsCfg, err := awsconfig.Load(ctx, cfg)
	if err != nil {
		logger.Warn("aws config load failed, photo uploads disabled", "error", err)
		return nil
	}
	return photostore.NewStore(s3.NewFromConfig(awsCfg), cfg.LeadPhotosBucket, cfg.AWSRegion, logger)
}

// BuildLeadStore picks the persistence backend: DynamoDB when a table is
// configured, then Postgres, then in-memory.
func BuildLeadStore(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) intake.LeadStore {
	if logger == nil {
		logger = logging.Default()
	}

	if cfg != nil && cfg.LeadsTable != "" {
		awsCfg, err := awsconfig.Load(ctx, cfg)
		if err != nil {
			logger.Warn("aws config load failed, dynamodb store disabled", "error", err)
		} else {
			return leadstore.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.LeadsTable, logger)
		}
	}

	if cfg != nil && cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("postgres pool init failed, falling back to memory store", "error", err)
		} else {
			return leadstore.NewPostgresStore(pool)
		}
	}

	logger.Warn("no lead persistence configured, using in-memory store")
	return leadstore.NewMemoryStore()
}

// BuildNotifier returns the owner-email notifier, preferring SES over
// SendGrid. Nil when neither channel nor a destination is configured.
func BuildNotifier(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *notify.LeadMailer {
	if cfg == nil || cfg.NotifyToEmail == "" {
		return nil
	}

	var sender notify.EmailSender
	if cfg.SESFromEmail != "" {
		awsCfg, err := awsconfig.Load(ctx, cfg)
		if err != nil {
			logger.Warn("aws config load failed, SES sender disabled", "error", err)
		} else {
			sender = notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
				FromEmail: cfg.SESFromEmail,
				FromName:  cfg.SESFromName,
			}, logger)
		}
	}
	if sender == nil && cfg.SendGridAPIKey != "" {
		sender = notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
	}
	if sender == nil {
		return nil
	}

	return notify.NewLeadMailer(sender, notify.LeadMailerConfig{
		To:           cfg.NotifyToEmail,
		BusinessName: cfg.BusinessName,
	}, logger)
}

// BuildSubmitter assembles the full submission pipeline.
func BuildSubmitter(ctx context.Context, cfg *appconfig.Config, tracker intake.Tracker, logger *logging.Logger) *intake.Submitter {
	if logger == nil {
		logger = logging.Default()
	}
	if tracker == nil {
		tracker = track.NewLogTracker(logger)
	}

	redisClient := BuildRedisClient(ctx, cfg, logger, true)

	sc := intake.SubmitterConfig{
		Leads:    BuildLeadStore(ctx, cfg, logger),
		Cooldown: BuildCooldownGuard(redisClient, cfg, logger),
		Tracker:  tracker,
		Logger:   logger,
	}
	if ps := BuildPhotoStore(ctx, cfg, logger); ps != nil {
		sc.Photos = ps
	}
	if n := BuildNotifier(ctx, cfg, logger); n != nil {
		sc.Notifier = n
	}
	return intake.NewSubmitter(sc)
}
