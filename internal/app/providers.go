package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/reserva/config"
	"github.com/savioruz/reserva/internal/delivery/http"
	bookingService "github.com/savioruz/reserva/internal/domains/bookings/service"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/httpserver"
	"github.com/savioruz/reserva/pkg/jwt"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/mail"
	"github.com/savioruz/reserva/pkg/postgres"
	"github.com/savioruz/reserva/pkg/redis"
	"github.com/savioruz/reserva/pkg/storage"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	JWT        *jwt.JWT
	Scheduler  *bookingService.SchedulerService
}

const (
	_defaultAccessExpiry  = 24 * time.Hour
	_defaultRefreshExpiry = 7 * 24 * time.Hour
)

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) *jwt.JWT {
	access := jwt.ParseDuration(cfg.JWT.AccessTokenExpiry, _defaultAccessExpiry)
	refresh := jwt.ParseDuration(cfg.JWT.RefreshTokenExpiry, _defaultRefreshExpiry)

	return jwt.Initialize(cfg.App.Name, cfg.JWT.Secret, access, refresh)
}

func providePostgres(cfg *config.Config) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode, cfg.Pg.Timezone)

	return postgres.New(dsn,
		postgres.MaxPoolSize(cfg.Pg.PoolMax),
		postgres.ConnAttempts(cfg.Pg.ConnAttempts),
		postgres.ConnTimeout(cfg.Pg.ConnTimeout),
	)
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)

	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideMailer(cfg *config.Config) (mail.Service, error) {
	return mail.New(mail.Config{
		SMTPHost:     cfg.Mail.SMTPHost,
		SMTPPort:     cfg.Mail.SMTPPort,
		SMTPUsername: cfg.Mail.SMTPUsername,
		SMTPPassword: cfg.Mail.SMTPPassword,
		FromEmail:    cfg.Mail.FromEmail,
		FromName:     cfg.Mail.FromName,
	})
}

func provideStorage(cfg *config.Config) (storage.Interface, error) {
	switch cfg.Upload.Driver {
	case constant.StorageDriverDisk:
		return storage.NewDisk(cfg.Upload.Dir, constant.UploadPublicRoute), nil
	case constant.StorageDriverS3:
		s3, err := storage.NewS3(context.Background(), storage.S3Config{
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			EndpointURL:     cfg.Storage.EndpointURL,
			Region:          cfg.Storage.Region,
			BucketName:      cfg.Storage.BucketName,
			PublicURL:       cfg.Storage.PublicURL,
		})
		if err != nil {
			return nil, err
		}

		return s3, nil
	default:
		return nil, fmt.Errorf("unknown upload driver %q", cfg.Upload.Driver)
	}
}

func provideHTTPServer(cfg *config.Config, l logger.Interface, h http.Handlers) *httpserver.Server {
	server := httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		httpserver.BodyLimit(http.BodyLimit(cfg)),
		httpserver.ErrorHandler(http.ErrorHandler(cfg)),
	)

	http.NewRouter(server.App, cfg, l, h)

	return server
}
