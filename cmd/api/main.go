package main

import (
	"context"
	"log"
	"time"

	"github.com/mlehnert/linkup-backend/internal/config"
	"github.com/mlehnert/linkup-backend/internal/logging"
	"github.com/mlehnert/linkup-backend/internal/media"
	miniostore "github.com/mlehnert/linkup-backend/internal/repository/minio"
	"github.com/mlehnert/linkup-backend/internal/repository/postgres"
	"github.com/mlehnert/linkup-backend/internal/service"
	"github.com/mlehnert/linkup-backend/internal/session"
	httptransport "github.com/mlehnert/linkup-backend/internal/transport/http"
	"github.com/mlehnert/linkup-backend/internal/transport/mail"
)

func main() {
	cfg := config.Load()

	logger, closeLogger := logging.New(cfg.LogstashTCPAddr)
	defer func() {
		if err := closeLogger(); err != nil {
			log.Printf("closing logger: %v", err)
		}
	}()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		logger.Error("connecting to postgres", "error", err)
		return
	}
	defer db.Close()

	userRepo := postgres.NewUserRepo(db)
	codeRepo := postgres.NewResetCodeRepo(db)

	minioClient, err := miniostore.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		logger.Error("connecting to minio", "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := miniostore.EnsureBucket(ctx, minioClient, cfg.MinIOBucketProfile); err != nil {
		cancel()
		logger.Error("ensuring profile bucket", "bucket", cfg.MinIOBucketProfile, "error", err)
		return
	}
	cancel()
	storage := miniostore.NewStorage(minioClient, cfg.MinIOPublicURL)

	processor := media.NewFFMPEGProcessor(cfg.FFmpegPath, cfg.AvatarMaxDimension)
	mailer := mail.NewResetCodeMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SessionCookieSecure)

	authSvc := service.NewAuthService(userRepo)
	resetSvc := service.NewPasswordResetService(userRepo, codeRepo, mailer, cfg.ResetCodeTTL, cfg.ResetCodeLength)
	profileSvc := service.NewProfileService(userRepo, storage, processor, cfg.MinIOBucketProfile)

	e := httptransport.NewRouter(logger, cfg.AllowOrigins)
	httptransport.RegisterAuth(e, authSvc, sessions, logger)
	httptransport.RegisterPasswordReset(e, resetSvc, logger)
	httptransport.RegisterProfile(e, profileSvc, sessions, cfg.AvatarMaxBytes, logger)
	httptransport.RegisterSwagger(e)
	// Pages install the catch-all route and must come after the API routes.
	httptransport.RegisterPages(e, sessions)

	logger.Info("starting http server", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Error("http server stopped", "error", err)
	}
}
