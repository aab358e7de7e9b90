package initializers

import (
	"context"
	"time"
	"venue-hiring-backend/config"
	filestorage "venue-hiring-backend/lib/file-storage"
	s3client "venue-hiring-backend/s3"

	log "github.com/sirupsen/logrus"
)

// InitS3 leaves logo upload disabled when no endpoint is configured.
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("s3 endpoint is not set, logo upload disabled")
		return
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := s3client.Connect(pingCtx, config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("failed to init s3 client")
	}
	filestorage.NewHandler(client, config.Conf.S3.BucketName)
}
