package filestorage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	apperrors "venue-hiring-backend/lib/utils/app-errors"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var allowedLogoTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

type Provider interface {
	UploadOrganizationLogo(ctx context.Context, organizationID string, fileReader io.Reader, fileSize int64, contentType string) (url string, err error)
}

var Instance Provider

// NewHandler keeps Instance nil when no S3 client is configured.
func NewHandler(s3client *minio.Client, bucketName string) {
	if s3client == nil {
		return
	}
	Instance = &impl{
		s3client:   s3client,
		bucketName: bucketName,
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func (i impl) UploadOrganizationLogo(ctx context.Context, organizationID string, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	logger := log.WithField("organization_id", organizationID)
	ext, ok := allowedLogoTypes[strings.ToLower(contentType)]
	if !ok {
		vErr := apperrors.NewValidationError()
		vErr.Add("logo", fmt.Sprintf("unsupported logo content type %q", contentType))
		return "", vErr
	}
	if err := i.makeBucket(ctx); err != nil {
		return "", errors.Wrap(err, "failed to prepare bucket")
	}
	objectName := path.Join("organizations", organizationID, "logo-"+uuid.NewString()+ext)
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectName, fileReader, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.WithError(err).Error("failed to upload organization logo")
		return "", errors.Wrap(err, "failed to upload organization logo")
	}
	url := fmt.Sprintf("%s/%s/%s", i.s3client.EndpointURL().String(), i.bucketName, objectName)
	logger.WithField("object", objectName).Info("organization logo uploaded")
	return url, nil
}

func (i impl) makeBucket(ctx context.Context) error {
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
