package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Connect creates a minio client and checks the endpoint is reachable.
// The client is returned even when the check fails.
func Connect(ctx context.Context, endpoint, accessKeyID, secretAccessKey string, useSSL bool) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create s3 client")
	}
	if _, err = client.ListBuckets(ctx); err != nil {
		return client, errors.Wrap(err, "s3 endpoint check failed")
	}
	log.WithField("endpoint", endpoint).Info("s3 client initialized")
	return client, nil
}
