package s3client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectInvalidEndpoint(t *testing.T) {
	client, err := Connect(context.Background(), "", "key", "secret", false)
	require.Error(t, err)
	require.Nil(t, client)
}
