package filestorage

import (
	"context"
	"strings"
	"testing"
	apperrors "venue-hiring-backend/lib/utils/app-errors"

	"github.com/stretchr/testify/require"
)

func TestUploadOrganizationLogo(t *testing.T) {
	t.Run(`unsupported content type`, func(t *testing.T) {
		_, err := impl{}.UploadOrganizationLogo(context.Background(), "org-1", strings.NewReader("%PDF"), 4, "application/pdf")
		vErr, ok := apperrors.IsValidation(err)
		require.True(t, ok)
		require.Equal(t, "logo", vErr.Fields[0].Field)
	})

	t.Run(`handler without client`, func(t *testing.T) {
		Instance = nil
		NewHandler(nil, "venue-hiring")
		require.Nil(t, Instance)
	})
}
