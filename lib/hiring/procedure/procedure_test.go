package hireprocedure

import (
	"testing"
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	testdb "venue-hiring-backend/lib/utils/test-db"
	"venue-hiring-backend/models"
	hiringapimodels "venue-hiring-backend/models/api/hiring"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestIsNoDataFound(t *testing.T) {
	require.True(t, isNoDataFound(&pgconn.PgError{Code: "P0002", Message: "application a1 not found"}))
	require.True(t, isNoDataFound(errors.Wrap(&pgconn.PgError{Code: "P0002"}, "hire")))
	require.False(t, isNoDataFound(&pgconn.PgError{Code: "42883"}))
	require.False(t, isNoDataFound(errors.New("no such function: hire_from_job_board")))
	require.False(t, isNoDataFound(nil))
}

func TestHireWithoutFunction(t *testing.T) {
	db := testdb.New(t)
	ok, err := NewInstance(db).Hire("a1", hiringapimodels.HireData{HireType: models.HireTypeCrew, VenueID: "v1"})
	require.Error(t, err)
	require.False(t, ok)
	require.False(t, apperrors.IsNotFound(err))
}
