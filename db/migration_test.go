package db

import (
	"strings"
	"testing"
	"venue-hiring-backend/lib/schema"
	testdb "venue-hiring-backend/lib/utils/test-db"
	dbmodels "venue-hiring-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestAutoMigrateDB(t *testing.T) {
	tx := testdb.New(t)
	require.NoError(t, AutoMigrateDB(tx))
	prober := schema.NewProber(tx)
	for _, table := range dbmodels.KnownTables {
		require.True(t, prober.TableExists(table), table)
	}
}

func TestHireFunctionDefinition(t *testing.T) {
	// only built-in functions, no extension has to be installed
	require.Contains(t, hireFromJobBoardFunction, "gen_random_uuid()")
	require.NotContains(t, hireFromJobBoardFunction, "uuid_generate_v4")
	require.True(t, strings.Contains(hireFromJobBoardFunction, "ERRCODE = 'no_data_found'"))
}
