package schema

import (
	"testing"
	testdb "venue-hiring-backend/lib/utils/test-db"
	dbmodels "venue-hiring-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls  int
	exists bool
}

func (c *countingProvider) TableExists(name string) bool {
	c.calls++
	return c.exists
}

func TestProber(t *testing.T) {
	t.Run(`existing and missing tables`, func(t *testing.T) {
		db := testdb.New(t, &dbmodels.JobBoardPosting{})
		p := NewProber(db)
		require.True(t, p.TableExists(dbmodels.JobBoardPostingsTable))
		require.False(t, p.TableExists(dbmodels.OrganizationJobPostingsTable))
	})

	t.Run(`probe is idempotent`, func(t *testing.T) {
		db := testdb.New(t, &dbmodels.JobBoardPosting{})
		p := NewProber(db)
		require.Equal(t, p.TableExists(dbmodels.JobBoardPostingsTable), p.TableExists(dbmodels.JobBoardPostingsTable))
		require.Equal(t, p.TableExists("missing_table"), p.TableExists("missing_table"))
	})

	t.Run(`probe does not write`, func(t *testing.T) {
		db := testdb.New(t, &dbmodels.JobBoardPosting{})
		p := NewProber(db)
		require.True(t, p.TableExists(dbmodels.JobBoardPostingsTable))
		var count int64
		require.NoError(t, db.Model(&dbmodels.JobBoardPosting{}).Count(&count).Error)
		require.Equal(t, int64(0), count)
	})
}

func TestIsRelationNotFound(t *testing.T) {
	require.False(t, IsRelationNotFound(nil))
	require.True(t, IsRelationNotFound(errors.New(`ERROR: relation "job_board_postings" does not exist (SQLSTATE 42P01)`)))
	require.True(t, IsRelationNotFound(errors.New("no such table: job_board_postings")))
	require.False(t, IsRelationNotFound(errors.New("connection refused")))
	require.False(t, IsRelationNotFound(errors.New("permission denied for table job_board_postings")))
}

func TestSnapshot(t *testing.T) {
	source := &countingProvider{exists: true}
	s := NewSnapshot(source, "a", "b")
	require.Equal(t, 2, source.calls)

	require.True(t, s.TableExists("a"))
	require.True(t, s.TableExists("b"))
	require.Equal(t, 2, source.calls)

	source.exists = false
	require.False(t, s.TableExists("c"))
	require.False(t, s.TableExists("c"))
	require.Equal(t, 3, source.calls)

	require.Equal(t, map[string]bool{"a": true, "c": false}, Capabilities(s, "a", "c"))
}

func TestSnapshotRefresh(t *testing.T) {
	source := &countingProvider{exists: false}
	s := NewSnapshot(source, dbmodels.JobBoardPostingsTable)
	require.False(t, s.TableExists(dbmodels.JobBoardPostingsTable))

	source.exists = true
	require.False(t, s.TableExists(dbmodels.JobBoardPostingsTable))
	refresher, ok := s.(Refresher)
	require.True(t, ok)
	refresher.Refresh()
	require.True(t, s.TableExists(dbmodels.JobBoardPostingsTable))
	require.Equal(t, 2, source.calls)

	_, ok = NewProber(nil).(Refresher)
	require.False(t, ok)
}
