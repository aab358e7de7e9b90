package apperrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAppErrors(t *testing.T) {
	t.Run(`ValidationError keeps one message per field`, func(t *testing.T) {
		vErr := NewValidationError()
		require.Nil(t, vErr.ErrOrNil())
		vErr.Add("title", "title is required")
		vErr.Add("title", "title is too short")
		vErr.Add("requirements", "at least one requirement is required")
		require.Len(t, vErr.Fields, 2)
		require.Equal(t, "title is required", vErr.Fields[0].Message)

		err := errors.Wrap(vErr.ErrOrNil(), "create job posting")
		found, ok := IsValidation(err)
		require.True(t, ok)
		require.Len(t, found.Fields, 2)
	})

	t.Run(`PartialWriteError unwraps to original`, func(t *testing.T) {
		original := NewPersistenceError("insert organization posting", errors.New("boom"))
		err := &PartialWriteError{Err: original, OrphanID: "jb-1"}
		require.True(t, IsPartialWrite(err))
		require.True(t, IsPersistence(err))
		require.Contains(t, err.Error(), "rolled back")

		err.RollbackErr = errors.New("delete failed")
		require.Contains(t, err.Error(), "jb-1")
	})

	t.Run(`NotFoundError`, func(t *testing.T) {
		err := errors.Wrap(NewNotFoundError("application", "a-1"), "hire")
		require.True(t, IsNotFound(err))
		require.False(t, IsPersistence(err))
	})

	t.Run(`schema and configuration errors`, func(t *testing.T) {
		err := errors.Wrap(&RelationNotFoundError{Table: "staff_applications"}, "apply")
		require.True(t, IsRelationNotFound(err))
		require.False(t, IsConfiguration(err))

		err = &ConfigurationError{Msg: "hire procedure is required", Err: errors.New("no function")}
		require.True(t, IsConfiguration(err))
		require.False(t, IsRelationNotFound(err))
	})
}
