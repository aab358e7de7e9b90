package applicationhandler

import (
	"testing"
	applicationstore "venue-hiring-backend/lib/applications/store"
	jobboardstore "venue-hiring-backend/lib/job-board/store"
	"venue-hiring-backend/lib/schema"
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	testdb "venue-hiring-backend/lib/utils/test-db"
	"venue-hiring-backend/models"
	applicationapimodels "venue-hiring-backend/models/api/application"
	dbmodels "venue-hiring-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestHandler(t *testing.T) (impl, *gorm.DB) {
	db := testdb.New(t, &dbmodels.JobBoardPosting{}, &dbmodels.StaffApplication{}, &dbmodels.Profile{})
	return impl{
		store:    applicationstore.NewInstance(db),
		jobStore: jobboardstore.NewInstance(db),
		prober:   schema.NewProber(db),
	}, db
}

func createJob(t *testing.T, db *gorm.DB, status models.PostingStatus, form []dbmodels.FormField) string {
	rec := dbmodels.JobBoardPosting{
		JobPostingFields: dbmodels.JobPostingFields{
			Title:            "Bartender",
			Description:      "Serve drinks during concerts",
			VenueID:          "v1",
			Requirements:     []string{"Mixology"},
			Responsibilities: []string{"Serve"},
			Benefits:         []string{},
			Skills:           []string{},
			Status:           status,
			ApplicationForm:  form,
		},
	}
	require.NoError(t, db.Create(&rec).Error)
	return rec.ID
}

func TestApply(t *testing.T) {
	t.Run(`apply and list`, func(t *testing.T) {
		h, db := newTestHandler(t)
		require.NoError(t, db.Create(&dbmodels.Profile{BaseModel: dbmodels.BaseModel{ID: "p1"}, FullName: "Jane Roe", Email: "jane@example.com"}).Error)
		jobID := createJob(t, db, models.PostingStatusPublished, []dbmodels.FormField{
			{ID: "phone", Label: "Phone", Type: models.FormFieldPhone, Required: true},
		})

		_, err := h.Apply(jobID, "p1", applicationapimodels.ApplyData{})
		vErr, ok := apperrors.IsValidation(err)
		require.True(t, ok)
		require.Equal(t, "answers.phone", vErr.Fields[0].Field)

		id, err := h.Apply(jobID, "p1", applicationapimodels.ApplyData{
			CoverLetter: "I have worked festivals for years",
			Answers:     map[string]interface{}{"phone": "+1 555 0100"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		_, err = h.Apply(jobID, "p1", applicationapimodels.ApplyData{
			Answers: map[string]interface{}{"phone": "+1 555 0100"},
		})
		_, ok = apperrors.IsValidation(err)
		require.True(t, ok)

		list, degraded, err := h.ListByJob(jobID)
		require.NoError(t, err)
		require.False(t, degraded)
		require.Len(t, list, 1)
		require.Equal(t, models.ApplicationStatusPending, list[0].Status)
		require.Equal(t, "Jane Roe", list[0].ApplicantName)
		require.Equal(t, "+1 555 0100", list[0].Answers["phone"])
	})

	t.Run(`draft job does not accept applications`, func(t *testing.T) {
		h, db := newTestHandler(t)
		jobID := createJob(t, db, models.PostingStatusDraft, nil)
		_, err := h.Apply(jobID, "p1", applicationapimodels.ApplyData{})
		_, ok := apperrors.IsValidation(err)
		require.True(t, ok)

		_, err = h.Apply("missing", "p1", applicationapimodels.ApplyData{})
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestReject(t *testing.T) {
	h, db := newTestHandler(t)
	jobID := createJob(t, db, models.PostingStatusPublished, nil)
	id, err := h.Apply(jobID, "p1", applicationapimodels.ApplyData{})
	require.NoError(t, err)

	require.NoError(t, h.Reject(id))
	rec := dbmodels.StaffApplication{}
	require.NoError(t, db.First(&rec, "id = ?", id).Error)
	require.Equal(t, models.ApplicationStatusRejected, rec.Status)

	_, ok := apperrors.IsValidation(h.Reject(id))
	require.True(t, ok)
	require.True(t, apperrors.IsNotFound(h.Reject("missing")))
}
