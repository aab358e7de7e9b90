package jobboardapimodels

import (
	"testing"
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	"venue-hiring-backend/models"
	dbmodels "venue-hiring-backend/models/db"

	"github.com/stretchr/testify/require"
)

func validPosting() JobPostingData {
	return JobPostingData{
		Title:             "Stage Hand",
		Description:       "Load-in and load-out for touring shows",
		VenueID:           "venue-1",
		Organization:      Organization{ID: "org-1", Name: "Riverside Hall"},
		NumberOfPositions: 2,
		Requirements:      []string{"Able to lift 50 lbs"},
		Responsibilities:  []string{"Set up staging"},
		EmploymentType:    models.EmploymentTypePartTime,
		RoleType:          models.RoleTypeProduction,
	}
}

func fieldNames(t *testing.T, err error) []string {
	vErr, ok := apperrors.IsValidation(err)
	require.True(t, ok)
	names := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestJobPostingDataValidate(t *testing.T) {
	t.Run(`valid payload`, func(t *testing.T) {
		require.NoError(t, validPosting().Validate())
	})

	t.Run(`all violations are reported`, func(t *testing.T) {
		data := validPosting()
		data.Title = "  "
		data.Description = "short"
		data.NumberOfPositions = 0
		data.Requirements = []string{""}
		data.Responsibilities = nil
		require.ElementsMatch(t,
			[]string{"title", "description", "number_of_positions", "requirements", "responsibilities"},
			fieldNames(t, data.Validate()))
	})

	t.Run(`minimum age`, func(t *testing.T) {
		data := validPosting()
		age := 16
		data.MinimumAge = &age
		require.Equal(t, []string{"minimum_age"}, fieldNames(t, data.Validate()))
		age = 18
		require.NoError(t, data.Validate())
	})

	t.Run(`salary range`, func(t *testing.T) {
		data := validPosting()
		min, max := 30.0, 20.0
		data.SalaryRange = &SalaryRange{Min: &min, Max: &max}
		require.Equal(t, []string{"salary_range.max"}, fieldNames(t, data.Validate()))

		negative := -1.0
		data.SalaryRange = &SalaryRange{Min: &negative}
		require.Equal(t, []string{"salary_range.min"}, fieldNames(t, data.Validate()))
	})

	t.Run(`unknown enums and form fields`, func(t *testing.T) {
		data := validPosting()
		data.EmploymentType = "seasonal"
		data.ApplicationForm = []dbmodels.FormField{
			{ID: "f1", Label: "Shirt size", Type: models.FormFieldSelect},
			{ID: "f2", Type: "signature"},
		}
		require.ElementsMatch(t,
			[]string{"employment_type", "application_form[0].options", "application_form[1].label", "application_form[1].type"},
			fieldNames(t, data.Validate()))
	})

	t.Run(`status defaults to draft`, func(t *testing.T) {
		data := validPosting()
		require.Equal(t, models.PostingStatusDraft, data.GetStatus())
		fields := data.ToFields("user-1")
		require.Equal(t, models.PostingStatusDraft, fields.Status)
		require.Equal(t, "user-1", fields.CreatedBy)
	})
}
