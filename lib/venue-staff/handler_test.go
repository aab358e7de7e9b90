package venuestaffhandler

import (
	"testing"
	xlsexport "venue-hiring-backend/lib/export/xls"
	"venue-hiring-backend/lib/schema"
	testdb "venue-hiring-backend/lib/utils/test-db"
	venuestaffstore "venue-hiring-backend/lib/venue-staff/store"
	dbmodels "venue-hiring-backend/models/db"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkforce(t *testing.T) {
	db := testdb.New(t, &dbmodels.StaffMember{}, &dbmodels.CrewMember{})
	store := venuestaffstore.NewInstance(db)
	_, err := store.CreateStaffMember(dbmodels.StaffMember{
		EmploymentBase: dbmodels.EmploymentBase{VenueID: "v1", UserID: "u1", ApplicationID: "a1", Name: "Pat Lee"},
		Role:           "Box Office Manager",
		HourlyRate:     32,
	})
	require.NoError(t, err)
	_, err = store.CreateCrewMember(dbmodels.CrewMember{
		EmploymentBase: dbmodels.EmploymentBase{VenueID: "v1", UserID: "u2", ApplicationID: "a2", Name: "Sam Rivera"},
		Specialty:      "Stage Hand",
		Skills:         []string{},
		Certifications: []string{},
		DayRate:        250,
	})
	require.NoError(t, err)
	_, err = store.CreateCrewMember(dbmodels.CrewMember{
		EmploymentBase: dbmodels.EmploymentBase{VenueID: "v2", UserID: "u3", ApplicationID: "a3", Name: "Other Venue"},
		Skills:         []string{},
		Certifications: []string{},
	})
	require.NoError(t, err)

	xlsexport.NewHandler()
	h := impl{
		store:    store,
		prober:   schema.NewProber(db),
		exporter: xlsexport.Instance,
	}

	// contractors table is not migrated
	result, err := h.Workforce("v1")
	require.NoError(t, err)
	require.Len(t, result.Staff, 1)
	require.Len(t, result.Crew, 1)
	require.Len(t, result.Contractors, 0)
	require.Equal(t, "Box Office Manager", result.Staff[0].Role)
	require.Equal(t, float64(250), result.Crew[0].Rate)

	buf, err := h.ExportWorkforce("v1")
	require.NoError(t, err)
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(xlsexport.SheetCrew)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Sam Rivera", rows[1][0])
}
