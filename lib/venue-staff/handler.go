package venuestaffhandler

import (
	"bytes"
	xlsexport "venue-hiring-backend/lib/export/xls"
	"venue-hiring-backend/lib/schema"
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	venuestaffstore "venue-hiring-backend/lib/venue-staff/store"
	workforceapimodels "venue-hiring-backend/models/api/workforce"
	dbmodels "venue-hiring-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Workforce(venueID string) (result workforceapimodels.Workforce, err error)
	ExportWorkforce(venueID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler(db *gorm.DB, prober schema.Provider, exporter xlsexport.Provider) {
	Instance = impl{
		store:    venuestaffstore.NewInstance(db),
		prober:   prober,
		exporter: exporter,
	}
}

type impl struct {
	store    venuestaffstore.Provider
	prober   schema.Provider
	exporter xlsexport.Provider
}

// Workforce lists staff, crew and contractors of a venue.
// Kinds whose table is not provisioned are returned empty.
func (i impl) Workforce(venueID string) (result workforceapimodels.Workforce, err error) {
	result = workforceapimodels.Workforce{
		VenueID:     venueID,
		Staff:       []workforceapimodels.Worker{},
		Crew:        []workforceapimodels.Worker{},
		Contractors: []workforceapimodels.Worker{},
	}
	if i.prober.TableExists(dbmodels.VenueTeamMembersTable) {
		list, err := i.store.ListStaffMembers(venueID)
		if err != nil {
			return result, apperrors.NewPersistenceError("list staff members", err)
		}
		for _, rec := range list {
			result.Staff = append(result.Staff, workforceapimodels.StaffConvert(rec))
		}
	}
	if i.prober.TableExists(dbmodels.VenueCrewMembersTable) {
		list, err := i.store.ListCrewMembers(venueID)
		if err != nil {
			return result, apperrors.NewPersistenceError("list crew members", err)
		}
		for _, rec := range list {
			result.Crew = append(result.Crew, workforceapimodels.CrewConvert(rec))
		}
	}
	if i.prober.TableExists(dbmodels.VenueTeamContractorsTable) {
		list, err := i.store.ListContractors(venueID)
		if err != nil {
			return result, apperrors.NewPersistenceError("list contractors", err)
		}
		for _, rec := range list {
			result.Contractors = append(result.Contractors, workforceapimodels.ContractorConvert(rec))
		}
	}
	return result, nil
}

func (i impl) ExportWorkforce(venueID string) (*bytes.Buffer, error) {
	workforce, err := i.Workforce(venueID)
	if err != nil {
		return nil, err
	}
	buf, err := i.exporter.ExportWorkforce(workforce)
	if err != nil {
		log.WithError(err).WithField("venue_id", venueID).Error("failed to export workforce")
		return nil, errors.Wrap(err, "failed to export workforce")
	}
	return buf, nil
}
