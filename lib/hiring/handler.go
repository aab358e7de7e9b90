package hiringhandler

import (
	"fmt"
	"time"
	applicationstore "venue-hiring-backend/lib/applications/store"
	hireprocedure "venue-hiring-backend/lib/hiring/procedure"
	"venue-hiring-backend/lib/schema"
	"venue-hiring-backend/lib/smtp"
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	venuestaffstore "venue-hiring-backend/lib/venue-staff/store"
	"venue-hiring-backend/models"
	hiringapimodels "venue-hiring-backend/models/api/hiring"
	dbmodels "venue-hiring-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Provider interface {
	HireFromJobBoard(applicationID string, data hiringapimodels.HireData) (result hiringapimodels.HireResult, err error)
}

var Instance Provider

type Config struct {
	// RequireProcedure turns a missing or failing procedure into an error instead of using the fallback.
	RequireProcedure bool
	NotifyFrom       string
}

func NewHandler(db *gorm.DB, prober schema.Provider, notifier smtp.Provider, cfg Config) {
	Instance = impl{
		prober:           prober,
		procedure:        hireprocedure.NewInstance(db),
		applicationStore: applicationstore.NewInstance(db),
		staffStore:       venuestaffstore.NewInstance(db),
		notifier:         notifier,
		cfg:              cfg,
	}
}

type impl struct {
	prober           schema.Provider
	procedure        hireprocedure.Provider
	applicationStore applicationstore.Provider
	staffStore       venuestaffstore.Provider
	notifier         smtp.Provider
	cfg              Config
	now              func() time.Time
}

func (i impl) HireFromJobBoard(applicationID string, data hiringapimodels.HireData) (result hiringapimodels.HireResult, err error) {
	logger := i.getLogger(applicationID, data)
	if err = data.Validate(); err != nil {
		return hiringapimodels.HireResult{}, err
	}
	if table, ok := i.missingTable(data.HireType); !ok {
		logger.WithField("table", table).Warn("hiring tables are not provisioned")
		return hiringapimodels.HireResult{}, &apperrors.RelationNotFoundError{Table: table}
	}
	result = hiringapimodels.HireResult{
		ApplicationID: applicationID,
		HiredAs:       data.HireType,
	}

	ok, procErr := i.procedure.Hire(applicationID, data)
	if procErr == nil {
		result.Hired = ok
		result.Atomic = true
		logger.WithField("hired", ok).Info("hire procedure finished")
		if ok {
			i.notify(applicationID, data.HireType)
		}
		return result, nil
	}
	if apperrors.IsNotFound(procErr) {
		return hiringapimodels.HireResult{}, procErr
	}
	if i.cfg.RequireProcedure {
		logger.WithError(procErr).Error("hire procedure failed and fallback is disabled")
		return hiringapimodels.HireResult{}, &apperrors.ConfigurationError{
			Msg: "hire procedure is required but unavailable",
			Err: procErr,
		}
	}
	logger.WithError(procErr).Warn("hire procedure unavailable, using step by step hire")

	recordID, err := i.hireStepByStep(applicationID, data, logger)
	if err != nil {
		return hiringapimodels.HireResult{}, err
	}
	result.Hired = true
	result.RecordID = recordID
	i.notify(applicationID, data.HireType)
	return result, nil
}

// hireStepByStep accepts the application and creates the employment record.
// If the record cannot be created the application is restored to its previous state.
func (i impl) hireStepByStep(applicationID string, data hiringapimodels.HireData, logger *log.Entry) (recordID string, err error) {
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return "", apperrors.NewPersistenceError("get application", err)
	}
	if app == nil {
		return "", apperrors.NewNotFoundError("application", applicationID)
	}
	if app.Status == models.ApplicationStatusRejected || app.IsHired() {
		vErr := apperrors.NewValidationError()
		vErr.Add("application_id", "application is rejected or already hired")
		return "", vErr
	}

	hireDate := i.currentTime()
	rate := data.Rate
	err = i.applicationStore.Update(applicationID, map[string]interface{}{
		"status":     models.ApplicationStatusAccepted,
		"hired_as":   data.HireType,
		"hire_date":  hireDate,
		"final_rate": rate,
	})
	if err != nil {
		logger.WithError(err).Error("failed to accept application")
		return "", apperrors.NewPersistenceError("accept application", err)
	}

	recordID, err = i.createRecord(*app, data, hireDate)
	if err != nil {
		logger.WithError(err).Error("failed to create employment record, restoring application")
		restoreErr := i.applicationStore.Update(applicationID, map[string]interface{}{
			"status":     app.Status,
			"hired_as":   app.HiredAs,
			"hire_date":  app.HireDate,
			"final_rate": app.FinalRate,
		})
		if restoreErr != nil {
			logger.WithError(restoreErr).Error("failed to restore application")
			return "", &apperrors.PartialWriteError{
				Err:         apperrors.NewPersistenceError("create employment record", err),
				RollbackErr: restoreErr,
				OrphanID:    applicationID,
			}
		}
		return "", apperrors.NewPersistenceError("create employment record", err)
	}
	logger.
		WithField("record_id", recordID).
		Info("application hired")
	return recordID, nil
}

func (i impl) createRecord(app dbmodels.StaffApplication, data hiringapimodels.HireData, hireDate time.Time) (string, error) {
	base := dbmodels.EmploymentBase{
		VenueID:       data.VenueID,
		UserID:        app.ApplicantID,
		ApplicationID: app.ID,
		Name:          app.ApplicantName(),
		Email:         app.ApplicantEmail(),
	}
	extra := data.Extra
	switch data.HireType {
	case models.HireTypeStaff:
		return i.staffStore.CreateStaffMember(dbmodels.StaffMember{
			EmploymentBase: base,
			Role:           firstNonEmpty(extra.Role, app.JobTitle()),
			EmploymentType: models.EmploymentTypeFullTime,
			Status:         models.StaffStatusActive,
			HourlyRate:     data.Rate,
			Permissions:    datatypes.JSONMap(nonNilMap(extra.Permissions)),
			Schedule:       datatypes.JSONMap(nonNilMap(extra.Schedule)),
			HireDate:       hireDate,
		})
	case models.HireTypeCrew:
		return i.staffStore.CreateCrewMember(dbmodels.CrewMember{
			EmploymentBase: base,
			Specialty:      firstNonEmpty(extra.Specialty, app.JobTitle()),
			Skills:         nonNilSlice(extra.Skills),
			Certifications: nonNilSlice(extra.Certifications),
			DayRate:        data.Rate,
			RateType:       models.RateTypeDaily,
			Availability:   firstNonEmpty(extra.Availability, models.CrewAvailabilityAvailable),
			Rating:         0,
		})
	case models.HireTypeTeam:
		return i.staffStore.CreateContractor(dbmodels.TeamContractor{
			EmploymentBase: base,
			Role:           firstNonEmpty(extra.Role, app.JobTitle()),
			ContractType:   firstNonEmpty(extra.ContractType, models.ContractTypeFreelance),
			Specialization: nonNilSlice(extra.Specialization),
			Rate:           data.Rate,
			RateType:       models.RateTypeProject,
			Rating:         0,
		})
	}
	return "", errors.Errorf("unknown hire type %q", data.HireType)
}

// missingTable reports the first table the hire needs that is not provisioned.
func (i impl) missingTable(hireType models.HireType) (table string, ok bool) {
	for _, table = range []string{dbmodels.StaffApplicationsTable, recordTable(hireType)} {
		if !i.prober.TableExists(table) {
			return table, false
		}
	}
	return "", true
}

func recordTable(hireType models.HireType) string {
	switch hireType {
	case models.HireTypeStaff:
		return dbmodels.VenueTeamMembersTable
	case models.HireTypeTeam:
		return dbmodels.VenueTeamContractorsTable
	}
	return dbmodels.VenueCrewMembersTable
}

func (i impl) notify(applicationID string, hireType models.HireType) {
	if i.notifier == nil {
		return
	}
	logger := log.WithField("application_id", applicationID)
	app, err := i.applicationStore.GetByID(applicationID)
	if err != nil || app == nil || app.ApplicantEmail() == "" {
		logger.Warn("hire notification skipped, applicant email unknown")
		return
	}
	message := fmt.Sprintf("Hello %s,\r\nyou have been hired as %s for \"%s\".", app.ApplicantName(), hireType, app.JobTitle())
	if err = i.notifier.SendEMail(i.cfg.NotifyFrom, app.ApplicantEmail(), message, "You're hired"); err != nil {
		logger.WithError(err).Warn("failed to send hire notification")
	}
}

func (i impl) currentTime() time.Time {
	if i.now != nil {
		return i.now()
	}
	return time.Now()
}

func (i impl) getLogger(applicationID string, data hiringapimodels.HireData) *log.Entry {
	return log.
		WithField("application_id", applicationID).
		WithField("venue_id", data.VenueID).
		WithField("hire_type", data.HireType)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonNilSlice(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func nonNilMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return m
}
