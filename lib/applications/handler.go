package applicationhandler

import (
	"fmt"
	applicationstore "venue-hiring-backend/lib/applications/store"
	jobboardstore "venue-hiring-backend/lib/job-board/store"
	"venue-hiring-backend/lib/schema"
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	"venue-hiring-backend/models"
	applicationapimodels "venue-hiring-backend/models/api/application"
	dbmodels "venue-hiring-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Apply(jobID, applicantID string, data applicationapimodels.ApplyData) (id string, err error)
	Reject(id string) error
	ListByJob(jobID string) (list []applicationapimodels.ApplicationView, degraded bool, err error)
}

var Instance Provider

func NewHandler(db *gorm.DB, prober schema.Provider) {
	Instance = impl{
		store:    applicationstore.NewInstance(db),
		jobStore: jobboardstore.NewInstance(db),
		prober:   prober,
	}
}

type impl struct {
	store    applicationstore.Provider
	jobStore jobboardstore.Provider
	prober   schema.Provider
}

func (i impl) Apply(jobID, applicantID string, data applicationapimodels.ApplyData) (id string, err error) {
	logger := i.getLogger(jobID, "").WithField("user_id", applicantID)
	if !i.prober.TableExists(dbmodels.StaffApplicationsTable) {
		return "", &apperrors.RelationNotFoundError{Table: dbmodels.StaffApplicationsTable}
	}
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return "", apperrors.NewPersistenceError("get job posting", err)
	}
	if job == nil {
		return "", apperrors.NewNotFoundError("job posting", jobID)
	}
	vErr := apperrors.NewValidationError()
	if job.Status != models.PostingStatusPublished {
		vErr.Add("job_id", "job posting is not accepting applications")
	}
	for _, field := range job.ApplicationForm {
		if !field.Required {
			continue
		}
		value, ok := data.Answers[field.ID]
		if !ok || value == nil || value == "" {
			vErr.Add(fmt.Sprintf("answers.%s", field.ID), fmt.Sprintf("%s is required", field.Label))
		}
	}
	if err = vErr.ErrOrNil(); err != nil {
		return "", err
	}
	existing, err := i.store.GetByJobAndApplicant(jobID, applicantID)
	if err != nil {
		return "", apperrors.NewPersistenceError("get application", err)
	}
	if existing != nil {
		vErr.Add("job_id", "already applied to this job")
		return "", vErr
	}
	id, err = i.store.Create(dbmodels.StaffApplication{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusPending,
		CoverLetter: data.CoverLetter,
		Answers:     data.Answers,
	})
	if err != nil {
		logger.WithError(err).Error("failed to create application")
		return "", apperrors.NewPersistenceError("create application", err)
	}
	logger.WithField("application_id", id).Info("application created")
	return id, nil
}

func (i impl) Reject(id string) error {
	logger := i.getLogger("", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return apperrors.NewPersistenceError("get application", err)
	}
	if rec == nil {
		return apperrors.NewNotFoundError("application", id)
	}
	if rec.Status != models.ApplicationStatusPending {
		vErr := apperrors.NewValidationError()
		vErr.Add("status", "only pending applications can be rejected")
		return vErr
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": models.ApplicationStatusRejected,
	})
	if err != nil {
		logger.WithError(err).Error("failed to reject application")
		return apperrors.NewPersistenceError("reject application", err)
	}
	logger.Info("application rejected")
	return nil
}

func (i impl) ListByJob(jobID string) (list []applicationapimodels.ApplicationView, degraded bool, err error) {
	if !i.prober.TableExists(dbmodels.StaffApplicationsTable) {
		return []applicationapimodels.ApplicationView{}, true, nil
	}
	recList, err := i.store.ListByJob(jobID)
	if err != nil {
		return nil, false, apperrors.NewPersistenceError("list applications", err)
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicationapimodels.ApplicationConvert(rec))
	}
	return list, false, nil
}

func (i impl) getLogger(jobID, applicationID string) *log.Entry {
	logger := log.NewEntry(log.StandardLogger())
	if jobID != "" {
		logger = logger.WithField("job_id", jobID)
	}
	if applicationID != "" {
		logger = logger.WithField("application_id", applicationID)
	}
	return logger
}
