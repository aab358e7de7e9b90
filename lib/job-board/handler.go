package jobboardhandler

import (
	"time"
	orgpostingstore "venue-hiring-backend/lib/job-board/org-store"
	jobboardstore "venue-hiring-backend/lib/job-board/store"
	"venue-hiring-backend/lib/schema"
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	"venue-hiring-backend/models"
	jobboardapimodels "venue-hiring-backend/models/api/jobboard"
	dbmodels "venue-hiring-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// PostingResult carries both identifiers of a persisted posting.
// Degraded is set when nothing was persisted because the schema is missing.
type PostingResult struct {
	JobBoardID            string                           `json:"job_board_id,omitempty"`
	OrganizationPostingID string                           `json:"organization_posting_id,omitempty"`
	Degraded              bool                             `json:"degraded"`
	Posting               jobboardapimodels.JobPostingView `json:"posting"`
}

type Provider interface {
	Create(userID string, data jobboardapimodels.JobPostingData) (result PostingResult, err error)
	GetByID(id string) (item jobboardapimodels.JobPostingView, err error)
	List(filter jobboardapimodels.JobPostingFilter) (list []jobboardapimodels.JobPostingView, rowCount int64, degraded bool, err error)
	ListByOrganization(organizationID string) (list []jobboardapimodels.JobPostingView, degraded bool, err error)
	ChangeStatus(id string, status models.PostingStatus) error
}

var Instance Provider

func NewHandler(db *gorm.DB, prober schema.Provider) {
	Instance = impl{
		db:       db,
		store:    jobboardstore.NewInstance(db),
		orgStore: orgpostingstore.NewInstance(db),
		prober:   prober,
	}
}

type impl struct {
	db       *gorm.DB
	store    jobboardstore.Provider
	orgStore orgpostingstore.Provider
	prober   schema.Provider
}

func (i impl) Create(userID string, data jobboardapimodels.JobPostingData) (result PostingResult, err error) {
	logger := i.getLogger(data.VenueID, data.Organization.ID, userID)
	if err = data.Validate(); err != nil {
		return PostingResult{}, err
	}

	if !i.tablesProvisioned() {
		logger.Warn("job posting tables are not provisioned, returning non-persistent posting")
		return syntheticPosting(userID, data), nil
	}

	fields := data.ToFields(userID)
	jobBoardID, err := i.store.Create(dbmodels.JobBoardPosting{JobPostingFields: fields})
	if err != nil {
		logger.WithError(err).Error("failed to insert job board posting")
		return PostingResult{}, apperrors.NewPersistenceError("insert job board posting", err)
	}
	logger = logger.WithField("job_board_id", jobBoardID)

	orgPostingID, err := i.orgStore.Create(dbmodels.OrganizationJobPosting{
		JobPostingFields:  fields,
		JobBoardPostingID: jobBoardID,
	})
	if err != nil {
		logger.WithError(err).Error("failed to insert organization posting, removing job board posting")
		partialErr := &apperrors.PartialWriteError{
			Err:      apperrors.NewPersistenceError("insert organization posting", err),
			OrphanID: jobBoardID,
		}
		if rollbackErr := i.store.Delete(jobBoardID); rollbackErr != nil {
			logger.WithError(rollbackErr).Error("failed to remove job board posting, record is orphaned")
			partialErr.RollbackErr = rollbackErr
		}
		return PostingResult{}, partialErr
	}

	rec := dbmodels.JobBoardPosting{
		BaseModel:        dbmodels.BaseModel{ID: jobBoardID, CreatedAt: time.Now()},
		JobPostingFields: fields,
	}
	logger.
		WithField("organization_posting_id", orgPostingID).
		Info("job posting created")
	return PostingResult{
		JobBoardID:            jobBoardID,
		OrganizationPostingID: orgPostingID,
		Posting:               jobboardapimodels.JobPostingConvert(rec, orgPostingID),
	}, nil
}

func (i impl) GetByID(id string) (item jobboardapimodels.JobPostingView, err error) {
	if !i.prober.TableExists(dbmodels.JobBoardPostingsTable) {
		for _, view := range fallbackPostings() {
			if view.ID == id {
				return view, nil
			}
		}
		return jobboardapimodels.JobPostingView{}, apperrors.NewNotFoundError("job posting", id)
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobboardapimodels.JobPostingView{}, apperrors.NewPersistenceError("get job posting", err)
	}
	if rec == nil {
		return jobboardapimodels.JobPostingView{}, apperrors.NewNotFoundError("job posting", id)
	}
	orgPostingID := ""
	if i.prober.TableExists(dbmodels.OrganizationJobPostingsTable) {
		orgRec, err := i.orgStore.GetByJobBoardID(id)
		if err != nil {
			i.getLogger(rec.VenueID, rec.Organization.ID, "").
				WithError(err).
				Warn("failed to load organization posting")
		} else if orgRec != nil {
			orgPostingID = orgRec.ID
		}
	}
	return jobboardapimodels.JobPostingConvert(*rec, orgPostingID), nil
}

func (i impl) List(filter jobboardapimodels.JobPostingFilter) (list []jobboardapimodels.JobPostingView, rowCount int64, degraded bool, err error) {
	if !i.prober.TableExists(dbmodels.JobBoardPostingsTable) {
		list = filterFallback(fallbackPostings(), filter)
		return list, int64(len(list)), true, nil
	}
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, false, apperrors.NewPersistenceError("count job postings", err)
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []jobboardapimodels.JobPostingView{}, rowCount, false, nil
	}
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, 0, false, apperrors.NewPersistenceError("list job postings", err)
	}
	list = make([]jobboardapimodels.JobPostingView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobboardapimodels.JobPostingConvert(rec, ""))
	}
	return list, rowCount, false, nil
}

func (i impl) ListByOrganization(organizationID string) (list []jobboardapimodels.JobPostingView, degraded bool, err error) {
	if !i.prober.TableExists(dbmodels.OrganizationJobPostingsTable) {
		list = filterFallback(fallbackPostings(), jobboardapimodels.JobPostingFilter{OrganizationID: organizationID})
		return list, true, nil
	}
	recList, err := i.orgStore.ListByOrganization(organizationID)
	if err != nil {
		return nil, false, apperrors.NewPersistenceError("list organization postings", err)
	}
	list = make([]jobboardapimodels.JobPostingView, 0, len(recList))
	for _, rec := range recList {
		view := jobboardapimodels.JobPostingConvert(dbmodels.JobBoardPosting{
			BaseModel:        dbmodels.BaseModel{ID: rec.JobBoardPostingID, CreatedAt: rec.CreatedAt},
			JobPostingFields: rec.JobPostingFields,
		}, rec.ID)
		list = append(list, view)
	}
	return list, false, nil
}

// ChangeStatus moves both copies of a posting to the new status in one transaction.
func (i impl) ChangeStatus(id string, status models.PostingStatus) error {
	logger := log.WithField("job_board_id", id).WithField("status", status)
	if err := status.Validate(); err != nil {
		vErr := apperrors.NewValidationError()
		vErr.Add("status", err.Error())
		return vErr
	}
	if !i.tablesProvisioned() {
		return &apperrors.RelationNotFoundError{Table: dbmodels.OrganizationJobPostingsTable}
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return apperrors.NewPersistenceError("get job posting", err)
	}
	if rec == nil {
		return apperrors.NewNotFoundError("job posting", id)
	}
	if rec.Status == status {
		return nil
	}
	if !rec.Status.CanChangeTo(status) {
		vErr := apperrors.NewValidationError()
		vErr.Add("status", "status change from "+string(rec.Status)+" to "+string(status)+" is not allowed")
		return vErr
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		updMap := map[string]interface{}{
			"status": status,
		}
		if err := jobboardstore.NewInstance(tx).Update(id, updMap); err != nil {
			return errors.Wrap(err, "failed to update job board posting")
		}
		if err := orgpostingstore.NewInstance(tx).UpdateByJobBoardID(id, updMap); err != nil {
			return errors.Wrap(err, "failed to update organization posting")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("failed to change job posting status")
		return apperrors.NewPersistenceError("change job posting status", err)
	}
	logger.Info("job posting status changed")
	return nil
}

func (i impl) tablesProvisioned() bool {
	g := errgroup.Group{}
	var boardExists, orgExists bool
	g.Go(func() error {
		boardExists = i.prober.TableExists(dbmodels.JobBoardPostingsTable)
		return nil
	})
	g.Go(func() error {
		orgExists = i.prober.TableExists(dbmodels.OrganizationJobPostingsTable)
		return nil
	})
	_ = g.Wait()
	return boardExists && orgExists
}

func (i impl) getLogger(venueID, organizationID, userID string) *log.Entry {
	logger := log.WithField("venue_id", venueID)
	if organizationID != "" {
		logger = logger.WithField("organization_id", organizationID)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

func syntheticPosting(userID string, data jobboardapimodels.JobPostingData) PostingResult {
	view := jobboardapimodels.JobPostingConvert(dbmodels.JobBoardPosting{
		BaseModel: dbmodels.BaseModel{
			ID:        "mock-" + uuid.NewString(),
			CreatedAt: time.Now(),
		},
		JobPostingFields: data.ToFields(userID),
	}, "")
	view.Degraded = true
	return PostingResult{
		Degraded: true,
		Posting:  view,
	}
}
