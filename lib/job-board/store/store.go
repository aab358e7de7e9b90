package jobboardstore

import (
	"strings"
	jobboardapimodels "venue-hiring-backend/models/api/jobboard"
	dbmodels "venue-hiring-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.JobBoardPosting) (id string, err error)
	GetByID(id string) (rec *dbmodels.JobBoardPosting, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(filter jobboardapimodels.JobPostingFilter) (count int64, err error)
	List(filter jobboardapimodels.JobPostingFilter) (list []dbmodels.JobBoardPosting, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobBoardPosting) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.JobBoardPosting, error) {
	rec := dbmodels.JobBoardPosting{}
	err := i.db.
		Model(&dbmodels.JobBoardPosting{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.JobBoardPosting{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("job posting not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.JobBoardPosting{}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListCount(filter jobboardapimodels.JobPostingFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.JobBoardPosting{})
	tx = i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("failed to count job postings")
		return 0, errors.Wrap(err, "failed to count job postings")
	}
	return rowCount, nil
}

func (i impl) List(filter jobboardapimodels.JobPostingFilter) (list []dbmodels.JobBoardPosting, err error) {
	list = []dbmodels.JobBoardPosting{}
	tx := i.db.Model(dbmodels.JobBoardPosting{})
	tx = i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	tx = tx.
		Order("urgent desc").
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter jobboardapimodels.JobPostingFilter) *gorm.DB {
	tx = tx.Where("status in (?)", filter.GetStatuses())
	if filter.VenueID != "" {
		tx = tx.Where("venue_id = ?", filter.VenueID)
	}
	if filter.OrganizationID != "" {
		tx = tx.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.RoleType != "" {
		tx = tx.Where("role_type = ?", filter.RoleType)
	}
	if filter.EmploymentType != "" {
		tx = tx.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.Urgent != nil {
		tx = tx.Where("urgent = ?", *filter.Urgent)
	}
	if filter.Remote != nil {
		tx = tx.Where("remote = ?", *filter.Remote)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("(LOWER(title) like ? or LOWER(description) like ? or LOWER(location) like ?)", search, search, search)
	}
	return tx
}
