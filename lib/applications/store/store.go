package applicationstore

import (
	dbmodels "venue-hiring-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.StaffApplication) (id string, err error)
	GetByID(id string) (rec *dbmodels.StaffApplication, err error)
	GetByJobAndApplicant(jobID, applicantID string) (rec *dbmodels.StaffApplication, err error)
	ListByJob(jobID string) (list []dbmodels.StaffApplication, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StaffApplication) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GetByID loads the application together with its job and applicant profile.
func (i impl) GetByID(id string) (*dbmodels.StaffApplication, error) {
	rec := dbmodels.StaffApplication{}
	err := i.db.
		Model(&dbmodels.StaffApplication{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) GetByJobAndApplicant(jobID, applicantID string) (*dbmodels.StaffApplication, error) {
	rec := dbmodels.StaffApplication{}
	err := i.db.
		Model(&dbmodels.StaffApplication{}).
		Where("job_id = ?", jobID).
		Where("applicant_id = ?", applicantID).
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

func (i impl) ListByJob(jobID string) (list []dbmodels.StaffApplication, err error) {
	list = []dbmodels.StaffApplication{}
	err = i.db.
		Model(&dbmodels.StaffApplication{}).
		Where("job_id = ?", jobID).
		Preload("Applicant").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.StaffApplication{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application not found")
	}
	return nil
}
