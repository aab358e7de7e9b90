package orgpostingstore

import (
	dbmodels "venue-hiring-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.OrganizationJobPosting) (id string, err error)
	GetByJobBoardID(jobBoardID string) (rec *dbmodels.OrganizationJobPosting, err error)
	UpdateByJobBoardID(jobBoardID string, updMap map[string]interface{}) error
	ListByOrganization(organizationID string) (list []dbmodels.OrganizationJobPosting, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OrganizationJobPosting) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByJobBoardID(jobBoardID string) (*dbmodels.OrganizationJobPosting, error) {
	rec := dbmodels.OrganizationJobPosting{}
	err := i.db.
		Model(&dbmodels.OrganizationJobPosting{}).
		Where("job_board_posting_id = ?", jobBoardID).
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

func (i impl) UpdateByJobBoardID(jobBoardID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.OrganizationJobPosting{}).
		Where("job_board_posting_id = ?", jobBoardID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("organization posting not found")
	}
	return nil
}

func (i impl) ListByOrganization(organizationID string) (list []dbmodels.OrganizationJobPosting, err error) {
	list = []dbmodels.OrganizationJobPosting{}
	err = i.db.
		Model(&dbmodels.OrganizationJobPosting{}).
		Where("organization_id = ?", organizationID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
