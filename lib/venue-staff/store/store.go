package venuestaffstore

import (
	dbmodels "venue-hiring-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	CreateStaffMember(rec dbmodels.StaffMember) (id string, err error)
	CreateCrewMember(rec dbmodels.CrewMember) (id string, err error)
	CreateContractor(rec dbmodels.TeamContractor) (id string, err error)
	ListStaffMembers(venueID string) (list []dbmodels.StaffMember, err error)
	ListCrewMembers(venueID string) (list []dbmodels.CrewMember, err error)
	ListContractors(venueID string) (list []dbmodels.TeamContractor, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateStaffMember(rec dbmodels.StaffMember) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateCrewMember(rec dbmodels.CrewMember) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateContractor(rec dbmodels.TeamContractor) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListStaffMembers(venueID string) (list []dbmodels.StaffMember, err error) {
	list = []dbmodels.StaffMember{}
	err = i.db.
		Where("venue_id = ?", venueID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCrewMembers(venueID string) (list []dbmodels.CrewMember, err error) {
	list = []dbmodels.CrewMember{}
	err = i.db.
		Where("venue_id = ?", venueID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListContractors(venueID string) (list []dbmodels.TeamContractor, err error) {
	list = []dbmodels.TeamContractor{}
	err = i.db.
		Where("venue_id = ?", venueID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
