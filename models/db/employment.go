package dbmodels

import (
	"time"
	"venue-hiring-backend/models"

	"gorm.io/datatypes"
)

const (
	VenueTeamMembersTable     = "venue_team_members"
	VenueCrewMembersTable     = "venue_crew_members"
	VenueTeamContractorsTable = "venue_team_contractors"
)

// EmploymentBase is the venue-scoped worker identity shared by all employment records.
type EmploymentBase struct {
	VenueID       string `gorm:"type:varchar(36);index"`
	UserID        string `gorm:"type:varchar(36);index"`
	ApplicationID string `gorm:"type:varchar(36);uniqueIndex"`
	Name          string `gorm:"type:varchar(255)"`
	Email         string `gorm:"type:varchar(255)"`
}

type StaffMember struct {
	BaseModel
	EmploymentBase
	Role           string                `gorm:"type:varchar(255)"`
	EmploymentType models.EmploymentType `gorm:"type:varchar(20)"`
	Status         string                `gorm:"type:varchar(20)"`
	HourlyRate     float64
	Permissions    datatypes.JSONMap
	Schedule       datatypes.JSONMap
	HireDate       time.Time
}

func (StaffMember) TableName() string {
	return VenueTeamMembersTable
}

type CrewMember struct {
	BaseModel
	EmploymentBase
	Specialty       string `gorm:"type:varchar(255)"`
	Skills          datatypes.JSONSlice[string]
	Certifications  datatypes.JSONSlice[string]
	DayRate         float64
	RateType        string `gorm:"type:varchar(20)"`
	Availability    string `gorm:"type:varchar(50)"`
	Rating          float64
	CompletedEvents int
}

func (CrewMember) TableName() string {
	return VenueCrewMembersTable
}

type TeamContractor struct {
	BaseModel
	EmploymentBase
	Role               string `gorm:"type:varchar(255)"`
	ContractType       string `gorm:"type:varchar(50)"`
	Specialization     datatypes.JSONSlice[string]
	Rate               float64
	RateType           string `gorm:"type:varchar(20)"`
	ActiveContracts    int
	CompletedContracts int
	Rating             float64
}

func (TeamContractor) TableName() string {
	return VenueTeamContractorsTable
}
