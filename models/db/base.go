package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// KnownTables are the tables whose presence is probed before use.
var KnownTables = []string{
	JobBoardPostingsTable,
	OrganizationJobPostingsTable,
	StaffApplicationsTable,
	ProfilesTable,
	VenueTeamMembersTable,
	VenueCrewMembersTable,
	VenueTeamContractorsTable,
}
