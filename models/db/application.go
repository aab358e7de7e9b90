package dbmodels

import (
	"time"
	"venue-hiring-backend/models"

	"gorm.io/datatypes"
)

const (
	StaffApplicationsTable = "staff_applications"
	ProfilesTable          = "profiles"
)

// Profile is the public profile of a platform user.
type Profile struct {
	BaseModel
	FullName  string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(50)"`
	AvatarURL string
}

func (Profile) TableName() string {
	return ProfilesTable
}

type StaffApplication struct {
	BaseModel
	JobID       string                   `gorm:"type:varchar(36);index"`
	Job         *JobBoardPosting         `gorm:"foreignKey:JobID"`
	ApplicantID string                   `gorm:"type:varchar(36);index"`
	Applicant   *Profile                 `gorm:"foreignKey:ApplicantID"`
	Status      models.ApplicationStatus `gorm:"type:varchar(20);index"`
	HiredAs     models.HireType          `gorm:"type:varchar(20)"`
	HireDate    *time.Time
	FinalRate   *float64
	CoverLetter string
	Answers     datatypes.JSONMap
}

func (StaffApplication) TableName() string {
	return StaffApplicationsTable
}

func (a StaffApplication) IsHired() bool {
	return a.HiredAs != ""
}

func (a StaffApplication) ApplicantName() string {
	if a.Applicant == nil {
		return ""
	}
	return a.Applicant.FullName
}

func (a StaffApplication) ApplicantEmail() string {
	if a.Applicant == nil {
		return ""
	}
	return a.Applicant.Email
}

func (a StaffApplication) JobTitle() string {
	if a.Job == nil {
		return ""
	}
	return a.Job.Title
}
