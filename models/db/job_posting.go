package dbmodels

import (
	"venue-hiring-backend/models"

	"gorm.io/datatypes"
)

const (
	JobBoardPostingsTable        = "job_board_postings"
	OrganizationJobPostingsTable = "organization_job_postings"
)

type SalaryRange struct {
	Min  *float64          `gorm:"column:salary_min"`
	Max  *float64          `gorm:"column:salary_max"`
	Unit models.SalaryUnit `gorm:"column:salary_unit;type:varchar(20)"`
}

type Organization struct {
	ID          string `gorm:"column:organization_id;type:varchar(36);index"`
	Name        string `gorm:"column:organization_name;type:varchar(255)"`
	Logo        string `gorm:"column:organization_logo"`
	Description string `gorm:"column:organization_description"`
}

type FormFieldValidation struct {
	MinLength *int     `json:"min_length,omitempty"`
	MaxLength *int     `json:"max_length,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
}

type FormField struct {
	ID         string               `json:"id"`
	Label      string               `json:"label"`
	Type       models.FormFieldType `json:"type"`
	Required   bool                 `json:"required"`
	Options    []string             `json:"options,omitempty"`
	Validation *FormFieldValidation `json:"validation,omitempty"`
}

// JobPostingFields is the validated payload shared by both listing copies.
type JobPostingFields struct {
	SalaryRange
	Organization            Organization `gorm:"embedded"`
	Title                   string       `gorm:"type:varchar(255)"`
	Description             string
	Department              string                `gorm:"type:varchar(255)"`
	Position                string                `gorm:"type:varchar(255)"`
	EmploymentType          models.EmploymentType `gorm:"type:varchar(20)"`
	Location                string                `gorm:"type:varchar(255)"`
	VenueID                 string                `gorm:"type:varchar(36);index"`
	NumberOfPositions       int
	Requirements            datatypes.JSONSlice[string]
	Responsibilities        datatypes.JSONSlice[string]
	Benefits                datatypes.JSONSlice[string]
	Skills                  datatypes.JSONSlice[string]
	ExperienceLevel         models.ExperienceLevel `gorm:"type:varchar(20)"`
	Remote                  bool
	Urgent                  bool
	RequiredCertifications  datatypes.JSONSlice[string]
	RoleType                models.RoleType `gorm:"type:varchar(50)"`
	BackgroundCheckRequired bool
	DrugTestRequired        bool
	UniformProvided         bool
	TrainingProvided        bool
	MinimumAge              *int
	Status                  models.PostingStatus `gorm:"type:varchar(20);index"`
	ApplicationForm         datatypes.JSONSlice[FormField]
	CreatedBy               string `gorm:"type:varchar(36)"`
}

type JobBoardPosting struct {
	BaseModel
	JobPostingFields
}

func (JobBoardPosting) TableName() string {
	return JobBoardPostingsTable
}

type OrganizationJobPosting struct {
	BaseModel
	JobPostingFields
	JobBoardPostingID string `gorm:"type:varchar(36);uniqueIndex"`
}

func (OrganizationJobPosting) TableName() string {
	return OrganizationJobPostingsTable
}
