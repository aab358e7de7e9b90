package jobboardapimodels

import (
	"fmt"
	"strings"
	"time"
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	"venue-hiring-backend/models"
	apimodels "venue-hiring-backend/models/api"
	dbmodels "venue-hiring-backend/models/db"
)

const (
	minDescriptionLength = 10
	minApplicantAge      = 18
)

type Organization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
}

type SalaryRange struct {
	Min  *float64          `json:"min,omitempty"`
	Max  *float64          `json:"max,omitempty"`
	Unit models.SalaryUnit `json:"unit,omitempty"`
}

type JobPostingData struct {
	Title                   string                 `json:"title"`
	Description             string                 `json:"description"`
	Department              string                 `json:"department"`
	Position                string                 `json:"position"`
	EmploymentType          models.EmploymentType  `json:"employment_type"`
	Location                string                 `json:"location"`
	VenueID                 string                 `json:"venue_id"`
	Organization            Organization           `json:"organization"`
	NumberOfPositions       int                    `json:"number_of_positions"`
	SalaryRange             *SalaryRange           `json:"salary_range,omitempty"`
	Requirements            []string               `json:"requirements"`
	Responsibilities        []string               `json:"responsibilities"`
	Benefits                []string               `json:"benefits"`
	Skills                  []string               `json:"skills"`
	ExperienceLevel         models.ExperienceLevel `json:"experience_level"`
	Remote                  bool                   `json:"remote"`
	Urgent                  bool                   `json:"urgent"`
	RequiredCertifications  []string               `json:"required_certifications"`
	RoleType                models.RoleType        `json:"role_type"`
	BackgroundCheckRequired bool                   `json:"background_check_required"`
	DrugTestRequired        bool                   `json:"drug_test_required"`
	UniformProvided         bool                   `json:"uniform_provided"`
	TrainingProvided        bool                   `json:"training_provided"`
	MinimumAge              *int                   `json:"minimum_age,omitempty"`
	Status                  models.PostingStatus   `json:"status,omitempty"` // draft when empty
	ApplicationForm         []dbmodels.FormField   `json:"application_form,omitempty"`
}

// Validate checks the whole payload and reports every violated field at once.
func (d JobPostingData) Validate() error {
	vErr := apperrors.NewValidationError()
	if strings.TrimSpace(d.Title) == "" {
		vErr.Add("title", "title is required")
	}
	if len([]rune(strings.TrimSpace(d.Description))) < minDescriptionLength {
		vErr.Add("description", fmt.Sprintf("description must be at least %d characters", minDescriptionLength))
	}
	if d.NumberOfPositions <= 0 {
		vErr.Add("number_of_positions", "number of positions must be positive")
	}
	if countNonEmpty(d.Requirements) == 0 {
		vErr.Add("requirements", "at least one requirement is required")
	}
	if countNonEmpty(d.Responsibilities) == 0 {
		vErr.Add("responsibilities", "at least one responsibility is required")
	}
	if d.MinimumAge != nil && *d.MinimumAge < minApplicantAge {
		vErr.Add("minimum_age", fmt.Sprintf("minimum age must be at least %d", minApplicantAge))
	}
	if d.SalaryRange != nil {
		if d.SalaryRange.Min != nil && *d.SalaryRange.Min < 0 {
			vErr.Add("salary_range.min", "salary minimum must not be negative")
		}
		if d.SalaryRange.Max != nil && *d.SalaryRange.Max < 0 {
			vErr.Add("salary_range.max", "salary maximum must not be negative")
		}
		if d.SalaryRange.Min != nil && d.SalaryRange.Max != nil && *d.SalaryRange.Max < *d.SalaryRange.Min {
			vErr.Add("salary_range.max", "salary maximum must not be less than minimum")
		}
		if d.SalaryRange.Unit != "" {
			if err := d.SalaryRange.Unit.Validate(); err != nil {
				vErr.Add("salary_range.unit", err.Error())
			}
		}
	}
	if d.VenueID == "" {
		vErr.Add("venue_id", "venue is required")
	}
	if d.Organization.ID == "" {
		vErr.Add("organization.id", "organization is required")
	}
	if d.EmploymentType != "" {
		if err := d.EmploymentType.Validate(); err != nil {
			vErr.Add("employment_type", err.Error())
		}
	}
	if d.ExperienceLevel != "" {
		if err := d.ExperienceLevel.Validate(); err != nil {
			vErr.Add("experience_level", err.Error())
		}
	}
	if d.RoleType != "" {
		if err := d.RoleType.Validate(); err != nil {
			vErr.Add("role_type", err.Error())
		}
	}
	if d.Status != "" {
		if err := d.Status.Validate(); err != nil {
			vErr.Add("status", err.Error())
		}
	}
	for idx, field := range d.ApplicationForm {
		if field.Label == "" {
			vErr.Add(fmt.Sprintf("application_form[%d].label", idx), "form field label is required")
		}
		if err := field.Type.Validate(); err != nil {
			vErr.Add(fmt.Sprintf("application_form[%d].type", idx), err.Error())
		}
		if field.Type == models.FormFieldSelect && len(field.Options) == 0 {
			vErr.Add(fmt.Sprintf("application_form[%d].options", idx), "select field requires options")
		}
	}
	return vErr.ErrOrNil()
}

// GetStatus returns the requested status, draft when none was given.
func (d JobPostingData) GetStatus() models.PostingStatus {
	if d.Status == "" {
		return models.PostingStatusDraft
	}
	return d.Status
}

func (d JobPostingData) ToFields(userID string) dbmodels.JobPostingFields {
	fields := dbmodels.JobPostingFields{
		Organization: dbmodels.Organization{
			ID:          d.Organization.ID,
			Name:        d.Organization.Name,
			Logo:        d.Organization.Logo,
			Description: d.Organization.Description,
		},
		Title:                   strings.TrimSpace(d.Title),
		Description:             strings.TrimSpace(d.Description),
		Department:              d.Department,
		Position:                d.Position,
		EmploymentType:          d.EmploymentType,
		Location:                d.Location,
		VenueID:                 d.VenueID,
		NumberOfPositions:       d.NumberOfPositions,
		Requirements:            nonEmpty(d.Requirements),
		Responsibilities:        nonEmpty(d.Responsibilities),
		Benefits:                nonEmpty(d.Benefits),
		Skills:                  nonEmpty(d.Skills),
		ExperienceLevel:         d.ExperienceLevel,
		Remote:                  d.Remote,
		Urgent:                  d.Urgent,
		RequiredCertifications:  nonEmpty(d.RequiredCertifications),
		RoleType:                d.RoleType,
		BackgroundCheckRequired: d.BackgroundCheckRequired,
		DrugTestRequired:        d.DrugTestRequired,
		UniformProvided:         d.UniformProvided,
		TrainingProvided:        d.TrainingProvided,
		MinimumAge:              d.MinimumAge,
		Status:                  d.GetStatus(),
		ApplicationForm:         d.ApplicationForm,
		CreatedBy:               userID,
	}
	if d.SalaryRange != nil {
		fields.SalaryRange = dbmodels.SalaryRange{
			Min:  d.SalaryRange.Min,
			Max:  d.SalaryRange.Max,
			Unit: d.SalaryRange.Unit,
		}
	}
	return fields
}

type JobPostingView struct {
	JobPostingData
	ID                    string    `json:"id"`
	OrganizationPostingID string    `json:"organization_posting_id,omitempty"`
	CreatedBy             string    `json:"created_by,omitempty"`
	CreationDate          time.Time `json:"creation_date"`
	Degraded              bool      `json:"degraded,omitempty"` // not persisted, schema is missing
}

func JobPostingConvert(rec dbmodels.JobBoardPosting, orgPostingID string) JobPostingView {
	f := rec.JobPostingFields
	view := JobPostingView{
		JobPostingData: JobPostingData{
			Title:          f.Title,
			Description:    f.Description,
			Department:     f.Department,
			Position:       f.Position,
			EmploymentType: f.EmploymentType,
			Location:       f.Location,
			VenueID:        f.VenueID,
			Organization: Organization{
				ID:          f.Organization.ID,
				Name:        f.Organization.Name,
				Logo:        f.Organization.Logo,
				Description: f.Organization.Description,
			},
			NumberOfPositions:       f.NumberOfPositions,
			Requirements:            f.Requirements,
			Responsibilities:        f.Responsibilities,
			Benefits:                f.Benefits,
			Skills:                  f.Skills,
			ExperienceLevel:         f.ExperienceLevel,
			Remote:                  f.Remote,
			Urgent:                  f.Urgent,
			RequiredCertifications:  f.RequiredCertifications,
			RoleType:                f.RoleType,
			BackgroundCheckRequired: f.BackgroundCheckRequired,
			DrugTestRequired:        f.DrugTestRequired,
			UniformProvided:         f.UniformProvided,
			TrainingProvided:        f.TrainingProvided,
			MinimumAge:              f.MinimumAge,
			Status:                  f.Status,
			ApplicationForm:         f.ApplicationForm,
		},
		ID:                    rec.ID,
		OrganizationPostingID: orgPostingID,
		CreatedBy:             f.CreatedBy,
		CreationDate:          rec.CreatedAt,
	}
	if f.SalaryRange.Min != nil || f.SalaryRange.Max != nil || f.SalaryRange.Unit != "" {
		view.SalaryRange = &SalaryRange{
			Min:  f.SalaryRange.Min,
			Max:  f.SalaryRange.Max,
			Unit: f.SalaryRange.Unit,
		}
	}
	return view
}

type JobPostingFilter struct {
	apimodels.Pagination
	Search         string                 `json:"search"`
	VenueID        string                 `json:"venue_id"`
	OrganizationID string                 `json:"organization_id"`
	RoleType       models.RoleType        `json:"role_type"`
	EmploymentType models.EmploymentType  `json:"employment_type"`
	Urgent         *bool                  `json:"urgent"`
	Remote         *bool                  `json:"remote"`
	Statuses       []models.PostingStatus `json:"statuses"` // published when empty
}

func (f JobPostingFilter) GetStatuses() []models.PostingStatus {
	if len(f.Statuses) == 0 {
		return []models.PostingStatus{models.PostingStatusPublished}
	}
	return f.Statuses
}

type StatusChangeRequest struct {
	Status models.PostingStatus `json:"status"`
}

func (r StatusChangeRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		vErr := apperrors.NewValidationError()
		vErr.Add("status", err.Error())
		return vErr
	}
	return nil
}

func countNonEmpty(list []string) int {
	count := 0
	for _, item := range list {
		if strings.TrimSpace(item) != "" {
			count++
		}
	}
	return count
}

func nonEmpty(list []string) []string {
	result := make([]string, 0, len(list))
	for _, item := range list {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
