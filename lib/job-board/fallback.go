package jobboardhandler

import (
	"strings"
	"time"
	"venue-hiring-backend/models"
	jobboardapimodels "venue-hiring-backend/models/api/jobboard"
)

// fallbackPostings is shown while the job board tables are not migrated yet.
func fallbackPostings() []jobboardapimodels.JobPostingView {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	minRate, maxRate := 22.0, 28.0
	return []jobboardapimodels.JobPostingView{
		{
			ID:           "mock-job-1",
			CreationDate: created,
			Degraded:     true,
			JobPostingData: jobboardapimodels.JobPostingData{
				Title:             "Sound Engineer",
				Description:       "Run front-of-house mixing for live concerts and festival stages",
				Department:        "Production",
				Position:          "Sound Engineer",
				EmploymentType:    models.EmploymentTypePartTime,
				Location:          "Nashville, TN",
				VenueID:           "mock-venue-1",
				Organization:      jobboardapimodels.Organization{ID: "mock-org-1", Name: "Riverside Live"},
				NumberOfPositions: 1,
				SalaryRange:       &jobboardapimodels.SalaryRange{Min: &minRate, Max: &maxRate, Unit: models.SalaryUnitHour},
				Requirements:      []string{"3+ years of live sound experience"},
				Responsibilities:  []string{"Mix front-of-house sound"},
				ExperienceLevel:   models.ExperienceLevelMid,
				RoleType:          models.RoleTypeTechnical,
				TrainingProvided:  true,
				Status:            models.PostingStatusPublished,
			},
		},
		{
			ID:           "mock-job-2",
			CreationDate: created,
			Degraded:     true,
			JobPostingData: jobboardapimodels.JobPostingData{
				Title:                   "Security Staff",
				Description:             "Crowd management and entrance control for weekend events",
				Department:              "Security",
				Position:                "Security Officer",
				EmploymentType:          models.EmploymentTypeContractor,
				Location:                "Austin, TX",
				VenueID:                 "mock-venue-2",
				Organization:            jobboardapimodels.Organization{ID: "mock-org-2", Name: "Acme Events"},
				NumberOfPositions:       6,
				Requirements:            []string{"Valid security license"},
				Responsibilities:        []string{"Check tickets and IDs"},
				ExperienceLevel:         models.ExperienceLevelEntry,
				Urgent:                  true,
				RoleType:                models.RoleTypeSecurity,
				BackgroundCheckRequired: true,
				UniformProvided:         true,
				Status:                  models.PostingStatusPublished,
			},
		},
	}
}

func filterFallback(list []jobboardapimodels.JobPostingView, filter jobboardapimodels.JobPostingFilter) []jobboardapimodels.JobPostingView {
	result := make([]jobboardapimodels.JobPostingView, 0, len(list))
	search := strings.ToLower(filter.Search)
	for _, item := range list {
		if filter.VenueID != "" && item.VenueID != filter.VenueID {
			continue
		}
		if filter.OrganizationID != "" && item.Organization.ID != filter.OrganizationID {
			continue
		}
		if filter.RoleType != "" && item.RoleType != filter.RoleType {
			continue
		}
		if filter.EmploymentType != "" && item.EmploymentType != filter.EmploymentType {
			continue
		}
		if filter.Urgent != nil && item.Urgent != *filter.Urgent {
			continue
		}
		if filter.Remote != nil && item.Remote != *filter.Remote {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		result = append(result, item)
	}
	return result
}
