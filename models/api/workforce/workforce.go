package workforceapimodels

import (
	"time"
	dbmodels "venue-hiring-backend/models/db"
)

type Worker struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"` // staff, crew or team
	UserID        string    `json:"user_id"`
	ApplicationID string    `json:"application_id,omitempty"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Rate          float64   `json:"rate"`
	RateType      string    `json:"rate_type"`
	Status        string    `json:"status,omitempty"`
	Rating        float64   `json:"rating"`
	CreationDate  time.Time `json:"creation_date"`
}

type Workforce struct {
	VenueID     string   `json:"venue_id"`
	Staff       []Worker `json:"staff"`
	Crew        []Worker `json:"crew"`
	Contractors []Worker `json:"contractors"`
}

func StaffConvert(rec dbmodels.StaffMember) Worker {
	return Worker{
		ID:            rec.ID,
		Kind:          "staff",
		UserID:        rec.UserID,
		ApplicationID: rec.ApplicationID,
		Name:          rec.Name,
		Email:         rec.Email,
		Role:          rec.Role,
		Rate:          rec.HourlyRate,
		RateType:      "hourly",
		Status:        rec.Status,
		CreationDate:  rec.CreatedAt,
	}
}

func CrewConvert(rec dbmodels.CrewMember) Worker {
	return Worker{
		ID:            rec.ID,
		Kind:          "crew",
		UserID:        rec.UserID,
		ApplicationID: rec.ApplicationID,
		Name:          rec.Name,
		Email:         rec.Email,
		Role:          rec.Specialty,
		Rate:          rec.DayRate,
		RateType:      rec.RateType,
		Status:        rec.Availability,
		Rating:        rec.Rating,
		CreationDate:  rec.CreatedAt,
	}
}

func ContractorConvert(rec dbmodels.TeamContractor) Worker {
	return Worker{
		ID:            rec.ID,
		Kind:          "team",
		UserID:        rec.UserID,
		ApplicationID: rec.ApplicationID,
		Name:          rec.Name,
		Email:         rec.Email,
		Role:          rec.Role,
		Rate:          rec.Rate,
		RateType:      rec.RateType,
		Status:        rec.ContractType,
		Rating:        rec.Rating,
		CreationDate:  rec.CreatedAt,
	}
}
