package applicationapimodels

import (
	"time"
	"venue-hiring-backend/models"
	dbmodels "venue-hiring-backend/models/db"
)

type ApplyData struct {
	CoverLetter string                 `json:"cover_letter"`
	Answers     map[string]interface{} `json:"answers"` // application form answers by field id
}

type ApplicationView struct {
	ID             string                   `json:"id"`
	JobID          string                   `json:"job_id"`
	JobTitle       string                   `json:"job_title,omitempty"`
	ApplicantID    string                   `json:"applicant_id"`
	ApplicantName  string                   `json:"applicant_name,omitempty"`
	ApplicantEmail string                   `json:"applicant_email,omitempty"`
	Status         models.ApplicationStatus `json:"status"`
	HiredAs        models.HireType          `json:"hired_as,omitempty"`
	HireDate       *time.Time               `json:"hire_date,omitempty"`
	FinalRate      *float64                 `json:"final_rate,omitempty"`
	CoverLetter    string                   `json:"cover_letter,omitempty"`
	Answers        map[string]interface{}   `json:"answers,omitempty"`
	CreationDate   time.Time                `json:"creation_date"`
}

func ApplicationConvert(rec dbmodels.StaffApplication) ApplicationView {
	return ApplicationView{
		ID:             rec.ID,
		JobID:          rec.JobID,
		JobTitle:       rec.JobTitle(),
		ApplicantID:    rec.ApplicantID,
		ApplicantName:  rec.ApplicantName(),
		ApplicantEmail: rec.ApplicantEmail(),
		Status:         rec.Status,
		HiredAs:        rec.HiredAs,
		HireDate:       rec.HireDate,
		FinalRate:      rec.FinalRate,
		CoverLetter:    rec.CoverLetter,
		Answers:        rec.Answers,
		CreationDate:   rec.CreatedAt,
	}
}
