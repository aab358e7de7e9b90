package hiringapimodels

import (
	"encoding/json"
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	"venue-hiring-backend/models"
)

// HireExtra holds optional fields applied to the created employment record.
// Only the fields relevant for the chosen hire type are used.
type HireExtra struct {
	Role           string                 `json:"role,omitempty"`
	Permissions    map[string]interface{} `json:"permissions,omitempty"`
	Schedule       map[string]interface{} `json:"schedule,omitempty"`
	Specialty      string                 `json:"specialty,omitempty"`
	Skills         []string               `json:"skills,omitempty"`
	Certifications []string               `json:"certifications,omitempty"`
	Availability   string                 `json:"availability,omitempty"`
	Specialization []string               `json:"specialization,omitempty"`
	ContractType   string                 `json:"contract_type,omitempty"`
}

func (e HireExtra) ToJSON() string {
	body, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(body)
}

type HireData struct {
	HireType models.HireType `json:"hire_type"`
	VenueID  string          `json:"venue_id"`
	Rate     float64         `json:"rate"`
	Extra    HireExtra       `json:"extra"`
}

func (d HireData) Validate() error {
	vErr := apperrors.NewValidationError()
	if err := d.HireType.Validate(); err != nil {
		vErr.Add("hire_type", err.Error())
	}
	if d.VenueID == "" {
		vErr.Add("venue_id", "venue is required")
	}
	if d.Rate < 0 {
		vErr.Add("rate", "rate must not be negative")
	}
	return vErr.ErrOrNil()
}

type HireResult struct {
	ApplicationID string          `json:"application_id"`
	HiredAs       models.HireType `json:"hired_as"`
	Hired         bool            `json:"hired"`
	Atomic        bool            `json:"atomic"`              // completed by the server-side procedure
	RecordID      string          `json:"record_id,omitempty"` // known on the fallback path only
}
