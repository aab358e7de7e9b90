package models

import (
	"github.com/pkg/errors"
)

type EmploymentType string

const (
	EmploymentTypeFullTime   EmploymentType = "full_time"
	EmploymentTypePartTime   EmploymentType = "part_time"
	EmploymentTypeContractor EmploymentType = "contractor"
	EmploymentTypeVolunteer  EmploymentType = "volunteer"
)

func (e EmploymentType) Validate() error {
	switch e {
	case EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeContractor, EmploymentTypeVolunteer:
		return nil
	}
	return errors.Errorf("unknown employment type: %q", string(e))
}

type ExperienceLevel string

const (
	ExperienceLevelEntry  ExperienceLevel = "entry"
	ExperienceLevelMid    ExperienceLevel = "mid"
	ExperienceLevelSenior ExperienceLevel = "senior"
	ExperienceLevelLead   ExperienceLevel = "lead"
)

func (e ExperienceLevel) Validate() error {
	switch e {
	case ExperienceLevelEntry, ExperienceLevelMid, ExperienceLevelSenior, ExperienceLevelLead:
		return nil
	}
	return errors.Errorf("unknown experience level: %q", string(e))
}

type RoleType string

const (
	RoleTypeProduction   RoleType = "production"
	RoleTypeTechnical    RoleType = "technical"
	RoleTypeSecurity     RoleType = "security"
	RoleTypeHospitality  RoleType = "hospitality"
	RoleTypeFrontOfHouse RoleType = "front_of_house"
	RoleTypeManagement   RoleType = "management"
	RoleTypeOther        RoleType = "other"
)

func (r RoleType) Validate() error {
	switch r {
	case RoleTypeProduction, RoleTypeTechnical, RoleTypeSecurity, RoleTypeHospitality,
		RoleTypeFrontOfHouse, RoleTypeManagement, RoleTypeOther:
		return nil
	}
	return errors.Errorf("unknown role type: %q", string(r))
}

type SalaryUnit string

const (
	SalaryUnitHour    SalaryUnit = "hour"
	SalaryUnitDay     SalaryUnit = "day"
	SalaryUnitWeek    SalaryUnit = "week"
	SalaryUnitMonth   SalaryUnit = "month"
	SalaryUnitYear    SalaryUnit = "year"
	SalaryUnitProject SalaryUnit = "project"
)

func (s SalaryUnit) Validate() error {
	switch s {
	case SalaryUnitHour, SalaryUnitDay, SalaryUnitWeek, SalaryUnitMonth, SalaryUnitYear, SalaryUnitProject:
		return nil
	}
	return errors.Errorf("unknown salary unit: %q", string(s))
}

type FormFieldType string

const (
	FormFieldText     FormFieldType = "text"
	FormFieldTextarea FormFieldType = "textarea"
	FormFieldEmail    FormFieldType = "email"
	FormFieldPhone    FormFieldType = "phone"
	FormFieldNumber   FormFieldType = "number"
	FormFieldSelect   FormFieldType = "select"
	FormFieldCheckbox FormFieldType = "checkbox"
	FormFieldDate     FormFieldType = "date"
	FormFieldFile     FormFieldType = "file"
)

func (f FormFieldType) Validate() error {
	switch f {
	case FormFieldText, FormFieldTextarea, FormFieldEmail, FormFieldPhone, FormFieldNumber,
		FormFieldSelect, FormFieldCheckbox, FormFieldDate, FormFieldFile:
		return nil
	}
	return errors.Errorf("unknown form field type: %q", string(f))
}
