package models

import (
	"github.com/pkg/errors"
)

type PostingStatus string

const (
	PostingStatusDraft     PostingStatus = "draft"
	PostingStatusPublished PostingStatus = "published"
	PostingStatusPaused    PostingStatus = "paused"
	PostingStatusClosed    PostingStatus = "closed"
)

func (s PostingStatus) Validate() error {
	switch s {
	case PostingStatusDraft, PostingStatusPublished, PostingStatusPaused, PostingStatusClosed:
		return nil
	}
	return errors.Errorf("unknown posting status: %q", string(s))
}

// CanChangeTo reports whether a posting in status s may move to next.
func (s PostingStatus) CanChangeTo(next PostingStatus) bool {
	switch s {
	case PostingStatusDraft:
		return next == PostingStatusPublished || next == PostingStatusClosed
	case PostingStatusPublished:
		return next == PostingStatusPaused || next == PostingStatusClosed
	case PostingStatusPaused:
		return next == PostingStatusPublished || next == PostingStatusClosed
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type HireType string

const (
	HireTypeStaff HireType = "staff"
	HireTypeCrew  HireType = "crew"
	HireTypeTeam  HireType = "team"
)

func (h HireType) Validate() error {
	switch h {
	case HireTypeStaff, HireTypeCrew, HireTypeTeam:
		return nil
	}
	return errors.Errorf("unknown hire type: %q", string(h))
}

const (
	StaffStatusActive         = "active"
	ContractTypeFreelance     = "freelance"
	RateTypeDaily             = "daily"
	RateTypeProject           = "project"
	CrewAvailabilityAvailable = "available"
)
