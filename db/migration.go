package db

import (
	dbmodels "venue-hiring-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB(tx *gorm.DB) error {
	log.Info("running migrations")
	if err := MigrateModels(tx); err != nil {
		return err
	}
	if tx.Dialector.Name() == "postgres" {
		if err := tx.Exec(hireFromJobBoardFunction).Error; err != nil {
			return errors.Wrap(err, "failed to create function hire_from_job_board")
		}
	}
	log.Info("migrations finished")
	return nil
}

// MigrateModels creates the tables only, without dialect specific objects.
func MigrateModels(tx *gorm.DB) error {
	if err := tx.AutoMigrate(&dbmodels.Profile{}); err != nil {
		return errors.Wrap(err, "failed to migrate Profile")
	}
	if err := tx.AutoMigrate(&dbmodels.JobBoardPosting{}); err != nil {
		return errors.Wrap(err, "failed to migrate JobBoardPosting")
	}
	if err := tx.AutoMigrate(&dbmodels.OrganizationJobPosting{}); err != nil {
		return errors.Wrap(err, "failed to migrate OrganizationJobPosting")
	}
	if err := tx.AutoMigrate(&dbmodels.StaffApplication{}); err != nil {
		return errors.Wrap(err, "failed to migrate StaffApplication")
	}
	if err := tx.AutoMigrate(&dbmodels.StaffMember{}); err != nil {
		return errors.Wrap(err, "failed to migrate StaffMember")
	}
	if err := tx.AutoMigrate(&dbmodels.CrewMember{}); err != nil {
		return errors.Wrap(err, "failed to migrate CrewMember")
	}
	if err := tx.AutoMigrate(&dbmodels.TeamContractor{}); err != nil {
		return errors.Wrap(err, "failed to migrate TeamContractor")
	}
	return nil
}
