package hireprocedure

import (
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	hiringapimodels "venue-hiring-backend/models/api/hiring"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	procedureName = "hire_from_job_board"
	// raised by the procedure when the application does not exist
	noDataFoundCode = "P0002"
)

// Provider invokes the server-side procedure that accepts an application
// and creates the employment record atomically.
type Provider interface {
	Hire(applicationID string, data hiringapimodels.HireData) (ok bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Hire(applicationID string, data hiringapimodels.HireData) (ok bool, err error) {
	err = i.db.
		Raw("SELECT "+procedureName+"(?, ?, ?, ?, CAST(? AS jsonb))",
			applicationID, string(data.HireType), data.VenueID, data.Rate, data.Extra.ToJSON()).
		Scan(&ok).
		Error
	if err != nil {
		if isNoDataFound(err) {
			return false, apperrors.NewNotFoundError("application", applicationID)
		}
		return false, err
	}
	return ok, nil
}

func isNoDataFound(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == noDataFoundCode
}
