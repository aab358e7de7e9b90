package xlsexport

import (
	"bytes"
	workforceapimodels "venue-hiring-backend/models/api/workforce"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportWorkforce(workforce workforceapimodels.Workforce) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	SheetStaff       = "Staff"
	SheetCrew        = "Crew"
	SheetContractors = "Contractors"
)

var workerHeaders = []string{"Name", "Email", "Role", "Rate", "Rate type", "Status", "Rating", "Hired on"}

func (i impl) ExportWorkforce(workforce workforceapimodels.Workforce) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close workbook")
		}
	}()
	sheets := []struct {
		name string
		list []workforceapimodels.Worker
	}{
		{SheetStaff, workforce.Staff},
		{SheetCrew, workforce.Crew},
		{SheetContractors, workforce.Contractors},
	}
	for idx, sheet := range sheets {
		if idx == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return nil, errors.Wrap(err, "failed to rename sheet")
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, errors.Wrapf(err, "failed to create sheet %s", sheet.name)
		}
		row, err := writeHeader(f, sheet.name, 0, workerHeaders)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx header")
		}
		if len(sheet.list) != 0 {
			if _, err = writeWorkerData(f, sheet.name, sheet.list, row); err != nil {
				return nil, errors.Wrap(err, "failed to write xlsx data")
			}
		}
	}
	return f.WriteToBuffer()
}

func writeWorkerData(f *excelize.File, sheet string, list []workforceapimodels.Worker, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(workerHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.Name,
			item.Email,
			item.Role,
			item.Rate,
			item.RateType,
			item.Status,
			item.Rating,
			item.CreationDate.Format("2006-01-02"),
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
