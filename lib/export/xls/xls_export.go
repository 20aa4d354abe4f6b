package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	applicationapimodels "talent-park-backend/models/api/application"
)

type Provider interface {
	ExportApplicationList(list []applicationapimodels.ApplicationView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Name", "Contacts", "Address", "Job title", "Cover letter", "Resume", "Match score"}

func (i impl) ExportApplicationList(list []applicationapimodels.ApplicationView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		if err = writeApplicationData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	f.SetSheetName(sheet, "Applications")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []applicationapimodels.ApplicationView, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.JobSeekerName,
			item.JobSeekerPhone + "\r" + item.JobSeekerEmail,
			item.JobSeekerAddress,
			item.JobTitle,
			item.CoverLetter,
			item.ResumeURL,
			item.MatchScore,
		}
		for col, value := range values {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return row, err
	}
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err = f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, 25); err != nil {
		return row, err
	}
	for idx, value := range headers {
		if err = writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return err
	}
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}
