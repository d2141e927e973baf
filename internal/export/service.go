// Package export renders the candidate record set as an XLSX workbook for
// HR reviewers who work outside the search layer.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hrkit/resume-pipeline/internal/common"
	"github.com/hrkit/resume-pipeline/internal/fields"
)

// RecordLister is the read side of the record store.
type RecordLister interface {
	List() ([]fields.Record, error)
}

// Service is a tiny façade over the record store that produces XLSX bytes.
type Service struct {
	records RecordLister
	logger  *slog.Logger
}

func NewService(records RecordLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

var exportColumns = []string{
	"id",
	"ФИО",
	"Пол",
	"Телефон",
	"Email",
	"Категория образования",
	"Стаж работы (лет)",
	"Последняя должность",
	"Направление деятельности",
	"Владение языками",
	"Soft Skills",
	"Hard Skills",
	"Сертификации",
	"Личностные качества",
	"График работы",
	"Заработная плата",
	"Summary",
}

// ExportCandidatesXLSX returns an XLSX workbook (as bytes) with one row per
// candidate record, ordered by id.
func (s *Service) ExportCandidatesXLSX() ([]byte, error) {
	start := time.Now()

	recs, err := s.records.List()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Candidates"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	for i, h := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, rec := range recs {
		values := []interface{}{
			rec.ID,
			rec.FullName,
			rec.Gender,
			rec.Phone,
			rec.Email,
			rec.EducationCategory,
			rec.ExperienceYears,
			rec.LastPosition,
			rec.FieldOfActivity,
			rec.Languages,
			rec.SoftSkills,
			rec.HardSkills,
			rec.Certifications,
			rec.PersonalQualities,
			rec.WorkSchedule,
			rec.Salary,
			rec.Summary,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: serializing workbook: %v", common.ErrProcessing, err)
	}

	s.logger.Info("export.finished", "records", len(recs), "elapsed", time.Since(start).String())
	return buf.Bytes(), nil
}
