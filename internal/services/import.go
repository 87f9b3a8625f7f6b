package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gestor-dev/gestor/internal/models"
)

// ImportDelimiter is the field separator the project CSV export uses.
const ImportDelimiter = ';'

// csv column order: [id, name, description, initial_date, final_date, status]
const importColumns = 6

// ImportCSV reads projects from r and creates each one, linked to
// creatorID, sequentially. The first bad row stops the import; rows already
// committed stay committed, there is no compensating rollback.
func (s *ProjectService) ImportCSV(r io.Reader, creatorID uint) error {
	reader := csv.NewReader(r)
	reader.Comma = ImportDelimiter
	reader.FieldsPerRecord = -1

	// Header line carries no data.
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("reading header: %w", err)
	}

	line := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		project, err := projectFromRecord(record)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		if err := s.Create(&project, creatorID); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func projectFromRecord(record []string) (models.Project, error) {
	if len(record) < importColumns {
		return models.Project{}, fmt.Errorf("expected %d columns, got %d", importColumns, len(record))
	}

	// record[0] is the exporting system's id and is ignored; the store
	// assigns its own.
	name := strings.TrimSpace(record[1])
	if name == "" {
		return models.Project{}, fmt.Errorf("project name is empty")
	}

	initialDate, err := models.ParseDate(record[3])
	if err != nil {
		return models.Project{}, err
	}

	var finalDate *models.Date
	if raw := strings.TrimSpace(record[4]); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return models.Project{}, err
		}
		finalDate = &parsed
	}

	status := strings.TrimSpace(record[5])
	if !models.ValidStatus(status) {
		return models.Project{}, fmt.Errorf("unknown status %q", status)
	}

	return models.Project{
		Name:        name,
		Description: strings.TrimSpace(record[2]),
		InitialDate: initialDate,
		FinalDate:   finalDate,
		Status:      status,
	}, nil
}
