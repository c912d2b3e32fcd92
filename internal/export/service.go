package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/aferraro/badge-scanner/internal/repository"
)

// Service is a tiny façade over the contact repository that produces XLSX
// bytes for exports.
type Service struct {
	contactsRepo repository.ContactRepository
	groupsRepo   repository.GroupRepository
	logger       *slog.Logger
}

func NewService(contactsRepo repository.ContactRepository, groupsRepo repository.GroupRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contactsRepo: contactsRepo, groupsRepo: groupsRepo, logger: logger}
}

// ExportContactsXLSX returns an XLSX workbook (as bytes) for the contacts
// matching the filter, plus the number of exported rows. A nil groupID
// exports across all groups.
func (s *Service) ExportContactsXLSX(ctx context.Context, groupID *uuid.UUID, tag string) ([]byte, int, error) {
	start := time.Now()

	rows, err := s.contactsRepo.List(ctx, repository.ContactFilter{GroupID: groupID, Tag: tag})
	if err != nil {
		return nil, 0, fmt.Errorf("query contacts: %w", err)
	}

	// Resolve group names once so each row can show a label, not a UUID.
	groupNames := make(map[uuid.UUID]string)
	if groups, err := s.groupsRepo.List(ctx); err == nil {
		for _, g := range groups {
			groupNames[g.ID] = g.Name
		}
	}

	f := excelize.NewFile()
	const sheet = "Contacts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Title",
		"Company",
		"Email",
		"Phone",
		"Group",
		"Tags",
		"Source",
		"Added",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.Name)
		write(2, strDeref(c.Title))
		write(3, strDeref(c.Company))
		write(4, strDeref(c.Email))
		write(5, strDeref(c.Phone))

		groupName := ""
		if c.GroupID != nil {
			groupName = groupNames[*c.GroupID]
		}
		write(6, groupName)
		write(7, strings.Join(c.Tags, ", "))
		write(8, c.Source)
		write(9, c.CreatedAt.UTC().Format("2006-01-02"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 24) // name
	_ = f.SetColWidth(sheet, "B", "C", 28) // title, company
	_ = f.SetColWidth(sheet, "D", "D", 32) // email
	_ = f.SetColWidth(sheet, "E", "E", 18) // phone
	_ = f.SetColWidth(sheet, "F", "G", 20) // group, tags
	_ = f.SetColWidth(sheet, "H", "I", 12) // source, added

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(rows), nil
}

func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
