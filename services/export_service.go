package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fadhlanhapp/random-inator/models"
	"github.com/fadhlanhapp/random-inator/utils"
)

const summarySheetName = "Summary"

// ExportService handles Excel export of the inator catalog
type ExportService struct {
	catalog *models.Catalog
	now     func() time.Time
}

// NewExportService creates a new export service
func NewExportService(catalog *models.Catalog) *ExportService {
	return &ExportService{
		catalog: catalog,
		now:     time.Now,
	}
}

// ExportCatalog generates an Excel file listing every inator, raw and formatted
func (s *ExportService) ExportCatalog(request models.FormatRequest) (*excelize.File, string, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %v", err)
	}

	if err := s.createSummarySheet(f, headerStyle); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}

	for _, category := range s.catalog.Categories() {
		if err := s.createCategorySheet(f, category, request, headerStyle); err != nil {
			return nil, "", fmt.Errorf("failed to create sheet for %s: %v", category, err)
		}
	}

	// Delete the default sheet
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("failed to delete default sheet: %v", err)
	}

	filename := fmt.Sprintf("%s-%s.xlsx", utils.ExportFilePrefix, s.now().Format(utils.ExportDateLayout))
	return f, filename, nil
}

// createSummarySheet lists each category with its inator count
func (s *ExportService) createSummarySheet(f *excelize.File, headerStyle int) error {
	index, err := f.NewSheet(summarySheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	if err := setHeaders(f, summarySheetName, []string{"Category", "Inators"}, headerStyle); err != nil {
		return err
	}

	row := 2
	for _, category := range s.catalog.Categories() {
		names, _ := s.catalog.Names(category)
		if err := setRow(f, summarySheetName, row, category, len(names)); err != nil {
			return err
		}
		row++
	}
	if err := setRow(f, summarySheetName, row, "Total", s.catalog.Total()); err != nil {
		return err
	}

	return f.SetColWidth(summarySheetName, "A", "B", 22)
}

// createCategorySheet lists the inators of one category
func (s *ExportService) createCategorySheet(f *excelize.File, category string, request models.FormatRequest, headerStyle int) error {
	sheetName := utils.CleanSheetName(category)
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	if err := setHeaders(f, sheetName, []string{"#", "Inator", "Formatted"}, headerStyle); err != nil {
		return err
	}

	names, _ := s.catalog.Names(category)
	for i, name := range names {
		if err := setRow(f, sheetName, i+2, i+1, name, ApplyFormat(name, request)); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 6); err != nil {
		return err
	}
	return f.SetColWidth(sheetName, "B", "C", 40)
}

func setHeaders(f *excelize.File, sheetName string, headers []string, style int) error {
	values := make([]interface{}, len(headers))
	for i, header := range headers {
		values[i] = header
	}
	if err := setRow(f, sheetName, 1, values...); err != nil {
		return err
	}
	last := fmt.Sprintf("%s1", string(rune('A'+len(headers)-1)))
	return f.SetCellStyle(sheetName, "A1", last, style)
}

// setRow writes values into consecutive columns of a row, starting at column A
func setRow(f *excelize.File, sheetName string, row int, values ...interface{}) error {
	for i, value := range values {
		cell := fmt.Sprintf("%s%d", string(rune('A'+i)), row)
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}
