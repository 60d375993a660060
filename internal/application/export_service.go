package application

import (
	"fmt"
	"sync"

	"futbolamigos/pkg/sheets"

	"github.com/xuri/excelize/v2"
)

type ExportServiceImpl struct {
	standings    StandingsService
	sheetsClient sheets.Client
	logger       Logger

	mu            sync.Mutex
	spreadsheetID string
	ownerEmail    string
}

func NewExportServiceImpl(standings StandingsService, sheetsClient sheets.Client, cfg sheets.Config, logger Logger) *ExportServiceImpl {
	return &ExportServiceImpl{
		standings:     standings,
		sheetsClient:  sheetsClient,
		logger:        logger,
		spreadsheetID: cfg.SpreadsheetID,
		ownerEmail:    cfg.OwnerEmail,
	}
}

var exportHeaders = []string{"Player", "Avg score", "Wins", "Draws", "Losses", "Win rate"}

// ExcelReport renders the season table as an .xlsx workbook.
func (s *ExportServiceImpl) ExcelReport() ([]byte, error) {
	rows, err := s.standings.SeasonStandings()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.NewSheet(excelSheetName)
	f.DeleteSheet("Sheet1")

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(excelSheetName, cell, h)
	}

	row := 2
	for _, st := range rows {
		f.SetCellValue(excelSheetName, fmt.Sprintf("A%d", row), st.Player.Name)
		f.SetCellValue(excelSheetName, fmt.Sprintf("B%d", row), st.AvgScore)
		f.SetCellValue(excelSheetName, fmt.Sprintf("C%d", row), st.Wins)
		f.SetCellValue(excelSheetName, fmt.Sprintf("D%d", row), st.Draws)
		f.SetCellValue(excelSheetName, fmt.Sprintf("E%d", row), st.Losses)
		f.SetCellValue(excelSheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("%.2f", st.WinRate))
		row++
	}

	f.SetColWidth(excelSheetName, "A", "A", 20)
	f.SetColWidth(excelSheetName, "B", "F", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SyncToGoogleSheet replaces the shared sheet's contents with the current
// season table and returns its URL. The spreadsheet is created on first use
// when none is configured.
func (s *ExportServiceImpl) SyncToGoogleSheet() (string, error) {
	if s.sheetsClient == nil {
		return "", fmt.Errorf("google sheets client is not configured")
	}

	id, err := s.ensureSpreadsheet()
	if err != nil {
		return "", err
	}

	rows, err := s.standings.SeasonStandings()
	if err != nil {
		return "", err
	}

	values := make([][]interface{}, 0, len(rows)+1)
	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	values = append(values, header)

	for _, st := range rows {
		values = append(values, []interface{}{
			st.Player.Name,
			st.AvgScore,
			st.Wins,
			st.Draws,
			st.Losses,
			fmt.Sprintf("%.2f", st.WinRate),
		})
	}

	if err := s.sheetsClient.ClearRange(id, "A1:Z1000"); err != nil {
		s.logger.Error("failed to clear sheet: %v", err)
	}

	if err := s.sheetsClient.UpdateValues(id, "A1", values); err != nil {
		return "", fmt.Errorf("failed to update standings: %w", err)
	}

	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", id), nil
}

func (s *ExportServiceImpl) ensureSpreadsheet() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spreadsheetID != "" {
		return s.spreadsheetID, nil
	}

	id, _, err := s.sheetsClient.CreateSpreadsheet("Fútbol Amigos")
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	if s.ownerEmail != "" {
		if err := s.sheetsClient.AddPermission(id, s.ownerEmail, "writer"); err != nil {
			s.logger.Error("failed to add owner permission: %v", err)
		}
	}
	if err := s.sheetsClient.MakePublic(id); err != nil {
		s.logger.Error("failed to make spreadsheet public: %v", err)
	}

	s.spreadsheetID = id
	return id, nil
}
