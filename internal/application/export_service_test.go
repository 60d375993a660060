package application

import (
	"bytes"
	"testing"

	"futbolamigos/internal/models"
	"futbolamigos/pkg/sheets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeSheetsClient struct {
	created    bool
	public     bool
	cleared    []string
	lastValues [][]interface{}
}

func (c *fakeSheetsClient) CreateSpreadsheet(title string) (string, string, error) {
	c.created = true
	return "sheet-1", "https://docs.google.com/spreadsheets/d/sheet-1", nil
}

func (c *fakeSheetsClient) AddPermission(spreadsheetID, email, role string) error { return nil }

func (c *fakeSheetsClient) MakePublic(spreadsheetID string) error {
	c.public = true
	return nil
}

func (c *fakeSheetsClient) ClearRange(spreadsheetID, rangeStr string) error {
	c.cleared = append(c.cleared, spreadsheetID)
	return nil
}

func (c *fakeSheetsClient) UpdateValues(spreadsheetID, rangeStr string, values [][]interface{}) error {
	c.lastValues = values
	return nil
}

type nopLogger struct{}

func (nopLogger) Error(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Debug(format string, v ...interface{}) {}

type staticStandings struct {
	rows []models.SeasonStandingRow
}

func (s staticStandings) MatchStandings(matchID int) ([]models.MatchStandingRow, error) {
	return nil, nil
}

func (s staticStandings) SeasonStandings() ([]models.SeasonStandingRow, error) {
	return s.rows, nil
}

func seasonRows() []models.SeasonStandingRow {
	return []models.SeasonStandingRow{
		{Player: models.Player{ID: 1, Name: "Ana"}, AvgScore: 8.5, Wins: 3, Draws: 1, Losses: 0, WinRate: 0.75},
		{Player: models.Player{ID: 2, Name: "Bruno"}, AvgScore: 6.2, Wins: 1, Draws: 0, Losses: 3, WinRate: 0.25},
	}
}

func TestExcelReport(t *testing.T) {
	svc := NewExportServiceImpl(staticStandings{rows: seasonRows()}, nil, sheets.Config{}, nopLogger{})

	data, err := svc.ExcelReport()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(excelSheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)

	winRate, err := f.GetCellValue(excelSheetName, "F3")
	require.NoError(t, err)
	assert.Equal(t, "0.25", winRate)
}

func TestSyncToGoogleSheet(t *testing.T) {
	t.Run("creates the spreadsheet on first sync and writes the table", func(t *testing.T) {
		client := &fakeSheetsClient{}
		svc := NewExportServiceImpl(staticStandings{rows: seasonRows()}, client, sheets.Config{}, nopLogger{})

		url, err := svc.SyncToGoogleSheet()
		require.NoError(t, err)
		assert.Contains(t, url, "sheet-1")
		assert.True(t, client.created)
		assert.True(t, client.public)

		require.Len(t, client.lastValues, 3)
		assert.Equal(t, "Ana", client.lastValues[1][0])

		// Second sync reuses the spreadsheet.
		client.created = false
		_, err = svc.SyncToGoogleSheet()
		require.NoError(t, err)
		assert.False(t, client.created)
	})

	t.Run("uses the configured spreadsheet id", func(t *testing.T) {
		client := &fakeSheetsClient{}
		svc := NewExportServiceImpl(staticStandings{rows: seasonRows()}, client,
			sheets.Config{SpreadsheetID: "configured"}, nopLogger{})

		url, err := svc.SyncToGoogleSheet()
		require.NoError(t, err)
		assert.Contains(t, url, "configured")
		assert.False(t, client.created)
	})

	t.Run("fails without a client", func(t *testing.T) {
		svc := NewExportServiceImpl(staticStandings{}, nil, sheets.Config{}, nopLogger{})
		_, err := svc.SyncToGoogleSheet()
		assert.Error(t, err)
	})
}
