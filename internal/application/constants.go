package application

const (
	// Score scale for a single rating.
	ScoreMin     = 1
	ScoreMax     = 10
	ScoreDefault = 7

	// Excel report configuration
	excelSheetName = "Season"
)
