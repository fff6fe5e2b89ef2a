package model

// Export is a table rendered for download: column labels plus the display text of every row.
type Export struct {
	Table   string
	Headers []string
	Rows    [][]string
	// Total is the number of matching records; Rows holds fewer when Truncated.
	Total     int
	Truncated bool
}
