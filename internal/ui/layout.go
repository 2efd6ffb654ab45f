package ui

// LayoutCompactWidth is the terminal width below which compact mode is used.
const LayoutCompactWidth = 80

// Fixed rows around the results viewport: header, search row, form row,
// list border (2), count line, command bar.
const chromeHeight = 7

// Column widths for the results list.
const (
	nameColumnWidth        = 28
	compactNameColumnWidth = 18
	rollColumnWidth        = 14
	branchColumnWidth      = 5
)

// Input limits.
const (
	searchCharLimit = 64
	nameCharLimit   = 64
	rollCharLimit   = 24
)
