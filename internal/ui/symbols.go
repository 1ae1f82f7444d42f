package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "◉" // Operation completed
	SymbolFail     = "✕" // Operation failed
	SymbolPending  = "◇" // Not yet started
	SymbolProgress = "◆" // In progress
	SymbolComplete = "●" // Spinner finished
	SymbolSkipped  = "⊖" // Skipped, e.g. dry run
	SymbolWarning  = "⚠"
)
