// Package ui provides terminal output components for the icp CLI.
//
// Styles are built with Lip Gloss from a small fixed palette:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (amber)  - Warnings and skipped items
//	ColorInfo      (cyan)   - Keys and identifiers
//	ColorMuted     (gray)   - Secondary text, timing info
//
// SetColorMode applies the output.color setting; DisableColors backs --no-color.
//
// A Spinner wraps each networked operation:
//
//	s := ui.NewSpinner("Starting backend")
//	s.SetWriter(os.Stderr)
//	s.Start()
//	err := op()
//	if err != nil { s.Fail() } else { s.Success() }
//
// RenderFields lays out a resolved plan as aligned key/value lines.
package ui
