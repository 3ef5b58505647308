package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI colors for terminal output.
type Color uint8

const (
	ColorDefault     Color = iota
	ColorBrightRed         // Food
	ColorBrightGreen       // Snake body
	ColorGray              // Empty cells
)
