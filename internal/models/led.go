package models

// LedColor names the states the indicator circles can show. The view
// maps these to actual colors.
type LedColor string

const (
	LedGray   LedColor = "gray"
	LedGreen  LedColor = "green"
	LedYellow LedColor = "yellow"
	LedRed    LedColor = "red"
)
