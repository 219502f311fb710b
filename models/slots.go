package models

// Slot is one candidate start time in a day's booking grid.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
