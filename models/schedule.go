package models

import "time"

// DaySchedule is the weekly template entry for one weekday.
type DaySchedule struct {
	Day       string `bson:"day" json:"day"`
	IsOpen    bool   `bson:"isOpen" json:"isOpen"`
	OpenTime  string `bson:"openTime" json:"openTime"`
	CloseTime string `bson:"closeTime" json:"closeTime"`
}

// WeeklySchedule is the single active schedule document, always holding
// exactly seven entries in canonical Monday-first order.
type WeeklySchedule struct {
	ID        string        `bson:"id" json:"id"`
	Days      []DaySchedule `bson:"days" json:"days"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// ClosureDate marks a specific date as fully closed regardless of the
// weekly schedule. Never mutated, only created and deleted.
type ClosureDate struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"`
	Reason    string    `bson:"reason" json:"reason"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
