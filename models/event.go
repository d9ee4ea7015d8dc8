package models

import "time"

type Event struct {
	Id          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateStart   time.Time `json:"date_start"`
	DateEnd     time.Time `json:"date_end"`
}
