package models

import "time"

// User carries one point counter per weekday, Monday first. Counters
// only move through atomic increments and the weekly reset.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	PointMon     int       `gorm:"not null;default:0"`
	PointTue     int       `gorm:"not null;default:0"`
	PointWed     int       `gorm:"not null;default:0"`
	PointThu     int       `gorm:"not null;default:0"`
	PointFri     int       `gorm:"not null;default:0"`
	PointSat     int       `gorm:"not null;default:0"`
	PointSun     int       `gorm:"not null;default:0"`
	LastReset    time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}
