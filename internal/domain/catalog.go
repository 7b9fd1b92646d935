package domain

import "time"

// Professional represents a professional clients can book appointments with
type Professional struct {
	ID         int64
	FullName   string
	Speciality string
	CreatedAt  time.Time
}

// Service represents a bookable service
// DurationMinutes определяет шаг генерации слотов для этой услуги
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	CreatedAt       time.Time
}
