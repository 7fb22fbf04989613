package models

// Category represents a game category (e.g. "Strategy", "Party").
type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;unique;not null"`
	Description *string
}

// Mechanic represents a game mechanic (e.g. "Deck Building", "Worker Placement").
type Mechanic struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;unique;not null"`
	Description *string
}
