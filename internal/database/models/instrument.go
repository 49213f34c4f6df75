package models

// Instrument represents an instrument slot that schedules assign musicians to.
type Instrument struct {
	BaseModel
	Name      string `json:"name" gorm:"size:80;not null"`
	Available bool   `json:"available"`
}
