package models

// Singer represents a vocalist on the roster. Singers can also lead a
// schedule; schedule rows reference them by id only.
type Singer struct {
	BaseModel
	FirstName    string `json:"firstName" gorm:"size:80;not null"`
	LastName     string `json:"lastName" gorm:"size:80"`
	Contact      string `json:"contact" gorm:"size:120"`
	PreferredKey string `json:"preferredKey" gorm:"size:10"`
}

// FullName returns the display name used in tables and exports.
func (s *Singer) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
