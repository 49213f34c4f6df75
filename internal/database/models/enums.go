package models

// PersonType tells which collection an impediment's PersonID points into.
type PersonType string

const (
	PersonTypeSinger   PersonType = "singer"
	PersonTypeMusician PersonType = "musician"
)

// IsValid checks if the PersonType is valid
func (p PersonType) IsValid() bool {
	switch p {
	case PersonTypeSinger, PersonTypeMusician:
		return true
	}
	return false
}
