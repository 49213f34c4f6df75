package service

import (
	"worship-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// RemovedLabel is rendered wherever a stored id no longer resolves to a
// record. Dangling references are expected after deletes and never an error.
const RemovedLabel = "Removido"

// UnknownSingerLabel is used on lyric sheets, which historically distinguish
// an unknown performer from a removed roster entry.
const UnknownSingerLabel = "Desconhecido"

// The resolvers below are pure: they take a snapshot of the referenced
// collection, index it by id once, and answer lookups in constant time for
// the rest of the render cycle.

// SingerLabels indexes singers by id, mapping to their display name.
func SingerLabels(singers []models.Singer) map[uuid.UUID]string {
	labels := make(map[uuid.UUID]string, len(singers))
	for i := range singers {
		labels[singers[i].ID] = singers[i].FullName()
	}
	return labels
}

// MusicianLabels indexes musicians by id, mapping to their name.
func MusicianLabels(musicians []models.Musician) map[uuid.UUID]string {
	labels := make(map[uuid.UUID]string, len(musicians))
	for i := range musicians {
		labels[musicians[i].ID] = musicians[i].Name
	}
	return labels
}

// InstrumentLabels indexes instruments by id, mapping to their name.
func InstrumentLabels(instruments []models.Instrument) map[uuid.UUID]string {
	labels := make(map[uuid.UUID]string, len(instruments))
	for i := range instruments {
		labels[instruments[i].ID] = instruments[i].Name
	}
	return labels
}

// SongTitles indexes songs by id, mapping to their title.
func SongTitles(songs []models.Song) map[uuid.UUID]string {
	titles := make(map[uuid.UUID]string, len(songs))
	for i := range songs {
		titles[songs[i].ID] = songs[i].Title
	}
	return titles
}

// Resolve returns the label for id, or RemovedLabel for a dangling reference.
func Resolve(labels map[uuid.UUID]string, id uuid.UUID) string {
	if label, ok := labels[id]; ok {
		return label
	}
	return RemovedLabel
}
