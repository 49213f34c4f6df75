package service

import (
	"testing"

	"worship-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSingerLabelsUseFullName(t *testing.T) {
	withLast := models.Singer{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "Ana", LastName: "Souza"}
	withoutLast := models.Singer{BaseModel: models.BaseModel{ID: uuid.New()}, FirstName: "Bia"}

	labels := SingerLabels([]models.Singer{withLast, withoutLast})

	assert.Equal(t, "Ana Souza", labels[withLast.ID])
	assert.Equal(t, "Bia", labels[withoutLast.ID])
}

func TestResolveFallsBackToRemovedLabel(t *testing.T) {
	id := uuid.New()
	labels := map[uuid.UUID]string{id: "Guitarra"}

	assert.Equal(t, "Guitarra", Resolve(labels, id))
	assert.Equal(t, RemovedLabel, Resolve(labels, uuid.New()))
	assert.Equal(t, RemovedLabel, Resolve(nil, id))
}

func TestMusicianAndInstrumentAndSongLabels(t *testing.T) {
	musician := models.Musician{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "João"}
	instrument := models.Instrument{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Baixo"}
	song := models.Song{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Oceans"}

	assert.Equal(t, "João", MusicianLabels([]models.Musician{musician})[musician.ID])
	assert.Equal(t, "Baixo", InstrumentLabels([]models.Instrument{instrument})[instrument.ID])
	assert.Equal(t, "Oceans", SongTitles([]models.Song{song})[song.ID])
}
