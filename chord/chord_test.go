package chord

import (
	"testing"

	"github.com/jsphweid/harmonfunc/model"
	"github.com/stretchr/testify/assert"
)

func on(ticks uint64, note uint8) model.ReducedEvent {
	return model.ReducedEvent{AbsTicks: ticks, Offset: int64(ticks) * 1000, Note: note}
}

func off(ticks uint64, note uint8) model.ReducedEvent {
	return model.ReducedEvent{AbsTicks: ticks, Offset: int64(ticks) * 1000, Note: note, IsNoteOff: true}
}

func TestCreateChordKey(t *testing.T) {
	assert := assert.New(t)

	notes := []uint8{67, 48, 64}
	assert.Equal("48-64-67", CreateChordKey(notes))
	assert.Equal([]uint8{67, 48, 64}, notes)
	assert.Equal("", CreateChordKey(nil))
}

func TestHeld(t *testing.T) {
	assert.Equal(t, model.Notes{48, 64}, Held(OnNotes{64: true, 48: true, 50: false}))
}

func TestSliceBlockChords(t *testing.T) {
	events := []model.ReducedEvent{
		on(0, 48), on(0, 64), on(0, 67),
		off(480, 48), off(480, 64), off(480, 67),
		on(480, 53), on(480, 65), on(480, 69),
		off(960, 53), off(960, 65), off(960, 69),
	}

	chords := Slice(events)

	assert := assert.New(t)
	assert.Equal([]model.Chord{
		{AbsTicks: 0, Offset: 0, Notes: model.Notes{48, 64, 67}},
		{AbsTicks: 480, Offset: 480000, Notes: model.Notes{53, 65, 69}},
	}, chords)
}

func TestSliceArpeggio(t *testing.T) {
	events := []model.ReducedEvent{
		on(0, 48), on(100, 64), on(200, 67),
		off(300, 64),
		off(400, 48), off(400, 67),
	}

	chords := Slice(events)

	assert := assert.New(t)
	assert.Len(chords, 4)
	assert.Equal(model.Notes{48}, chords[0].Notes)
	assert.Equal(model.Notes{48, 64}, chords[1].Notes)
	assert.Equal(model.Notes{48, 64, 67}, chords[2].Notes)
	assert.Equal(model.Notes{48, 67}, chords[3].Notes)
	assert.Equal(uint64(300), chords[3].AbsTicks)
}

func TestSliceSkipsUnchangedSets(t *testing.T) {
	// a re-struck note at the same tick keeps the same set sounding
	events := []model.ReducedEvent{
		on(0, 60), on(0, 64),
		off(240, 60), on(240, 60),
		off(480, 60), off(480, 64),
	}

	chords := Slice(events)
	assert.Len(t, chords, 1)
}

func TestSliceOverlappingSameNote(t *testing.T) {
	events := []model.ReducedEvent{
		on(0, 60), on(100, 60), on(100, 67),
		off(200, 60),
		off(300, 60), off(300, 67),
	}

	chords := Slice(events)

	assert := assert.New(t)
	assert.Len(chords, 2)
	assert.Equal(model.Notes{60}, chords[0].Notes)
	assert.Equal(model.Notes{60, 67}, chords[1].Notes)
}
