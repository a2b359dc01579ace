package model

type Notes = []uint8

// Chord is a vertical slice of a MIDI file: the notes sounding from AbsTicks on.
type Chord struct {
	AbsTicks uint64
	// microseconds from the start of the file
	Offset int64
	Notes  Notes
}

type ReducedEvent struct {
	AbsTicks  uint64
	Offset    int64
	IsNoteOff bool
	Note      uint8
}

// LabeledChord is a Chord after analysis.
type LabeledChord struct {
	AbsTicks     uint64   `json:"abs_ticks" dynamodbav:"abs_ticks"`
	Offset       float64  `json:"offset" dynamodbav:"offset"`
	Notes        Notes    `json:"notes" dynamodbav:"notes"`
	Pitches      []string `json:"pitches" dynamodbav:"pitches"`
	Degrees      []string `json:"degrees" dynamodbav:"degrees"`
	Label        string   `json:"label" dynamodbav:"label"`
	VerboseLabel string   `json:"verbose_label" dynamodbav:"verbose_label"`
}
