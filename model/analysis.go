package model

import "time"

// Analysis is every labeled chord of one source file in one key.
type Analysis struct {
	ID        string         `json:"id" dynamodbav:"PK"`
	RunID     string         `json:"run_id" dynamodbav:"run_id"`
	Source    string         `json:"source" dynamodbav:"source"`
	Key       string         `json:"key" dynamodbav:"key"`
	CreatedAt time.Time      `json:"created_at" dynamodbav:"created_at"`
	Chords    []LabeledChord `json:"chords" dynamodbav:"chords"`
}
