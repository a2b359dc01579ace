package model

type LabelRequestBody struct {
	Key       string   `json:"key"`
	Pitches   []string `json:"pitches"`
	Notes     Notes    `json:"notes"`
	Verbosity string   `json:"verbosity"`
}

type LabelResponse struct {
	Label   string       `json:"label"`
	Degrees []string     `json:"degrees"`
	Notes   []NoteDetail `json:"notes"`
}

type NoteDetail struct {
	Pitch    string `json:"pitch"`
	Degree   string `json:"degree"`
	Key      string `json:"key"`
	Function string `json:"function"`
	Role     string `json:"role"`
	Label    string `json:"label"`
}

type AnalyzeResponse struct {
	ID     string         `json:"id"`
	Key    string         `json:"key"`
	Chords []LabeledChord `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
