package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(path string) (*smf.SMF, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file %s: %w", path, err)
	}
	return Parse(dat)
}

// Read parses a whole SMF from r.
func Read(r io.Reader) (*smf.SMF, error) {
	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading midi data: %w", err)
	}
	return Parse(dat)
}

func Parse(dat []byte) (s *smf.SMF, e error) {
	// the parser can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fmt.Errorf("error parsing midi data: %v", r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi data: %w", err)
	}
	return res, nil
}

func IsMidiPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return (ext == ".mid" || ext == ".midi") && len(filepath.Base(path)) > len(ext)
}
