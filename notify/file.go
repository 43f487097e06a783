package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/crosscheck-ai/crosscheck"
)

// FileSink appends each response as one JSON object per line (JSONL). The
// file is opened per write so a crash can lose at most the line being
// written, never the archive.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) OnNewResponse(r *crosscheck.Response) error {
	line, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("error encoding response: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", s.path, err)
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("error writing %s: %w", s.path, err)
	}
	return nil
}

// ReadArchive loads all responses recorded by a FileSink, oldest first.
func ReadArchive(path string) ([]*crosscheck.Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var responses []*crosscheck.Response
	decoder := json.NewDecoder(bytes.NewReader(data))
	for decoder.More() {
		var r crosscheck.Response
		if err := decoder.Decode(&r); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", path, err)
		}
		responses = append(responses, &r)
	}
	return responses, nil
}
