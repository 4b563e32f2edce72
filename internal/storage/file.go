package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileRecorder appends turns to a JSONL file, one object per line.
type FileRecorder struct {
	path string
	mu   sync.Mutex
}

func NewFileRecorder(path string) (*FileRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "ensure log dir")
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "init turn log")
	}
	_ = f.Close()
	return &FileRecorder{path: path}, nil
}

func (r *FileRecorder) AppendTurn(turn Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "open append")
	}
	defer func() { _ = f.Close() }()
	if err := json.NewEncoder(f).Encode(turn); err != nil {
		return errors.Wrap(err, "encode turn")
	}
	return nil
}

// LoadTurns reads the whole log back, skipping unparsable lines.
func (r *FileRecorder) LoadTurns() ([]Turn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrap(err, "open read")
	}
	defer func() { _ = f.Close() }()

	s := bufio.NewScanner(f)
	buf := make([]byte, 0, 1024*1024)
	s.Buffer(buf, 10*1024*1024)
	var turns []Turn
	for s.Scan() {
		line := s.Bytes()
		if len(line) == 0 {
			continue
		}
		var t Turn
		if err := json.Unmarshal(line, &t); err != nil {
			continue
		}
		turns = append(turns, t)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "scan turn log")
	}
	return turns, nil
}
