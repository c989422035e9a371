package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// FileStore keeps the top scores in a plain text file, one decimal score per line.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// OpenFile returns a store backed by the text file at path.
// The file itself is created on the first save.
func OpenFile(path string) (*FileStore, error) {
	p, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: p}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// HighScores reads the file. A missing file yields an empty list.
func (s *FileStore) HighScores() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SaveRun merges the score and rewrites the whole file.
func (s *FileStore) SaveRun(run Run) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scores, err := s.load()
	if err != nil {
		return nil, err
	}
	scores = Merge(scores, run.Score)
	if err := s.write(scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// Close is a no-op; the file is never held open between calls.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) load() ([]int, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open %s: %w", s.path, err)
	}
	defer f.Close()

	scores, err := DecodeScores(f)
	if err != nil {
		return nil, fmt.Errorf("storage: %s: %w", s.path, err)
	}
	return Top(scores), nil
}

// write replaces the file atomically through a temp file in the same directory.
func (s *FileStore) write(scores []int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".high_scores-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := EncodeScores(tmp, scores); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// DecodeScores parses one decimal score per line. Blank lines are skipped.
func DecodeScores(r io.Reader) ([]int, error) {
	var scores []int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid score %q", line, text)
		}
		scores = append(scores, n)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}

// EncodeScores writes each score as a newline-terminated decimal line.
func EncodeScores(w io.Writer, scores []int) error {
	bw := bufio.NewWriter(w)
	for _, s := range scores {
		bw.WriteString(strconv.Itoa(s))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
