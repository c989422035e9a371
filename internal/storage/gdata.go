package storage

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

const (
	scoresObject   = "scores"
	scoresProperty = "top5"
)

// DataStore keeps the top scores in the per-user application data directory
// using the same line format as FileStore.
type DataStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
}

// OpenData opens the gdata storage for the given application name.
func OpenData(appName string) (*DataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open app data for %s: %w", appName, err)
	}
	return &DataStore{manager: m}, nil
}

// HighScores loads the stored list; nothing stored yet yields an empty list.
func (s *DataStore) HighScores() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SaveRun merges the score and rewrites the stored list.
func (s *DataStore) SaveRun(run Run) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scores, err := s.load()
	if err != nil {
		return nil, err
	}
	scores = Merge(scores, run.Score)

	var buf bytes.Buffer
	if err := EncodeScores(&buf, scores); err != nil {
		return nil, fmt.Errorf("storage: cannot encode scores: %w", err)
	}
	if err := s.manager.SaveObjectProp(scoresObject, scoresProperty, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("storage: cannot save scores: %w", err)
	}
	return scores, nil
}

// Close is a no-op; gdata holds no open handles.
func (s *DataStore) Close() error {
	return nil
}

func (s *DataStore) load() ([]int, error) {
	if !s.manager.ObjectPropExists(scoresObject, scoresProperty) {
		return []int{}, nil
	}
	data, err := s.manager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load scores: %w", err)
	}
	scores, err := DecodeScores(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("storage: app data: %w", err)
	}
	return Top(scores), nil
}
