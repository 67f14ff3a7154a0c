package core

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const progressItem = "progress"

// LevelProgress is the persisted record for one level.
type LevelProgress struct {
	Completed bool    `json:"completed"`
	BestTime  float64 `json:"bestTime"` // seconds; 0 means no completion yet
}

// Progress stores per-level completion and best times on disk.
type Progress struct {
	manager *gdata.Manager
	Levels  map[string]LevelProgress
}

// OpenProgress loads saved progress for the given app, starting empty when
// nothing is stored yet.
func OpenProgress(appName string) (*Progress, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open progress storage: %w", err)
	}

	p := &Progress{
		manager: m,
		Levels:  make(map[string]LevelProgress),
	}

	data, err := m.LoadItem(progressItem)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &p.Levels); err != nil {
			return nil, fmt.Errorf("parse progress: %w", err)
		}
	}
	return p, nil
}

// RecordCompletion marks a level completed with the given run time and saves
// when the record improved. Returns true on a new best.
func (p *Progress) RecordCompletion(level string, seconds float64) (bool, error) {
	rec := p.Levels[level]
	improved := !rec.Completed || seconds < rec.BestTime
	if !improved {
		return false, nil
	}

	rec.Completed = true
	rec.BestTime = seconds
	p.Levels[level] = rec

	data, err := json.Marshal(p.Levels)
	if err != nil {
		return false, fmt.Errorf("encode progress: %w", err)
	}
	if err := p.manager.SaveItem(progressItem, data); err != nil {
		return false, fmt.Errorf("save progress: %w", err)
	}
	return true, nil
}
