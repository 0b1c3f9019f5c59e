// Package results keeps a history of finished matches on disk.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pong/internal/pong"
)

const (
	configDirName = "pong"
	resultsFN     = "results.json"
)

// Record is one finished match.
type Record struct {
	Winner   string    `json:"winner"`
	Player1  string    `json:"player1"`
	Player2  string    `json:"player2"`
	Score1   int       `json:"score1"`
	Score2   int       `json:"score2"`
	PlayedAt time.Time `json:"played_at"`
}

// FilePath returns the results file, creating its directory if needed.
// PONG_CONFIG_DIR overrides the default of UserConfigDir()/pong.
func FilePath() (string, error) {
	dir := os.Getenv("PONG_CONFIG_DIR")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("locating config dir: %w", err)
		}
		dir = filepath.Join(base, configDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, resultsFN), nil
}

// Save appends rec to the history and rewrites the JSON array atomically.
func Save(rec *Record) error {
	if rec == nil {
		return errors.New("nil record")
	}
	if strings.TrimSpace(rec.Winner) == "" {
		return errors.New("record has no winner")
	}
	if rec.Score1 < 0 || rec.Score2 < 0 {
		return errors.New("scores must be non-negative")
	}
	path, err := FilePath()
	if err != nil {
		return err
	}
	history := Load()
	history = append(history, *rec)

	tmp := path + ".tmp"
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load returns every stored record in the order they were saved. A missing
// or unreadable file yields nil.
func Load() []Record {
	path, err := FilePath()
	if err != nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var arr []Record
	if err := json.Unmarshal(data, &arr); err == nil {
		return arr
	}
	// A single object is accepted too
	var obj Record
	if err := json.Unmarshal(data, &obj); err == nil && obj.Winner != "" {
		return []Record{obj}
	}
	return nil
}

// Wins counts the stored matches won by name, ignoring case and surrounding space.
func Wins(name string) int {
	name = strings.TrimSpace(name)
	n := 0
	for _, r := range Load() {
		if strings.EqualFold(strings.TrimSpace(r.Winner), name) {
			n++
		}
	}
	return n
}

// FromSnapshot builds the record of a finished match.
func FromSnapshot(s pong.Snapshot, playedAt time.Time) *Record {
	return &Record{
		Winner:   s.Winner,
		Player1:  s.Scores[0].Name,
		Player2:  s.Scores[1].Name,
		Score1:   s.Scores[0].Points,
		Score2:   s.Scores[1].Points,
		PlayedAt: playedAt,
	}
}
