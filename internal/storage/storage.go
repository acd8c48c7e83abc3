package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
)

// BoardMode controls whether pieces stay visible during a drill.
type BoardMode int

const (
	// BoardVisible keeps the pieces on screen (practice mode).
	BoardVisible BoardMode = iota
	// BoardBlindfold hides the pieces once the drill starts.
	BoardBlindfold
)

// UserPreferences stores user settings
type UserPreferences struct {
	Username     string    `json:"username"`
	PieceCount   int       `json:"piece_count"`
	DrillSeconds int       `json:"drill_seconds"`
	BoardMode    BoardMode `json:"board_mode"`
	SoundEnabled bool      `json:"sound_enabled"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:     "Player",
		PieceCount:   3,
		DrillSeconds: 60,
		BoardMode:    BoardVisible,
		SoundEnabled: true,
		LastPlayed:   time.Now(),
	}
}

// DrillStats stores accumulated drill statistics
type DrillStats struct {
	DrillsPlayed  int           `json:"drills_played"`
	TotalCorrect  int           `json:"total_correct"`
	TotalMissed   int           `json:"total_missed"`
	BestScore     int           `json:"best_score"`
	BestStreak    int           `json:"best_streak"`
	TotalPlayTime time.Duration `json:"total_play_time"`
}

// NewDrillStats returns empty drill statistics
func NewDrillStats() *DrillStats {
	return &DrillStats{}
}

// Accuracy returns the lifetime hit rate as a percentage (0-100)
func (s *DrillStats) Accuracy() float64 {
	total := s.TotalCorrect + s.TotalMissed
	if total == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(total) * 100
}

// DrillResult represents the outcome of one completed drill
type DrillResult struct {
	Score      int
	Misses     int
	BestStreak int
	Duration   time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage creates a new storage instance
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	return Open(dbDir)
}

// Open opens a storage instance rooted at the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves drill statistics
func (s *Storage) SaveStats(stats *DrillStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads drill statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*DrillStats, error) {
	stats := NewDrillStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordDrill records a completed drill and updates statistics
func (s *Storage) RecordDrill(result DrillResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.DrillsPlayed++
	stats.TotalCorrect += result.Score
	stats.TotalMissed += result.Misses
	stats.TotalPlayTime += result.Duration

	if result.Score > stats.BestScore {
		stats.BestScore = result.Score
	}
	if result.BestStreak > stats.BestStreak {
		stats.BestStreak = result.BestStreak
	}

	return s.SaveStats(stats)
}
