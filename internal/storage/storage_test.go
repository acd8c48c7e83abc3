package storage

import (
	"os"
	"testing"
	"time"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDefaults(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.Username != "Player" {
			t.Errorf("Expected username 'Player', got '%s'", prefs.Username)
		}
		if prefs.PieceCount != 3 {
			t.Errorf("Expected 3 pieces by default")
		}
		if prefs.DrillSeconds != 60 {
			t.Errorf("Expected 60 second drills by default")
		}
		if !prefs.SoundEnabled {
			t.Errorf("Expected sound enabled by default")
		}
	})

	t.Run("NewDrillStats", func(t *testing.T) {
		stats := NewDrillStats()
		if stats.DrillsPlayed != 0 {
			t.Errorf("Expected 0 drills played")
		}
		if stats.Accuracy() != 0 {
			t.Errorf("Expected 0 accuracy")
		}
	})

	t.Run("Accuracy", func(t *testing.T) {
		stats := &DrillStats{TotalCorrect: 15, TotalMissed: 5}
		if rate := stats.Accuracy(); rate != 75 {
			t.Errorf("Expected 75%% accuracy, got %.2f%%", rate)
		}
	})
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTestStorage(t)

	prefs := &UserPreferences{
		Username:     "Magnus",
		PieceCount:   5,
		DrillSeconds: 120,
		BoardMode:    BoardBlindfold,
		SoundEnabled: false,
	}
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	got, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if got.Username != "Magnus" || got.PieceCount != 5 ||
		got.DrillSeconds != 120 || got.BoardMode != BoardBlindfold || got.SoundEnabled {
		t.Errorf("loaded preferences mismatch: %+v", got)
	}
}

func TestRecordDrill(t *testing.T) {
	s := openTestStorage(t)

	results := []DrillResult{
		{Score: 12, Misses: 3, BestStreak: 6, Duration: time.Minute},
		{Score: 8, Misses: 1, BestStreak: 8, Duration: time.Minute},
	}
	for _, r := range results {
		if err := s.RecordDrill(r); err != nil {
			t.Fatalf("RecordDrill: %v", err)
		}
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.DrillsPlayed != 2 {
		t.Errorf("DrillsPlayed = %d, want 2", stats.DrillsPlayed)
	}
	if stats.BestScore != 12 {
		t.Errorf("BestScore = %d, want 12", stats.BestScore)
	}
	if stats.BestStreak != 8 {
		t.Errorf("BestStreak = %d, want 8", stats.BestStreak)
	}
	if stats.TotalCorrect != 20 || stats.TotalMissed != 4 {
		t.Errorf("totals = %d/%d, want 20/4", stats.TotalCorrect, stats.TotalMissed)
	}
	if stats.TotalPlayTime != 2*time.Minute {
		t.Errorf("TotalPlayTime = %v, want 2m", stats.TotalPlayTime)
	}
}

func TestFirstLaunch(t *testing.T) {
	s := openTestStorage(t)

	first, err := s.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if !first {
		t.Error("fresh database should report first launch")
	}

	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete: %v", err)
	}

	first, err = s.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if first {
		t.Error("first launch flag did not persist")
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}
}
