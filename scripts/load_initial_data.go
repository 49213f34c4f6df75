package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"worship-roster-backend/internal/config"
	"worship-roster-backend/internal/database"
	"worship-roster-backend/internal/database/models"
	"worship-roster-backend/internal/logger"
	"worship-roster-backend/internal/storage"

	"github.com/google/uuid"
	gormlogger "gorm.io/gorm/logger"
)

// RosterExport mirrors the on-disk JSON document of the file backend, so a
// data file written by one backend can be imported into the other.
type RosterExport struct {
	Singers     []models.Singer     `json:"singers"`
	Musicians   []models.Musician   `json:"musicians"`
	Instruments []models.Instrument `json:"instruments"`
	Songs       []models.Song       `json:"songs"`
	Schedule    []models.Schedule   `json:"schedule"`
	Impediments []models.Impediment `json:"impediments"`
	Users       []models.User       `json:"users"`
}

func main() {
	dataFile := flag.String("data", "scripts/data/roster.json", "path to the roster export to import")
	flag.Parse()

	log.Println("🚀 Loading initial roster data...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open the configured storage backend with retry (for dockerized Postgres startup)
	store, err := openStoreWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	export, err := readExport(*dataFile)
	if err != nil {
		log.Fatalf("Failed to read data file: %v", err)
	}

	if err := loadExport(store, export); err != nil {
		log.Fatalf("Failed to load roster data: %v", err)
	}

	if err := storage.SeedDefaults(store); err != nil {
		log.Fatalf("Failed to seed defaults: %v", err)
	}

	log.Println("✅ Initial roster data loaded successfully!")
}

// openStoreWithRetry opens the configured backend, waiting for Postgres
// readiness when that backend is selected.
func openStoreWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (storage.Store, error) {
	appLog := logger.New()

	if cfg.StorageBackend == config.StorageBackendFile {
		return storage.NewFileStore(cfg.DataFile, appLog)
	}

	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return storage.NewGormStore(db, appLog), nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func readExport(path string) (*RosterExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var export RosterExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &export, nil
}

func loadExport(store storage.Store, export *RosterExport) error {
	singers, err := loadCollection(store.Singers(), export.Singers)
	if err != nil {
		return fmt.Errorf("failed to load singers: %w", err)
	}
	log.Printf("📋 Singers: %d created, %d total", singers, len(export.Singers))

	musicians, err := loadCollection(store.Musicians(), export.Musicians)
	if err != nil {
		return fmt.Errorf("failed to load musicians: %w", err)
	}
	log.Printf("📋 Musicians: %d created, %d total", musicians, len(export.Musicians))

	instruments, err := loadCollection(store.Instruments(), export.Instruments)
	if err != nil {
		return fmt.Errorf("failed to load instruments: %w", err)
	}
	log.Printf("📋 Instruments: %d created, %d total", instruments, len(export.Instruments))

	songs, err := loadCollection(store.Songs(), export.Songs)
	if err != nil {
		return fmt.Errorf("failed to load songs: %w", err)
	}
	log.Printf("📋 Songs: %d created, %d total", songs, len(export.Songs))

	schedules, err := loadCollection(store.Schedules(), export.Schedule)
	if err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}
	log.Printf("📋 Schedules: %d created, %d total", schedules, len(export.Schedule))

	impediments, err := loadCollection(store.Impediments(), export.Impediments)
	if err != nil {
		return fmt.Errorf("failed to load impediments: %w", err)
	}
	log.Printf("📋 Impediments: %d created, %d total", impediments, len(export.Impediments))

	users, err := loadCollection(store.Users(), export.Users)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	log.Printf("📋 Users: %d created, %d total", users, len(export.Users))

	return nil
}

// loadCollection upserts records that are not present yet. Records whose id
// already exists in the target are left untouched, so reruns are safe.
func loadCollection[T any](records storage.Records[T], incoming []T) (int, error) {
	created := 0
	for i := range incoming {
		rec := incoming[i]
		if id := entityID(&rec); id != nil {
			if _, ok := records.Find(*id); ok {
				continue
			}
		}
		if _, err := records.Upsert(&rec); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func entityID[T any](rec *T) *uuid.UUID {
	if e, ok := any(rec).(models.Entity); ok {
		if id := e.EntityID(); id != uuid.Nil {
			return &id
		}
	}
	return nil
}
