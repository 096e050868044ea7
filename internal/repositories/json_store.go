package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"carbontrack/internal/models"
)

// JSONStore persists users and footprint records in a single JSON document:
// {"users": [...], "carbon_footprints": [...]}. The whole file is rewritten
// on every mutation, serialized through one mutex; this matches the
// single-writer assumption. Every write keeps a .bak copy of the
// last-known-good document, verifies the new write by reading it back, and
// restores the backup if verification fails.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

type dataFile struct {
	Users            []models.User            `json:"users"`
	CarbonFootprints []models.FootprintRecord `json:"carbon_footprints"`
}

// NewJSONStore opens (or initializes) the store at path.
func NewJSONStore(path string) (*JSONStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	s := &JSONStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(&dataFile{
			Users:            []models.User{},
			CarbonFootprints: []models.FootprintRecord{},
		}); err != nil {
			return nil, fmt.Errorf("failed to initialize data file: %w", err)
		}
	}
	return s, nil
}

func (s *JSONStore) backupPath() string { return s.path + ".bak" }

// load reads and parses the document. A corrupt file is recovered from the
// backup when one exists; if that also fails the error is surfaced rather
// than silently resetting the data.
func (s *JSONStore) load() (*dataFile, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var d dataFile
	if err := json.Unmarshal(raw, &d); err != nil {
		backup, bakErr := os.ReadFile(s.backupPath())
		if bakErr != nil {
			return nil, fmt.Errorf("data file corrupt and no backup available: %w", err)
		}
		var restored dataFile
		if bakErr := json.Unmarshal(backup, &restored); bakErr != nil {
			return nil, fmt.Errorf("data file and backup both corrupt: %w", err)
		}
		if writeErr := os.WriteFile(s.path, backup, 0o644); writeErr != nil {
			return nil, fmt.Errorf("failed to restore data file from backup: %w", writeErr)
		}
		return &restored, nil
	}
	return &d, nil
}

// write persists the document: back up the current file, write the new
// bytes, then read them back and verify. On verification failure the backup
// is restored and the error surfaced so the caller knows nothing was saved.
func (s *JSONStore) write(d *dataFile) error {
	buf, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}

	hadBackup := false
	if current, err := os.ReadFile(s.path); err == nil {
		if err := os.WriteFile(s.backupPath(), current, 0o644); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
		hadBackup = true
	}

	writeErr := os.WriteFile(s.path, buf, 0o644)
	if writeErr == nil {
		readBack, err := os.ReadFile(s.path)
		if err == nil && bytes.Equal(readBack, buf) {
			return nil
		}
		writeErr = fmt.Errorf("write verification failed")
	}

	if hadBackup {
		if backup, err := os.ReadFile(s.backupPath()); err == nil {
			if restoreErr := os.WriteFile(s.path, backup, 0o644); restoreErr != nil {
				return fmt.Errorf("failed to persist data and to restore backup: %w", restoreErr)
			}
		}
	}
	return fmt.Errorf("failed to persist data: %w", writeErr)
}

// Create stores a new user. Email comparison is an exact, case-sensitive
// match against existing users.
func (s *JSONStore) Create(email, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, u := range d.Users {
		if u.Email == email {
			return nil, fmt.Errorf("user %s: %w", email, models.ErrDuplicateEmail)
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	user := models.User{
		ID:        maxID + 1,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: epochSeconds(),
	}
	d.Users = append(d.Users, user)
	if err := s.write(d); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the user with the given email.
func (s *JSONStore) GetByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range d.Users {
		if d.Users[i].Email == email {
			u := d.Users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
}

// Save persists a footprint record, assigning the next sequential ID and
// the current timestamp.
func (s *JSONStore) Save(record *models.FootprintRecord) (*models.FootprintRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, f := range d.CarbonFootprints {
		if f.ID > maxID {
			maxID = f.ID
		}
	}

	saved := *record
	saved.ID = maxID + 1
	saved.CreatedAt = epochSeconds()
	d.CarbonFootprints = append(d.CarbonFootprints, saved)
	if err := s.write(d); err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetByUser returns the user's records in storage order.
func (s *JSONStore) GetByUser(userID int64) ([]models.FootprintRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	records := make([]models.FootprintRecord, 0)
	for _, f := range d.CarbonFootprints {
		if f.UserID == userID {
			records = append(records, f)
		}
	}
	return records, nil
}

// GetByID returns one footprint record.
func (s *JSONStore) GetByID(id int64) (*models.FootprintRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range d.CarbonFootprints {
		if d.CarbonFootprints[i].ID == id {
			f := d.CarbonFootprints[i]
			return &f, nil
		}
	}
	return nil, fmt.Errorf("footprint %d: %w", id, models.ErrNotFound)
}

func epochSeconds() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
