package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"carbontrack/internal/models"
)

// GORMStore is a GORM-backed implementation of UserRepository and
// FootprintRepository for deployments that want a transactional embedded
// database (SQLite) or a server (PostgreSQL) instead of the JSON file.
// ID assignment follows the same max+1 contract as the JSON store so both
// backends produce identical record shapes.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore migrates the schema and returns the store.
func NewGORMStore(db *gorm.DB) (*GORMStore, error) {
	if err := db.AutoMigrate(&models.User{}, &models.FootprintRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &GORMStore{db: db}, nil
}

// Create stores a new user with the next sequential ID.
func (s *GORMStore) Create(email, passwordHash string) (*models.User, error) {
	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.First(&existing, "email = ?", email).Error
		if err == nil {
			return fmt.Errorf("user %s: %w", email, models.ErrDuplicateEmail)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing user: %w", err)
		}

		var maxID int64
		if err := tx.Model(&models.User{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return fmt.Errorf("failed to determine next user id: %w", err)
		}

		user = models.User{
			ID:        maxID + 1,
			Email:     email,
			Password:  passwordHash,
			CreatedAt: epochSeconds(),
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email.
func (s *GORMStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// Save persists a footprint record with the next sequential ID.
func (s *GORMStore) Save(record *models.FootprintRecord) (*models.FootprintRecord, error) {
	saved := *record
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var maxID int64
		if err := tx.Model(&models.FootprintRecord{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return fmt.Errorf("failed to determine next footprint id: %w", err)
		}
		saved.ID = maxID + 1
		saved.CreatedAt = epochSeconds()
		if err := tx.Create(&saved).Error; err != nil {
			return fmt.Errorf("failed to create footprint: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetByUser retrieves all records for a user, in insertion (ID) order.
func (s *GORMStore) GetByUser(userID int64) ([]models.FootprintRecord, error) {
	records := make([]models.FootprintRecord, 0)
	if err := s.db.Order("id").Find(&records, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get footprints for user %d: %w", userID, err)
	}
	return records, nil
}

// GetByID retrieves a single record by ID.
func (s *GORMStore) GetByID(id int64) (*models.FootprintRecord, error) {
	var record models.FootprintRecord
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("footprint %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get footprint %d: %w", id, err)
	}
	return &record, nil
}
