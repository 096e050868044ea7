package repositories

import "carbontrack/internal/models"

// FootprintRepository defines the interface for footprint record access.
// Records are append-only: there is no update or delete.
type FootprintRepository interface {
	// Save assigns the next sequential ID (max existing + 1, or 1 when the
	// store is empty) and the current timestamp, persists the record, and
	// returns the completed copy.
	Save(record *models.FootprintRecord) (*models.FootprintRecord, error)

	// GetByUser returns all records owned by the user, in storage order.
	GetByUser(userID int64) ([]models.FootprintRecord, error)

	// GetByID returns one record, or models.ErrNotFound.
	GetByID(id int64) (*models.FootprintRecord, error)
}
