package models

// User represents a registered account. IDs are sequential integers
// assigned by the store; Password holds the bcrypt hash, never plaintext.
type User struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Email     string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string  `json:"password" gorm:"type:varchar(255)"`
	CreatedAt float64 `json:"created_at"`
}

// TableName keeps the GORM table name aligned with the persisted layout.
func (User) TableName() string { return "users" }
