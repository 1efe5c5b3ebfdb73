package model

// User is a registered account. Users are created on registration and never updated.
// A user owns zero or more tasks through Task.UserID.
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:100"`
	Email string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	// Password holds the bcrypt hash. GET /users has always returned it, so it stays
	// serialized.
	Password string `json:"password" gorm:"size:255"`
}
