package models

// User defines the user model based on the 'users' table
type User struct {
	ID           int64    `json:"id" db:"id" example:"1"`                          // Unique identifier for the user
	Email        string   `json:"email" db:"email" example:"a.student@gmail.com"`  // Login email, stored lowercase
	Role         RoleType `json:"role" db:"role" example:"student"`                // User's role (student or staff)
	PasswordHash string   `json:"-" db:"password_hash"`                            // Hashed password (excluded from JSON)
}
