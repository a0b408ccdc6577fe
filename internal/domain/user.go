package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the persisted account record. PasswordHash never leaves the
// process: it is excluded from JSON and must not be logged.
type User struct {
	UserID       string    `json:"id" dynamodbav:"user_id"`
	Username     string    `json:"username" dynamodbav:"username"`
	Email        string    `json:"email" dynamodbav:"email"`
	FirstName    string    `json:"first_name" dynamodbav:"first_name"`
	LastName     string    `json:"last_name" dynamodbav:"last_name"`
	Role         string    `json:"role" dynamodbav:"role"`
	PhoneNumber  string    `json:"phone_number" dynamodbav:"phone_number"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	Enable       bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated" dynamodbav:"updated_at"`
}

// ChangePasswordRequest is the body of PUT /users/change_pass.
type ChangePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=72"`
}

// MinPasswordLength is the shortest accepted new password, in characters.
const MinPasswordLength = 6

// MaxPasswordBytes is bcrypt's input limit; longer passwords cannot be hashed.
const MaxPasswordBytes = 72
