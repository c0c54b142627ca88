package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	PasswordSet  bool      `json:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Analysis is a persisted analysis report. Breakdown, tips, keywords and the
// revamped document are stored as JSONB and round-trip through the raw
// message fields.
type Analysis struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	JobURL    string    `json:"job_url,omitempty"`
	JobTitle  string    `json:"job_title,omitempty"`
	ATS       string    `json:"ats"`
	Score     int       `json:"score"`
	Breakdown []byte    `json:"breakdown"`
	Keywords  []byte    `json:"keywords"`
	Tips      []byte    `json:"tips"`
	Revamp    []byte    `json:"revamp,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
