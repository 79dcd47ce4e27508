package structs

import (
	"time"

	"github.com/google/uuid"
)

// AuthClaims are the decoded JWT claims of an admin session.
type AuthClaims struct {
	Sub   uuid.UUID
	Email string
	Role  string
	Iat   time.Time
	Exp   time.Time
	Jti   uuid.UUID
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}
