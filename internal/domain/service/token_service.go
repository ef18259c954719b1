package service

import (
	"starfund/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a StarFund bearer token.
type Claims struct {
	UserID int64
	Email  string
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating bearer
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed bearer token for a given identity.
	GenerateToken(userID int64, email string, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
