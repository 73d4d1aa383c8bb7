package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"megapos_terminal/internal/config"
	"megapos_terminal/internal/models"
)

func GenerateJWT(user models.UserAccount) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.UserID,
		"full_name": user.FullName,
		"guest":     user.IsGuest(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret()))
}
