package security

import (
	"errors"
	"time"

	"github.com/rarango1992/GPAC/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateToken signs a token carrying the user id and admin flag.
func GenerateToken(userID string, adminPrivileges bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"admin":   adminPrivileges,
		"exp":     time.Now().Add(config.AppConfig.JWTExp).Unix(),
		"iat":     time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

func GetUserIDFromClaims(claims map[string]interface{}) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetAdminFromClaims(claims map[string]interface{}) (bool, error) {
	admin, ok := claims["admin"].(bool)
	if !ok {
		return false, errors.New("admin claim is missing or not a boolean")
	}
	return admin, nil
}
