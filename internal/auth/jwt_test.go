package auth_test

import (
	"testing"

	"github.com/helenHardy/HEHA/internal/auth"
	"github.com/helenHardy/HEHA/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "clave-de-prueba-de-al-menos-32-caracteres!"

func testUser() *models.User {
	return &models.User{
		ID:    7,
		Name:  "Carla",
		Email: "carla@heha.bo",
		Role:  models.RoleCajero,
	}
}

// TestGenerateToken_ClaimsCompletos: el token lleva id, email y rol, y se
// verifica con el mismo secreto.
func TestGenerateToken_ClaimsCompletos(t *testing.T) {
	tokenStr, err := auth.GenerateToken(testSecret, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims := &auth.JWTCustomClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "carla@heha.bo", claims.Email)
	assert.Equal(t, models.RoleCajero, claims.Role)
	assert.NotNil(t, claims.ExpiresAt, "El token siempre expira")
}

// TestGenerateToken_SecretoDistintoNoVerifica: un token firmado con otro
// secreto se rechaza al verificar.
func TestGenerateToken_SecretoDistintoNoVerifica(t *testing.T) {
	tokenStr, err := auth.GenerateToken("otro-secreto-tambien-de-32-caracteres!!", testUser())
	require.NoError(t, err)

	claims := &auth.JWTCustomClaims{}
	_, err = jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	assert.Error(t, err, "La firma con otro secreto no debe verificar")
}
