package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		Expiration:  time.Hour,
		TokenIssuer: "academy-api",
	})
}

func testAdmin() *models.User {
	return &models.User{ID: "2b6e1a6c-2f8f-4a59-9a0c-1d1f5bb1e7a1", Email: "a@x.com", Role: models.RoleAdmin}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken(testAdmin())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, testAdmin().ID, claims.UserID)
	assert.Equal(t, testAdmin().ID, claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "academy-api", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, time.Hour, svc.Expiration())
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateToken(testAdmin())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Tampered(t *testing.T) {
	svc := newTestService()
	token, err := svc.GenerateToken(testAdmin())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecretAndAlgorithm(t *testing.T) {
	other := NewJWTService(JWTConfig{SecretKey: "other", Expiration: time.Hour})
	token, err := other.GenerateToken(testAdmin())
	require.NoError(t, err)

	_, err = newTestService().ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = newTestService().ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("   ")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashing(t *testing.T) {
	digest, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", digest)

	assert.True(t, CheckPassword(digest, "correct horse"))
	assert.False(t, CheckPassword(digest, "wrong"))
	assert.False(t, CheckPassword("not-a-digest", "correct horse"))
}
