package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestKeyManager(t *testing.T) *KeyManager {
	km, err := NewKeyManager(testSecret, time.Hour, zaptest.NewLogger(t))
	require.NoError(t, err)
	return km
}

func TestNewKeyManagerChaveCurta(t *testing.T) {
	_, err := NewKeyManager([]byte("curta"), time.Hour, zaptest.NewLogger(t))
	require.Error(t, err)
}

func TestGenerateAndVerifyToken(t *testing.T) {
	km := newTestKeyManager(t)

	token, err := km.GenerateToken("bill@mail.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := km.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "bill@mail.com", email)
}

func TestVerifyTokenExpirado(t *testing.T) {
	km := newTestKeyManager(t)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "bill@mail.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expirado, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = km.VerifyToken(expirado)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expirado")
}

func TestVerifyTokenAssinaturaInvalida(t *testing.T) {
	km := newTestKeyManager(t)

	outro, err := NewKeyManager([]byte("ffffffffffffffffffffffffffffffff"), time.Hour, zaptest.NewLogger(t))
	require.NoError(t, err)

	token, err := outro.GenerateToken("bill@mail.com")
	require.NoError(t, err)

	_, err = km.VerifyToken(token)
	require.Error(t, err)
}

func TestVerifyTokenSemSubject(t *testing.T) {
	km := newTestKeyManager(t)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = km.VerifyToken(token)
	require.Error(t, err)
}

func TestVerifyTokenLixo(t *testing.T) {
	km := newTestKeyManager(t)

	_, err := km.VerifyToken("nao.e.um.token")
	require.Error(t, err)
}
