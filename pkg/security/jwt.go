package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Claims carrega apenas a identidade do sujeito (email) e os campos
// registrados. Perfis não são embutidos no token: a cada requisição o guard
// resolve a pessoa no banco, então revogar um perfil tem efeito imediato.
type Claims struct {
	jwt.RegisteredClaims
}

// KeyManager emite e verifica tokens JWT assinados com HMAC-SHA256.
type KeyManager struct {
	secretKey []byte
	ttl       time.Duration
	logger    *zap.Logger
}

// NewKeyManager cria um gerenciador de tokens. A chave precisa ter ao menos
// 32 bytes.
func NewKeyManager(secretKey []byte, ttl time.Duration, logger *zap.Logger) (*KeyManager, error) {
	if len(secretKey) < 32 {
		return nil, errors.New("jwt secret key muito curta")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &KeyManager{
		secretKey: secretKey,
		ttl:       ttl,
		logger:    logger,
	}, nil
}

// GenerateToken emite um token para o email informado, expirando em now+TTL.
func (km *KeyManager) GenerateToken(email string) (string, error) {
	now := time.Now()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(km.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(km.secretKey)
	if err != nil {
		km.logger.Error("falha ao gerar token JWT", zap.Error(err))
		return "", err
	}

	return tokenString, nil
}

// VerifyToken valida assinatura e expiração e retorna o sujeito (email).
// A expiração precisa estar estritamente no futuro.
func (km *KeyManager) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return km.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.New("token expirado")
		}
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", errors.New("token inválido")
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return "", errors.New("token inválido")
	}
	if !claims.ExpiresAt.Time.After(time.Now()) {
		return "", errors.New("token expirado")
	}

	return claims.Subject, nil
}

// TTL retorna a duração configurada dos tokens.
func (km *KeyManager) TTL() time.Duration {
	return km.ttl
}
