package security

import "os"

// ResolveJWTSecret resolve a chave de assinatura: a variável de ambiente
// JWT_SECRET tem precedência sobre o valor do arquivo de configuração.
func ResolveJWTSecret(configured string) []byte {
	if env := os.Getenv("JWT_SECRET"); env != "" {
		return []byte(env)
	}
	return []byte(configured)
}
