package graphql

import (
	"context"
	"strings"

	"github.com/jhoicas/Ventas-api/pkg/jwt"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// Identity es la identidad autenticada del request, decodificada del token.
type Identity struct {
	ID       string
	Name     string
	LastName string
	Email    string
}

type ctxKey struct{}

// WithIdentity devuelve un contexto con la identidad autenticada.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext devuelve la identidad del request, si la hay.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}

// IdentityFromHeader construye la identidad desde el header Authorization
// (formato "Bearer <token>"). Header ausente o token inválido/expirado
// producen contexto anónimo (nil), nunca un error: el fallo se difiere a los
// chequeos de autorización de cada operación. El fallo de verificación sí se
// registra en el log.
func IdentityFromHeader(secret, header string, log *logger.Logger) *Identity {
	if header == "" {
		return nil
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return nil
	}
	claims, err := jwt.Parse(secret, token)
	if err != nil {
		log.Warn().Err(err).Msg("token inválido, request continúa anónimo")
		return nil
	}
	return &Identity{
		ID:       claims.ID,
		Name:     claims.Name,
		LastName: claims.LastName,
		Email:    claims.Email,
	}
}
