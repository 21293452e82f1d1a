package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio. Los mensajes forman parte del contrato GraphQL
// (se devuelven tal cual al cliente), por eso van en inglés.
var (
	ErrUserAlreadyRegistered   = errors.New("User is already registered")
	ErrClientAlreadyRegistered = errors.New("Client is already registered")
	ErrInvalidCredentials      = errors.New("Invalid Credentials")
	ErrProductNotFound         = errors.New("Product not found")
	ErrClientNotFound          = errors.New("Client not found")
	ErrOrderNotFound           = errors.New("Order not found")
)

// InsufficientStockError indica que un renglón del pedido excede la existencia
// disponible. Lleva el nombre del producto para el mensaje al cliente.
type InsufficientStockError struct {
	Product string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("The article %s exceeds the available quantity", e.Product)
}
