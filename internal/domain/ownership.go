package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// AuthorizeSeller es el predicado de autorización por propiedad: el vendedor
// dueño del registro debe coincidir con el identificado en el token.
// Se usa de forma uniforme en clientes y pedidos.
func AuthorizeSeller(owner primitive.ObjectID, callerID string) error {
	if callerID == "" || owner.Hex() != callerID {
		return ErrInvalidCredentials
	}
	return nil
}
