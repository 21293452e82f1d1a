package graphql

import (
	"github.com/gofiber/fiber/v2"
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// Handler sirve el endpoint POST /graphql sobre Fiber: construye el contexto
// autenticado del request y ejecuta la operación contra el esquema.
type Handler struct {
	schema gql.Schema
	secret string
	log    *logger.Logger
}

// NewHandler construye el handler GraphQL.
func NewHandler(schema gql.Schema, jwtSecret string, log *logger.Logger) *Handler {
	return &Handler{schema: schema, secret: jwtSecret, log: log}
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Serve ejecuta una operación GraphQL. Los errores de operación van en el
// campo errors de la respuesta (HTTP 200), como exige el protocolo GraphQL.
func (h *Handler) Serve(c *fiber.Ctx) error {
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []fiber.Map{{"message": "invalid request body"}},
		})
	}

	ctx := c.UserContext()
	if identity := IdentityFromHeader(h.secret, c.Get(fiber.HeaderAuthorization), h.log); identity != nil {
		ctx = WithIdentity(ctx, identity)
	}

	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
	for _, gerr := range result.Errors {
		h.log.Warn().Str("operation", req.OperationName).Msg(gerr.Message)
	}
	return c.JSON(result)
}
