package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// NewSchema declara el esquema GraphQL completo (tipos, queries y mutaciones)
// y enruta cada operación a su método del Resolver. La forma de los tipos es
// el contrato público del API.
func NewSchema(r *Resolver) (gql.Schema, error) {
	orderStateEnum := gql.NewEnum(gql.EnumConfig{
		Name: "OrderState",
		Values: gql.EnumValueConfigMap{
			"PENDING":   &gql.EnumValueConfig{Value: entity.OrderStatePending},
			"COMPLETED": &gql.EnumValueConfig{Value: entity.OrderStateCompleted},
			"CANCELLED": &gql.EnumValueConfig{Value: entity.OrderStateCancelled},
		},
	})

	userType := gql.NewObject(gql.ObjectConfig{
		Name: "User",
		Fields: gql.Fields{
			"id":       &gql.Field{Type: gql.ID},
			"name":     &gql.Field{Type: gql.String},
			"lastname": &gql.Field{Type: gql.String},
			"email":    &gql.Field{Type: gql.String},
			"created":  &gql.Field{Type: gql.String},
		},
	})

	tokenType := gql.NewObject(gql.ObjectConfig{
		Name: "Token",
		Fields: gql.Fields{
			"token": &gql.Field{Type: gql.String},
		},
	})

	productType := gql.NewObject(gql.ObjectConfig{
		Name: "Product",
		Fields: gql.Fields{
			"id":        &gql.Field{Type: gql.ID},
			"name":      &gql.Field{Type: gql.String},
			"existence": &gql.Field{Type: gql.Int},
			"price":     &gql.Field{Type: gql.Float},
			"created":   &gql.Field{Type: gql.String},
		},
	})

	clientType := gql.NewObject(gql.ObjectConfig{
		Name: "Client",
		Fields: gql.Fields{
			"id":       &gql.Field{Type: gql.ID},
			"name":     &gql.Field{Type: gql.String},
			"lastname": &gql.Field{Type: gql.String},
			"company":  &gql.Field{Type: gql.String},
			"phone":    &gql.Field{Type: gql.String},
			"seller":   &gql.Field{Type: gql.ID},
			"email":    &gql.Field{Type: gql.String},
		},
	})

	orderGroupType := gql.NewObject(gql.ObjectConfig{
		Name: "OrderGroup",
		Fields: gql.Fields{
			"id":     &gql.Field{Type: gql.ID},
			"amount": &gql.Field{Type: gql.Int},
			"name":   &gql.Field{Type: gql.String},
			"price":  &gql.Field{Type: gql.Float},
		},
	})

	orderType := gql.NewObject(gql.ObjectConfig{
		Name: "Order",
		Fields: gql.Fields{
			"id":    &gql.Field{Type: gql.ID},
			"order": &gql.Field{Type: gql.NewList(orderGroupType)},
			"total": &gql.Field{Type: gql.Float},
			"client": &gql.Field{
				Type:    clientType,
				Resolve: r.ResolveOrderClient,
			},
			"seller":  &gql.Field{Type: gql.ID},
			"created": &gql.Field{Type: gql.String},
			"state":   &gql.Field{Type: orderStateEnum},
		},
	})

	topClientType := gql.NewObject(gql.ObjectConfig{
		Name: "TopClient",
		Fields: gql.Fields{
			"total":  &gql.Field{Type: gql.Float},
			"client": &gql.Field{Type: gql.NewList(clientType)},
		},
	})

	topSellerType := gql.NewObject(gql.ObjectConfig{
		Name: "TopSeller",
		Fields: gql.Fields{
			"total":  &gql.Field{Type: gql.Float},
			"seller": &gql.Field{Type: gql.NewList(userType)},
		},
	})

	userInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "UserInput",
		Fields: gql.InputObjectConfigFieldMap{
			"name":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"lastname": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"email":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"password": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		},
	})

	authenticateInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "AuthenticateInput",
		Fields: gql.InputObjectConfigFieldMap{
			"email":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"password": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		},
	})

	productInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "ProductInput",
		Fields: gql.InputObjectConfigFieldMap{
			"name":      &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"existence": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Int)},
			"price":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Float)},
		},
	})

	clientInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "ClientInput",
		Fields: gql.InputObjectConfigFieldMap{
			"name":     &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"lastname": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"company":  &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"email":    &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
			"phone":    &gql.InputObjectFieldConfig{Type: gql.String},
		},
	})

	orderProductInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "OrderProductInput",
		Fields: gql.InputObjectConfigFieldMap{
			"id":     &gql.InputObjectFieldConfig{Type: gql.ID},
			"amount": &gql.InputObjectFieldConfig{Type: gql.Int},
			"name":   &gql.InputObjectFieldConfig{Type: gql.String},
			"price":  &gql.InputObjectFieldConfig{Type: gql.Float},
		},
	})

	orderInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "OrderInput",
		Fields: gql.InputObjectConfigFieldMap{
			"order":  &gql.InputObjectFieldConfig{Type: gql.NewList(orderProductInput)},
			"total":  &gql.InputObjectFieldConfig{Type: gql.Float},
			"client": &gql.InputObjectFieldConfig{Type: gql.ID},
			"state":  &gql.InputObjectFieldConfig{Type: orderStateEnum},
		},
	})

	idArg := gql.FieldConfigArgument{
		"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
	}

	queryType := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			// Users
			"getUser": &gql.Field{Type: userType, Resolve: r.GetUser},

			// Products
			"getProducts": &gql.Field{Type: gql.NewList(productType), Resolve: r.GetProducts},
			"getProduct":  &gql.Field{Type: productType, Args: idArg, Resolve: r.GetProduct},

			// Clients
			"getClients":       &gql.Field{Type: gql.NewList(clientType), Resolve: r.GetClients},
			"getSellerClients": &gql.Field{Type: gql.NewList(clientType), Resolve: r.GetSellerClients},
			"getClient":        &gql.Field{Type: clientType, Args: idArg, Resolve: r.GetClient},

			// Orders
			"getOrders":       &gql.Field{Type: gql.NewList(orderType), Resolve: r.GetOrders},
			"getSellerOrders": &gql.Field{Type: gql.NewList(orderType), Resolve: r.GetSellerOrders},
			"getOrder":        &gql.Field{Type: orderType, Args: idArg, Resolve: r.GetOrder},
			"getOrdersByState": &gql.Field{
				Type: gql.NewList(orderType),
				Args: gql.FieldConfigArgument{
					"state": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.GetOrdersByState,
			},

			// Búsquedas avanzadas
			"bestClients": &gql.Field{Type: gql.NewList(topClientType), Resolve: r.BestClients},
			"bestSellers": &gql.Field{Type: gql.NewList(topSellerType), Resolve: r.BestSellers},
			"searchProduct": &gql.Field{
				Type: gql.NewList(productType),
				Args: gql.FieldConfigArgument{
					"text": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.SearchProduct,
			},
		},
	})

	mutationType := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			// Users
			"newUser": &gql.Field{
				Type:    userType,
				Args:    gql.FieldConfigArgument{"input": &gql.ArgumentConfig{Type: userInput}},
				Resolve: r.NewUser,
			},
			"authenticateUser": &gql.Field{
				Type:    tokenType,
				Args:    gql.FieldConfigArgument{"input": &gql.ArgumentConfig{Type: authenticateInput}},
				Resolve: r.AuthenticateUser,
			},

			// Products
			"newProduct": &gql.Field{
				Type:    productType,
				Args:    gql.FieldConfigArgument{"input": &gql.ArgumentConfig{Type: productInput}},
				Resolve: r.NewProduct,
			},
			"updateProduct": &gql.Field{
				Type: productType,
				Args: gql.FieldConfigArgument{
					"id":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"input": &gql.ArgumentConfig{Type: productInput},
				},
				Resolve: r.UpdateProduct,
			},
			"deleteProduct": &gql.Field{Type: gql.String, Args: idArg, Resolve: r.DeleteProduct},

			// Clients
			"newClient": &gql.Field{
				Type:    clientType,
				Args:    gql.FieldConfigArgument{"input": &gql.ArgumentConfig{Type: clientInput}},
				Resolve: r.NewClient,
			},
			"updateClient": &gql.Field{
				Type: clientType,
				Args: gql.FieldConfigArgument{
					"id":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"input": &gql.ArgumentConfig{Type: clientInput},
				},
				Resolve: r.UpdateClient,
			},
			"deleteClient": &gql.Field{Type: gql.String, Args: idArg, Resolve: r.DeleteClient},

			// Orders
			"newOrder": &gql.Field{
				Type:    orderType,
				Args:    gql.FieldConfigArgument{"input": &gql.ArgumentConfig{Type: orderInput}},
				Resolve: r.NewOrder,
			},
			"updateOrder": &gql.Field{
				Type: orderType,
				Args: gql.FieldConfigArgument{
					"id":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"input": &gql.ArgumentConfig{Type: orderInput},
				},
				Resolve: r.UpdateOrder,
			},
			"deleteOrder": &gql.Field{Type: gql.String, Args: idArg, Resolve: r.DeleteOrder},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
