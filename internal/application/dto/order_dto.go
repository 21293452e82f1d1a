package dto

// OrderLineInput renglón del pedido en newOrder / updateOrder. Name y Price
// son opcionales en la entrada: el sistema los desnormaliza desde el producto.
type OrderLineInput struct {
	ID     string  `json:"id"`
	Amount int     `json:"amount"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// OrderInput entrada de newOrder / updateOrder. Los campos con puntero o slice
// nil significan "no incluido en la entrada".
type OrderInput struct {
	Lines  []OrderLineInput `json:"order"`
	Total  *float64         `json:"total"`
	Client string           `json:"client"`
	State  *string          `json:"state"`
}

// OrderLineResponse renglón del pedido expuesto por el API.
type OrderLineResponse struct {
	ID     string  `json:"id"`
	Amount int     `json:"amount"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// OrderResponse pedido expuesto por el API. ClientID se resuelve al objeto
// Client en la capa GraphQL.
type OrderResponse struct {
	ID       string              `json:"id"`
	Lines    []OrderLineResponse `json:"order"`
	Total    float64             `json:"total"`
	ClientID string              `json:"clientId"`
	Seller   string              `json:"seller"`
	State    string              `json:"state"`
	Created  string              `json:"created"`
}

// TopClientResponse entrada del reporte bestClients.
type TopClientResponse struct {
	Total   float64          `json:"total"`
	Clients []ClientResponse `json:"client"`
}

// TopSellerResponse entrada del reporte bestSellers.
type TopSellerResponse struct {
	Total   float64        `json:"total"`
	Sellers []UserResponse `json:"seller"`
}
