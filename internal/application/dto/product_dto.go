package dto

// ProductInput entrada de newProduct / updateProduct.
type ProductInput struct {
	Name      string  `json:"name"`
	Existence int     `json:"existence"`
	Price     float64 `json:"price"`
}

// ProductResponse producto expuesto por el API.
type ProductResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Existence int     `json:"existence"`
	Price     float64 `json:"price"`
	Created   string  `json:"created"`
}
