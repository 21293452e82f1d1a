package dto

// ClientInput entrada de newClient / updateClient.
type ClientInput struct {
	Name     string `json:"name"`
	LastName string `json:"lastname"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ClientResponse cliente expuesto por el API. Seller es el id del vendedor dueño.
type ClientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastname"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Seller   string `json:"seller"`
	Created  string `json:"created"`
}
