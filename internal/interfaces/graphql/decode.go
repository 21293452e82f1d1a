package graphql

import "github.com/jhoicas/Ventas-api/internal/application/dto"

// Helpers para decodificar los argumentos que entrega graphql-go
// (map[string]interface{}) a los DTOs de entrada.

func argString(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func argMap(args map[string]interface{}, key string) map[string]interface{} {
	m, _ := args[key].(map[string]interface{})
	return m
}

func getString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func getInt(m map[string]interface{}, key string) int {
	n, _ := m[key].(int)
	return n
}

// getFloat acepta int o float64: graphql-go entrega Int para literales enteros
// aunque el campo sea Float.
func getFloat(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func getFloatPtr(m map[string]interface{}, key string) *float64 {
	if _, ok := m[key]; !ok {
		return nil
	}
	f := getFloat(m, key)
	return &f
}

func getStringPtr(m map[string]interface{}, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func decodeUserInput(m map[string]interface{}) dto.UserInput {
	return dto.UserInput{
		Name:     getString(m, "name"),
		LastName: getString(m, "lastname"),
		Email:    getString(m, "email"),
		Password: getString(m, "password"),
	}
}

func decodeAuthenticateInput(m map[string]interface{}) dto.AuthenticateInput {
	return dto.AuthenticateInput{
		Email:    getString(m, "email"),
		Password: getString(m, "password"),
	}
}

func decodeProductInput(m map[string]interface{}) dto.ProductInput {
	return dto.ProductInput{
		Name:      getString(m, "name"),
		Existence: getInt(m, "existence"),
		Price:     getFloat(m, "price"),
	}
}

func decodeClientInput(m map[string]interface{}) dto.ClientInput {
	return dto.ClientInput{
		Name:     getString(m, "name"),
		LastName: getString(m, "lastname"),
		Company:  getString(m, "company"),
		Email:    getString(m, "email"),
		Phone:    getString(m, "phone"),
	}
}

func decodeOrderInput(m map[string]interface{}) dto.OrderInput {
	in := dto.OrderInput{
		Total:  getFloatPtr(m, "total"),
		Client: getString(m, "client"),
		State:  getStringPtr(m, "state"),
	}
	if raw, ok := m["order"].([]interface{}); ok {
		lines := make([]dto.OrderLineInput, 0, len(raw))
		for _, item := range raw {
			lm, _ := item.(map[string]interface{})
			lines = append(lines, dto.OrderLineInput{
				ID:     getString(lm, "id"),
				Amount: getInt(lm, "amount"),
				Name:   getString(lm, "name"),
				Price:  getFloat(lm, "price"),
			})
		}
		in.Lines = lines
	}
	return in
}
