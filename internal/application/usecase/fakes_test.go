package usecase_test

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// Repositorios en memoria para los tests de casos de uso. Copian los
// documentos al entrar y salir para imitar una base real (nada de aliasing).

// ── Productos ────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	f.products[p.ID.Hex()] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	f.products[p.ID.Hex()] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Search(_ context.Context, text string, limit int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(text)) {
			cp := *p
			out = append(out, &cp)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ── Clientes ─────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (f *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	cp := *c
	f.clients[c.ID.Hex()] = &cp
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) List(_ context.Context) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(f.clients))
	for _, c := range f.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeClientRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		if c.Seller.Hex() == sellerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	cp := *c
	f.clients[c.ID.Hex()] = &cp
	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(f.clients, id)
	return nil
}

// ── Pedidos ──────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders  map[string]*entity.Order
	clients *fakeClientRepo // para el $lookup de TopClients
	users   map[string]*entity.User
}

func newFakeOrderRepo(clients *fakeClientRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  map[string]*entity.Order{},
		clients: clients,
		users:   map[string]*entity.User{},
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	cp := *o
	f.orders[o.ID.Hex()] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.Seller.Hex() == sellerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListBySellerAndState(_ context.Context, sellerID, state string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.Seller.Hex() == sellerID && o.State == state {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	cp := *o
	f.orders[o.ID.Hex()] = &cp
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) DeleteByClient(_ context.Context, clientID string) error {
	for id, o := range f.orders {
		if o.Client.Hex() == clientID {
			delete(f.orders, id)
		}
	}
	return nil
}

// TopClients simula el pipeline: match COMPLETED, group por cliente, lookup y
// recorte a limit. (El detalle de $limit antes de $sort vive en el adaptador
// de MongoDB, no aquí.)
func (f *fakeOrderRepo) TopClients(_ context.Context, limit int) ([]*entity.TopClient, error) {
	totals := map[string]float64{}
	for _, o := range f.orders {
		if o.State == entity.OrderStateCompleted {
			totals[o.Client.Hex()] += o.Total
		}
	}
	var rows []*entity.TopClient
	for clientID, total := range totals {
		row := &entity.TopClient{Total: total}
		if c, ok := f.clients.clients[clientID]; ok {
			row.Client = []entity.Client{*c}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeOrderRepo) TopSellers(_ context.Context, limit int) ([]*entity.TopSeller, error) {
	totals := map[string]float64{}
	for _, o := range f.orders {
		if o.State == entity.OrderStateCompleted {
			totals[o.Seller.Hex()] += o.Total
		}
	}
	var rows []*entity.TopSeller
	for sellerID, total := range totals {
		row := &entity.TopSeller{Total: total}
		if u, ok := f.users[sellerID]; ok {
			row.Seller = []entity.User{*u}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
