package catalog

import (
	"context"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
)

type Store interface {
	Ping(ctx context.Context) error
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	GetByID(ctx context.Context, id int) (Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// Provider answers read queries against an immutable, ordered product set.
// It is safe for concurrent use.
type Provider struct {
	products []Product
	contract Contract
	reg      prometheus.Registerer
	misses   prometheus.Counter
}

type Option func(*Provider)

func WithContract(c Contract) Option {
	return func(p *Provider) { p.contract = c }
}

// WithProducts replaces the seed set. The slice is copied.
func WithProducts(products []Product) Option {
	return func(p *Provider) { p.products = slices.Clone(products) }
}

// WithMetrics counts lookup misses on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(p *Provider) { p.reg = reg }
}

// NewProvider builds a strict provider over the seed set.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{contract: ContractStrict}
	for _, o := range opts {
		o(p)
	}
	if p.products == nil {
		p.products = seed()
	}
	if p.reg != nil {
		p.misses = prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "catalog_lookup_misses_total",
			Help:        "Product lookups by id that matched nothing",
			ConstLabels: prometheus.Labels{"contract": string(p.contract)},
		})
		p.reg.MustRegister(p.misses)
	}
	return p
}

func (p *Provider) Contract() Contract { return p.contract }

func (p *Provider) Ping(ctx context.Context) error { return ctx.Err() }

func (p *Provider) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.contract == ContractLegacy {
		return slices.Clone(p.products), nil
	}

	out := make([]Product, 0, len(p.products))
	for _, pr := range p.products {
		if pr.Category == category {
			out = append(out, pr)
		}
	}
	return out, nil
}

func (p *Provider) GetByID(ctx context.Context, id int) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}

	for _, pr := range p.products {
		if pr.ID == id {
			return pr, nil
		}
	}

	if p.misses != nil {
		p.misses.Inc()
	}
	if p.contract == ContractLegacy && len(p.products) > 0 {
		return p.products[0], nil
	}
	return Product{}, ErrNotFound
}

func (p *Provider) Categories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]string, 0, 1)
	for _, pr := range p.products {
		if !slices.Contains(out, pr.Category) {
			out = append(out, pr.Category)
		}
	}
	return out, nil
}
