package service

import (
	"context"
	"errors"
	"time"

	"github.com/kozlekmarchewkowy/magazyn/internal/model"
)

// ── In-memory gateway stubs ──────────────────────────────────────────────────
// Order-preserving so lookup construction sees server return order. Call
// counters let tests assert a rejected submission never reached the store.

type stubCategoryRepo struct {
	categories []model.Category
	nextID     uint

	createCalls int
	listCalls   int
	failWith    error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{nextID: 1}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	r.createCalls++
	if r.failWith != nil {
		return r.failWith
	}
	c.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, *c)
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	r.listCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]model.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

type stubProductRepo struct {
	products []model.Product
	nextID   uint

	createCalls int
	deleteCalls int
	failWith    error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.createCalls++
	if r.failWith != nil {
		return r.failWith
	}
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *p)
	return nil
}

func (r *stubProductRepo) ListRecent(_ context.Context, limit int) ([]model.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := r.newestFirst()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubProductRepo) ListAll(_ context.Context) ([]model.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.newestFirst(), nil
}

func (r *stubProductRepo) DeleteAll(_ context.Context) error {
	r.deleteCalls++
	if r.failWith != nil {
		return r.failWith
	}
	r.products = nil
	return nil
}

func (r *stubProductRepo) newestFirst() []model.Product {
	out := make([]model.Product, len(r.products))
	for i, p := range r.products {
		out[len(r.products)-1-i] = p
	}
	return out
}

var errStoreDown = errors.New("connection refused")

// fakeCache is an in-memory CategoryCache. delErr simulates a cache that
// accepts reads and writes but fails to drop entries.
type fakeCache struct {
	entries map[string][]byte

	getCalls int
	setCalls int
	delCalls int
	delErr   error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.getCalls++
	raw, ok := c.entries[key]
	return raw, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.setCalls++
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Del(_ context.Context, key string) error {
	c.delCalls++
	if c.delErr != nil {
		return c.delErr
	}
	delete(c.entries, key)
	return nil
}
