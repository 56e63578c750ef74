// Package service serialises access to the domain inventory service for
// callers that run concurrently, such as HTTP handlers.
package service

import (
	"slices"
	"sync"

	"inventory/pkg/inventory/domain/model"
	domainservice "inventory/pkg/inventory/domain/service"
)

type Inventory struct {
	mu  sync.Mutex
	svc domainservice.InventoryService
}

func NewInventory(svc domainservice.InventoryService) *Inventory {
	return &Inventory{svc: svc}
}

func (i *Inventory) AddProduct(id int, name string, quantity int, price float64) (model.Product, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.svc.AddProduct(id, name, quantity, price)
}

func (i *Inventory) FindProduct(id int) (model.Product, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.svc.FindProduct(id)
}

func (i *Inventory) AdjustStock(id, delta int, kind model.Kind) (int, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.svc.AdjustStock(id, delta, kind)
}

func (i *Inventory) Purchase(id, quantity int) (int, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.svc.Purchase(id, quantity)
}

func (i *Inventory) Sell(id, quantity int) (int, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.svc.Sell(id, quantity)
}

func (i *Inventory) RemoveProduct(id int) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.svc.RemoveProduct(id)
}

// ListProducts returns a snapshot ordered by ID.
func (i *Inventory) ListProducts() []model.Product {
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Collect(i.svc.ListProducts())
}

// History returns a snapshot in append order.
func (i *Inventory) History() []model.Transaction {
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Collect(i.svc.History())
}
