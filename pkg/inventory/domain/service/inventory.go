package service

import (
	"iter"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"inventory/pkg/inventory/domain/model"
)

type Event interface{ Type() string }
type EventDispatcher interface{ Dispatch(event Event) error }

type InventoryService interface {
	AddProduct(id int, name string, quantity int, price float64) (model.Product, error)
	FindProduct(id int) (model.Product, error)
	// AdjustStock applies delta to the product's quantity and records it.
	// A Sale may not take more than is on hand; any other kind is applied as is,
	// so a negative Purchase delta is the caller's responsibility.
	AdjustStock(id, delta int, kind model.Kind) (int, error)
	Purchase(id, quantity int) (int, error)
	Sell(id, quantity int) (int, error)
	RemoveProduct(id int) error
	ListProducts() iter.Seq[model.Product]
	History() iter.Seq[model.Transaction]
}

func NewInventoryService(index model.ProductIndex, transactions model.TransactionLog, dispatcher EventDispatcher) InventoryService {
	return &inventoryService{
		index:        index,
		transactions: transactions,
		dispatcher:   dispatcher,
	}
}

type inventoryService struct {
	index        model.ProductIndex
	transactions model.TransactionLog
	dispatcher   EventDispatcher
}

func (s *inventoryService) AddProduct(id int, name string, quantity int, price float64) (model.Product, error) {
	product, err := model.NewProduct(id, name, quantity, price)
	if err != nil {
		return model.Product{}, err
	}

	if err := s.index.Insert(product); err != nil {
		return model.Product{}, errors.Wrapf(err, "product %d", id)
	}

	s.dispatchEvents(model.ProductAdded{ProductID: id, Name: product.Name, Quantity: quantity})
	return product, nil
}

func (s *inventoryService) FindProduct(id int) (model.Product, error) {
	product, ok := s.index.Find(id)
	if !ok {
		return model.Product{}, errors.Wrapf(model.ErrProductNotFound, "product %d", id)
	}
	return product, nil
}

func (s *inventoryService) AdjustStock(id, delta int, kind model.Kind) (int, error) {
	product, err := s.FindProduct(id)
	if err != nil {
		return 0, err
	}

	if kind == model.Sale {
		if sold := -delta; sold > product.Quantity {
			return 0, &model.InsufficientStockError{
				ProductID: id,
				Available: product.Quantity,
				Requested: sold,
			}
		}
	}

	product.Quantity += delta
	if err := s.index.Update(product); err != nil {
		return 0, errors.Wrapf(err, "product %d", id)
	}

	s.transactions.Append(model.Transaction{
		ProductID:       id,
		Kind:            kind,
		QuantityChanged: delta,
	})

	s.dispatchEvents(model.StockAdjusted{
		ProductID:   id,
		Kind:        kind,
		Change:      delta,
		NewQuantity: product.Quantity,
	})
	return product.Quantity, nil
}

func (s *inventoryService) Purchase(id, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, model.ErrInvalidQuantity
	}
	return s.AdjustStock(id, quantity, model.Purchase)
}

func (s *inventoryService) Sell(id, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, model.ErrInvalidQuantity
	}
	return s.AdjustStock(id, -quantity, model.Sale)
}

func (s *inventoryService) RemoveProduct(id int) error {
	if err := s.index.Delete(id); err != nil {
		return errors.Wrapf(err, "product %d", id)
	}

	s.dispatchEvents(model.ProductRemoved{ProductID: id})
	return nil
}

func (s *inventoryService) ListProducts() iter.Seq[model.Product] {
	return s.index.All()
}

func (s *inventoryService) History() iter.Seq[model.Transaction] {
	return s.transactions.All()
}

func (s *inventoryService) dispatchEvents(events ...Event) {
	for _, event := range events {
		if err := s.dispatcher.Dispatch(event); err != nil {
			log.WithError(err).WithField("event", event.Type()).Error("failed to dispatch event")
		}
	}
}
