package model

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest product name, in runes, the tracker accepts.
const MaxNameLength = 49

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductExists     = errors.New("product already exists")
	ErrInsufficientStock = errors.New("insufficient stock quantity")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidQuantity   = errors.New("quantity must be a positive number")
)

// InsufficientStockError reports a sale that asked for more than is on hand.
// It matches ErrInsufficientStock with errors.Is.
type InsufficientStockError struct {
	ProductID int
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("product %d: %s: available %d, requested %d",
		e.ProductID, ErrInsufficientStock, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type Product struct {
	ID       int
	Name     string
	Quantity int
	Price    float64
}

// NewProduct validates the fields a product is created with.
func NewProduct(id int, name string, quantity int, price float64) (Product, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return Product{}, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case utf8.RuneCountInString(name) > MaxNameLength:
		return Product{}, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidProduct, MaxNameLength)
	case quantity < 0:
		return Product{}, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidProduct)
	case price < 0:
		return Product{}, fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	case math.IsNaN(price) || math.IsInf(price, 0):
		return Product{}, fmt.Errorf("%w: price must be a finite number", ErrInvalidProduct)
	}

	return Product{
		ID:       id,
		Name:     name,
		Quantity: quantity,
		Price:    price,
	}, nil
}

// ProductIndex stores products ordered by ID. Products go in and come out by
// value; callers never hold a reference into the index.
type ProductIndex interface {
	Insert(product Product) error
	Find(id int) (Product, bool)
	Update(product Product) error
	Delete(id int) error
	All() iter.Seq[Product]
	Len() int
}
