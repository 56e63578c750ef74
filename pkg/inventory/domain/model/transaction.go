package model

import "iter"

// Kind tags a stock change. Only Sale is checked against the stock on hand;
// any other tag is applied as given.
type Kind string

const (
	Purchase Kind = "Purchase"
	Sale     Kind = "Sale"
)

func (k Kind) String() string { return string(k) }

type Transaction struct {
	ProductID       int
	Kind            Kind
	QuantityChanged int // Positive for a purchase, negative for a sale
}

// TransactionLog is append-only; All yields records in the order they were appended.
type TransactionLog interface {
	Append(transaction Transaction)
	All() iter.Seq[Transaction]
	Len() int
}
