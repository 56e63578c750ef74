package model

type ProductAdded struct {
	ProductID int
	Name      string
	Quantity  int
}

func (e ProductAdded) Type() string { return "ProductAdded" }

type StockAdjusted struct {
	ProductID   int
	Kind        Kind
	Change      int
	NewQuantity int
}

func (e StockAdjusted) Type() string { return "StockAdjusted" }

type ProductRemoved struct {
	ProductID int
}

func (e ProductRemoved) Type() string { return "ProductRemoved" }
