// Package index holds products in an unbalanced binary search tree keyed by
// product ID. Search, insert and delete are O(depth); no rebalancing is done,
// so sorted insertion degrades the tree to a list.
package index

import (
	"iter"

	"inventory/pkg/inventory/domain/model"
)

var _ model.ProductIndex = (*Index)(nil)

type node struct {
	product     model.Product
	left, right *node
}

// Index is not safe for concurrent use.
type Index struct {
	root *node
	size int
}

func New() *Index {
	return &Index{}
}

func (x *Index) Insert(product model.Product) error {
	link := &x.root
	for *link != nil {
		n := *link
		switch {
		case product.ID < n.product.ID:
			link = &n.left
		case product.ID > n.product.ID:
			link = &n.right
		default:
			return model.ErrProductExists
		}
	}
	*link = &node{product: product}
	x.size++
	return nil
}

func (x *Index) Find(id int) (model.Product, bool) {
	if n := x.lookup(id); n != nil {
		return n.product, true
	}
	return model.Product{}, false
}

// Update overwrites the stored value of an existing product. The ID is the key
// and selects the node; it is never changed.
func (x *Index) Update(product model.Product) error {
	n := x.lookup(product.ID)
	if n == nil {
		return model.ErrProductNotFound
	}
	n.product = product
	return nil
}

func (x *Index) Delete(id int) error {
	root, deleted := deleteNode(x.root, id)
	if !deleted {
		return model.ErrProductNotFound
	}
	x.root = root
	x.size--
	return nil
}

// All yields products in ascending ID order. Each call walks the tree as it is
// at that moment.
func (x *Index) All() iter.Seq[model.Product] {
	return func(yield func(model.Product) bool) {
		walk(x.root, yield)
	}
}

func (x *Index) Len() int {
	return x.size
}

func (x *Index) lookup(id int) *node {
	n := x.root
	for n != nil && n.product.ID != id {
		if id < n.product.ID {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

// deleteNode returns the new root of the subtree after removing id.
func deleteNode(n *node, id int) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var deleted bool
	switch {
	case id < n.product.ID:
		n.left, deleted = deleteNode(n.left, id)
		return n, deleted
	case id > n.product.ID:
		n.right, deleted = deleteNode(n.right, id)
		return n, deleted
	}

	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	// Two children: take the in-order successor's value, then drop the successor.
	successor := minNode(n.right)
	n.product = successor.product
	n.right, _ = deleteNode(n.right, successor.product.ID)
	return n, true
}

func minNode(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func walk(n *node, yield func(model.Product) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.product) && walk(n.right, yield)
}
