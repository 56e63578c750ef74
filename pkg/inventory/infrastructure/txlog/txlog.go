// Package txlog keeps the append-only history of stock changes.
package txlog

import (
	"iter"

	"inventory/pkg/inventory/domain/model"
)

var _ model.TransactionLog = (*Log)(nil)

type entry struct {
	transaction model.Transaction
	next        *entry
}

// Log is a singly linked list that tracks its tail, so Append is O(1).
type Log struct {
	head, tail *entry
	size       int
}

func New() *Log {
	return &Log{}
}

func (l *Log) Append(transaction model.Transaction) {
	e := &entry{transaction: transaction}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.size++
}

// All yields records oldest first.
func (l *Log) All() iter.Seq[model.Transaction] {
	return func(yield func(model.Transaction) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.transaction) {
				return
			}
		}
	}
}

func (l *Log) Len() int {
	return l.size
}
