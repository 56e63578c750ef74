package txlog_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory/pkg/inventory/domain/model"
	"inventory/pkg/inventory/infrastructure/txlog"
)

func TestAppendKeepsArrivalOrder(t *testing.T) {
	log := txlog.New()
	assert.Empty(t, slices.Collect(log.All()))
	assert.Zero(t, log.Len())

	records := []model.Transaction{
		{ProductID: 2, Kind: model.Purchase, QuantityChanged: 5},
		{ProductID: 1, Kind: model.Sale, QuantityChanged: -3},
		{ProductID: 2, Kind: model.Sale, QuantityChanged: -1},
		{ProductID: 7, Kind: model.Kind("Adjustment"), QuantityChanged: 4},
	}
	for _, r := range records {
		log.Append(r)
	}

	assert.Equal(t, records, slices.Collect(log.All()))
	assert.Equal(t, 4, log.Len())
}

func TestAllIsRestartable(t *testing.T) {
	log := txlog.New()
	log.Append(model.Transaction{ProductID: 1, Kind: model.Purchase, QuantityChanged: 1})

	first := slices.Collect(log.All())
	log.Append(model.Transaction{ProductID: 2, Kind: model.Purchase, QuantityChanged: 2})
	second := slices.Collect(log.All())

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
	assert.Equal(t, first[0], second[0])

	for range log.All() {
		break
	}
	assert.Len(t, slices.Collect(log.All()), 2)
}
