// Package dispatcher publishes domain events to the structured log.
package dispatcher

import (
	log "github.com/sirupsen/logrus"

	"inventory/pkg/inventory/domain/model"
	"inventory/pkg/inventory/domain/service"
)

var _ service.EventDispatcher = (*LogDispatcher)(nil)

type LogDispatcher struct {
	logger log.FieldLogger
}

func NewLogDispatcher(logger log.FieldLogger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(event service.Event) error {
	d.logger.WithFields(fields(event)).Info(event.Type())
	return nil
}

func fields(event service.Event) log.Fields {
	switch e := event.(type) {
	case model.ProductAdded:
		return log.Fields{"product_id": e.ProductID, "name": e.Name, "quantity": e.Quantity}
	case model.StockAdjusted:
		return log.Fields{
			"product_id":   e.ProductID,
			"kind":         e.Kind.String(),
			"change":       e.Change,
			"new_quantity": e.NewQuantity,
		}
	case model.ProductRemoved:
		return log.Fields{"product_id": e.ProductID}
	default:
		return log.Fields{}
	}
}
