package get

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/services/order/queue"
)

var (
	errInvalidOrderUUID = errors.New("invalid order id")
	errInvalidFilter    = errors.New("invalid filter")
)

var validate = validator.New()

type QueueRequest struct {
	ShopID string `validate:"required,max=128"`
	Filter string `validate:"omitempty,max=32"`
}

func (r *QueueRequest) validate() (queue.Filter, error) {
	if err := validate.Struct(r); err != nil {
		return "", err
	}

	filter, ok := queue.ParseFilter(r.Filter)
	if !ok {
		return "", errInvalidFilter
	}

	return filter, nil
}

type OrderByUUIDRequest struct {
	OrderUUID string `validate:"required,uuid"`
}

func (r *OrderByUUIDRequest) validate() error {
	if err := validate.Struct(r); err != nil {
		return errInvalidOrderUUID
	}

	return nil
}

func (r *OrderByUUIDRequest) toServiceRepresentation() uuid.UUID {
	return uuid.MustParse(r.OrderUUID)
}
