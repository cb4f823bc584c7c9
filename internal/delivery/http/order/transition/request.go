package transition

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
)

var (
	errInvalidOrderUUID = errors.New("invalid order id")
	errInvalidStatus    = errors.New("invalid status")
	errInvalidIndex     = errors.New("invalid item index")
)

var validate = validator.New()

type TransitionRequest struct {
	OrderUUID string `json:"-" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,oneof=pending preparing ready partially_delivered completed cancelled"`
}

func (r *TransitionRequest) validate() error {
	err := validate.Struct(r)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		if validationErrors[0].Field() == "OrderUUID" {
			return errInvalidOrderUUID
		}
		return errInvalidStatus
	}

	return err
}

func (r *TransitionRequest) toServiceRepresentation() (uuid.UUID, models.OrderStatus) {
	return uuid.MustParse(r.OrderUUID), models.OrderStatus(r.Status)
}

type ItemDeliveredRequest struct {
	OrderUUID string
	Index     string
}

func (r *ItemDeliveredRequest) validate() (uuid.UUID, int, error) {
	if err := validate.Var(r.OrderUUID, "required,uuid"); err != nil {
		return uuid.Nil, 0, errInvalidOrderUUID
	}

	index, err := strconv.Atoi(r.Index)
	if err != nil || index < 0 {
		return uuid.Nil, 0, errInvalidIndex
	}

	return uuid.MustParse(r.OrderUUID), index, nil
}
