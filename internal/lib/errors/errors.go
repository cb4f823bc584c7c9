package errors

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order")

	ErrInvalidTransition      = errors.New("status not reachable from current status")
	ErrTransitionConflict     = errors.New("order was moved by another actor")
	ErrItemDeliveryNotAllowed = errors.New("items can only be delivered while the order is being prepared")
	ErrItemNotFound           = errors.New("order item not found")

	ErrMalformedEvent       = errors.New("malformed notification event")
	ErrPresentation         = errors.New("notification presentation failed")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrTokenRegistration = errors.New("push token registration failed")
)
