package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

// ConflictError is returned when the backend refused a change because the order moved
// on. Current is the order as the backend sees it.
type ConflictError struct {
	Current *models.Order
	Reason  string
}

func (e *ConflictError) Error() string {
	if e.Reason == "" {
		return internalErrors.ErrTransitionConflict.Error()
	}

	return fmt.Sprintf("%s: %s", internalErrors.ErrTransitionConflict, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return internalErrors.ErrTransitionConflict
}

type errorResponse struct {
	Error string        `json:"error"`
	Order *models.Order `json:"order,omitempty"`
}

type statusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// Repository talks to the backend order service. The backend is the source of truth;
// nothing here is persisted locally.
type Repository struct {
	log     logger.Logger
	client  *http.Client
	baseURL string
}

func NewOrderRepository(log logger.Logger, baseURL string, timeout time.Duration) *Repository {
	return &Repository{
		log:     log,
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (or *Repository) Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error) {
	const op = "repository.order.Order"

	var order models.Order
	if err := or.do(ctx, http.MethodGet, "/orders/"+orderUUID.String(), nil, &order); err != nil {
		or.log.ErrorContext(ctx, op, logger.String("order_uuid", orderUUID.String()), logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &order, nil
}

// ShopOrders lists a shop's orders. Without history only orders that are still in
// the kitchen are returned.
func (or *Repository) ShopOrders(ctx context.Context, shopID string, includeHistory bool) ([]models.Order, error) {
	const op = "repository.order.ShopOrders"

	query := url.Values{}
	query.Set("history", strconv.FormatBool(includeHistory))

	path := "/shops/" + url.PathEscape(shopID) + "/orders?" + query.Encode()

	var orders []models.Order
	if err := or.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		or.log.ErrorContext(ctx, op, logger.String("shop_id", shopID), logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

func (or *Repository) Transition(ctx context.Context, orderUUID uuid.UUID, to models.OrderStatus) (*models.Order, error) {
	const op = "repository.order.Transition"

	var order models.Order
	if err := or.do(ctx, http.MethodPost, "/orders/"+orderUUID.String()+"/status", statusRequest{Status: to}, &order); err != nil {
		or.log.WarnContext(ctx, op,
			logger.String("order_uuid", orderUUID.String()),
			logger.String("to", string(to)),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &order, nil
}

func (or *Repository) MarkItemDelivered(ctx context.Context, orderUUID uuid.UUID, index int) (*models.Order, error) {
	const op = "repository.order.MarkItemDelivered"

	path := fmt.Sprintf("/orders/%s/items/%d/delivered", orderUUID, index)

	var order models.Order
	if err := or.do(ctx, http.MethodPost, path, nil, &order); err != nil {
		or.log.WarnContext(ctx, op,
			logger.String("order_uuid", orderUUID.String()),
			logger.Int("index", index),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &order, nil
}

func (or *Repository) do(ctx context.Context, method, path string, body, dst any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, or.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := or.client.Do(req)
	if err != nil {
		return fmt.Errorf("call order service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var errResp errorResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &errResp); err != nil {
			errResp.Error = strings.TrimSpace(string(raw))
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", internalErrors.ErrOrderNotFound, errResp.Error)
	case http.StatusConflict:
		return &ConflictError{Current: errResp.Order, Reason: errResp.Error}
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", internalErrors.ErrInvalidTransition, errResp.Error)
	default:
		return fmt.Errorf("order service returned status %d: %s", resp.StatusCode, errResp.Error)
	}
}
