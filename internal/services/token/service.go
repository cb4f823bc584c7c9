package token

import (
	"context"
	"fmt"
	"strings"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	internalErrors "github.com/tumbleweedd/campus_orders/order_notifier/internal/lib/errors"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/metrics"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type outBoxInserter interface {
	Insert(ctx context.Context, msg models.OutBoxMessage) error
}

type outBoxSender interface {
	Send(ctx context.Context) (int, error)
}

// Service forwards push token changes to the backend through the token outbox. Rows
// that could not be published stay in the outbox and go out on the next flush.
type Service struct {
	log     logger.Logger
	metrics *metrics.Metrics

	outBoxInserter outBoxInserter
	outBoxSender   outBoxSender
}

func New(log logger.Logger, metrics *metrics.Metrics, outBoxInserter outBoxInserter, outBoxSender outBoxSender) *Service {
	return &Service{
		log:            log,
		metrics:        metrics,
		outBoxInserter: outBoxInserter,
		outBoxSender:   outBoxSender,
	}
}

func (s *Service) Register(ctx context.Context, userID, token string) error {
	return s.record(ctx, userID, token, models.TokenActionRegister)
}

// Unregister is called on logout.
func (s *Service) Unregister(ctx context.Context, userID, token string) error {
	return s.record(ctx, userID, token, models.TokenActionUnregister)
}

func (s *Service) record(ctx context.Context, userID, token string, action models.TokenAction) error {
	const op = "services.token.record"

	userID, token = strings.TrimSpace(userID), strings.TrimSpace(token)
	if userID == "" || token == "" {
		return fmt.Errorf("%s: %w: user id and token are required", op, internalErrors.ErrTokenRegistration)
	}

	msg := models.OutBoxMessage{
		UserID: userID,
		Token:  token,
		Action: action,
	}

	if err := s.outBoxInserter.Insert(ctx, msg); err != nil {
		s.metrics.TokenRegistrationFailures.Inc()
		s.log.ErrorContext(ctx, op, logger.String("action", string(action)), logger.Err(err))
		return fmt.Errorf("%s: %w: %w", op, internalErrors.ErrTokenRegistration, err)
	}

	// Non-fatal: the row is already durable.
	if _, err := s.outBoxSender.Send(ctx); err != nil {
		s.metrics.TokenRegistrationFailures.Inc()
		s.log.WarnContext(ctx, op+": flush postponed", logger.String("action", string(action)), logger.Err(err))
	}

	return nil
}
