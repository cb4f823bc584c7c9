package outBox

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/domain/models"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

type Repository struct {
	db *sqlx.DB

	log logger.Logger
}

func New(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{db: db, log: log}
}

func (or *Repository) Insert(ctx context.Context, msg models.OutBoxMessage) error {
	const op = "repository.outBox.Insert"

	if msg.EventUUID == uuid.Nil {
		eventUUID, err := uuid.NewUUID()
		if err != nil {
			or.log.Error(op, logger.Err(err))
			return fmt.Errorf("%s: event_uuid generate error: %w", op, err)
		}
		msg.EventUUID = eventUUID
	}

	const outboxQuery = `
						INSERT INTO "token_outbox" (event_uuid, user_id, token, action)
							VALUES (:event_uuid, :user_id, :token, :action)
						`

	if _, err := or.db.NamedExecContext(ctx, outboxQuery, msg); err != nil {
		or.log.Error(op, logger.String("outbox insert error", err.Error()))
		return fmt.Errorf("%s: outbox insert error: %w", op, err)
	}

	return nil
}

// FetchUnsent returns the oldest unsent rows first, so a register followed by an
// unregister for the same token keeps its order on the topic.
func (or *Repository) FetchUnsent(ctx context.Context, limit int) ([]models.OutBoxMessage, error) {
	const op = "repository.outBox.FetchUnsent"

	const query = `
					SELECT event_uuid, user_id, token, action, created_at
						FROM "token_outbox"
						WHERE send = FALSE
						ORDER BY created_at, event_uuid
						LIMIT $1
					`

	var messages []models.OutBoxMessage
	if err := or.db.SelectContext(ctx, &messages, query, limit); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: select: %w", op, err)
	}

	return messages, nil
}

func (or *Repository) MarkSent(ctx context.Context, eventUUIDs []uuid.UUID) error {
	const op = "repository.outBox.MarkSent"

	if len(eventUUIDs) == 0 {
		return nil
	}

	const query = `UPDATE "token_outbox" SET send = TRUE WHERE event_uuid = ANY($1)`

	if _, err := or.db.ExecContext(ctx, query, pq.Array(eventUUIDs)); err != nil {
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: update: %w", op, err)
	}

	return nil
}
