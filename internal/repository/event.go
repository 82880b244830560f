package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/booklendiverse/booklend-service/internal/model"
)

func (r *repository) InsertEvent(ctx context.Context, e model.Event) error {
	q, args, err := qb.Insert(eventsTableName).
		Columns("event_type", "user_id", "book_id", "amount", "created_at").
		Values(e.Type, e.UserID, e.BookID, e.Amount, e.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("InsertEvent", zap.String("type", e.Type), zap.Error(err))
		return err
	}
	return nil
}
