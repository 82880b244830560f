package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/model"
)

var transactionColumns = []string{
	"t.id", "t.buyer_id", "t.seller_id", "t.book_id", "t.amount", "t.transaction_type",
	"t.payment_id", "t.ticket_id", "t.status", "t.start_date", "t.end_date", "t.created_at",
	`bu.id as "buyer.id"`, `bu.name as "buyer.name"`, `bu.avatar as "buyer.avatar"`,
	`se.id as "seller.id"`, `se.name as "seller.name"`, `se.avatar as "seller.avatar"`, `se.upi_id as "seller.upi_id"`,
	"b.title as book_title", "b.author as book_author",
}

func (r *repository) transactionQuery() sq.SelectBuilder {
	return qb.Select(transactionColumns...).
		From(transactionsTableName + " t").
		Join(usersTableName + " bu on bu.id = t.buyer_id").
		Join(usersTableName + " se on se.id = t.seller_id").
		Join(booksTableName + " b on b.id = t.book_id")
}

// CreateTransaction persists a pending payment record. Ticket id collisions
// surface as errs.ErrNotFound-free unique violations the caller retries on.
func (r *repository) CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	q, args, err := qb.Insert(transactionsTableName).
		Columns("buyer_id", "seller_id", "book_id", "amount", "transaction_type",
			"payment_id", "ticket_id", "status", "start_date", "end_date").
		Values(t.BuyerID, t.SellerID, t.BookID, t.Amount, t.TransactionType,
			t.PaymentID, t.TicketID, model.StatusPending, t.StartDate, t.EndDate).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Transaction{}, err
	}
	var id int
	if err := r.db.GetContext(ctx, &id, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Transaction{}, errs.ErrDuplicateTicket
		}
		r.log.Error("CreateTransaction", zap.String("q", q), zap.Error(err))
		return model.Transaction{}, err
	}
	return r.getTransactionByID(ctx, id)
}

func (r *repository) getTransactionByID(ctx context.Context, id int) (model.Transaction, error) {
	q, args, err := r.transactionQuery().Where(sq.Eq{"t.id": id}).Limit(1).ToSql()
	if err != nil {
		return model.Transaction{}, err
	}
	var t model.Transaction
	if err := r.db.GetContext(ctx, &t, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, errs.ErrNotFound
		}
		return model.Transaction{}, err
	}
	return t, nil
}

// CompleteTransaction finishes a pending payment exactly once: the status
// flip, the book hold and both counters ride one database transaction, and a
// repeated call finds no pending row and reports completedNow=false.
func (r *repository) CompleteTransaction(ctx context.Context, transactionID int, paymentID string) (model.Transaction, bool, error) {
	completedNow := false
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var row struct {
			BuyerID  int `db:"buyer_id"`
			SellerID int `db:"seller_id"`
			BookID   int `db:"book_id"`
		}
		err := tx.GetContext(ctx, &row, `
update `+transactionsTableName+`
	set status = $3, payment_id = $2
where id = $1 and status = $4
returning buyer_id, seller_id, book_id`,
			transactionID, paymentID, model.StatusCompleted, model.StatusPending)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// already completed (idempotent retry) or unknown id
				return nil
			}
			return err
		}
		completedNow = true

		if _, err := tx.ExecContext(ctx, `
update `+booksTableName+` set available = false where id = $1`, row.BookID); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
update `+usersTableName+`
	set transaction_count = transaction_count + 1
where id = any($1)`, []int{row.BuyerID, row.SellerID})
		return err
	})
	if err != nil {
		return model.Transaction{}, false, err
	}

	t, err := r.getTransactionByID(ctx, transactionID)
	if err != nil {
		return model.Transaction{}, false, err
	}
	if t.Status != model.StatusCompleted {
		return model.Transaction{}, false, errs.ErrNotFound
	}
	return t, completedNow, nil
}

func (r *repository) TransactionsForUser(ctx context.Context, userID int) ([]model.Transaction, error) {
	q, args, err := r.transactionQuery().
		Where(sq.Or{sq.Eq{"t.buyer_id": userID}, sq.Eq{"t.seller_id": userID}}).
		OrderBy("t.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	txs := make([]model.Transaction, 0)
	if err := r.db.SelectContext(ctx, &txs, q, args...); err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *repository) TransactionByTicket(ctx context.Context, ticketID string) (model.Transaction, error) {
	q, args, err := r.transactionQuery().
		Where(sq.Eq{"t.ticket_id": ticketID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Transaction{}, err
	}
	var t model.Transaction
	if err := r.db.GetContext(ctx, &t, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, errs.ErrNotFound
		}
		return model.Transaction{}, err
	}
	return t, nil
}

func (r *repository) AllTransactions(ctx context.Context) ([]model.Transaction, error) {
	q, args, err := r.transactionQuery().
		OrderBy("t.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	txs := make([]model.Transaction, 0)
	if err := r.db.SelectContext(ctx, &txs, q, args...); err != nil {
		return nil, err
	}
	return txs, nil
}
