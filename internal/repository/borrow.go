package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/model"
)

// BorrowBook flips the book to borrowed and opens a history record. The
// availability check and the flip are one conditional statement, so two
// concurrent requests cannot both win.
func (r *repository) BorrowBook(ctx context.Context, bookID, borrowerID int) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
update `+booksTableName+`
	set available = false, current_borrower_id = $2
where id = $1 and available = true`, bookID, borrowerID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errs.ErrNotAvailable
		}
		_, err = tx.ExecContext(ctx, `
insert into `+borrowingTableName+` (book_id, borrower_id, borrow_date, returned)
values ($1, $2, now(), false)`, bookID, borrowerID)
		return err
	})
}

// ReturnBook closes the borrower's open history record. The record is
// addressed by id, never by position in the history.
func (r *repository) ReturnBook(ctx context.Context, bookID, borrowerID int, req model.ReturnRequest) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
update `+booksTableName+`
	set available = true, current_borrower_id = null
where id = $1 and current_borrower_id = $2`, bookID, borrowerID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errs.ErrNotBorrower
		}
		_, err = tx.ExecContext(ctx, `
update `+borrowingTableName+`
	set returned = true, return_date = now(), borrower_rating = $3, borrower_comment = $4
where id = (
	select id from `+borrowingTableName+`
	where book_id = $1 and borrower_id = $2 and returned = false
	order by borrow_date desc
	limit 1
)`, bookID, borrowerID, req.BorrowerRating, req.BorrowerComment)
		return err
	})
}

// AcceptReturn marks the most recent returned-but-unconfirmed record as
// confirmed and re-asserts the book is free, so the owner's call is safe to
// retry.
func (r *repository) AcceptReturn(ctx context.Context, bookID int) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
update `+borrowingTableName+`
	set return_confirmed = true
where id = (
	select id from `+borrowingTableName+`
	where book_id = $1 and returned = true and return_confirmed = false
	order by borrow_date desc
	limit 1
)`, bookID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errs.ErrNotReturned
		}
		_, err = tx.ExecContext(ctx, `
update `+booksTableName+`
	set available = true, current_borrower_id = null
where id = $1`, bookID)
		return err
	})
}

func (r *repository) HistoryForBook(ctx context.Context, bookID int) ([]model.BorrowRecord, error) {
	q, args, err := qb.Select("h.id", "h.book_id", "h.borrower_id", "h.borrow_date", "h.return_date",
		"h.returned", "h.return_confirmed", "h.borrower_rating", "h.borrower_comment",
		`u.id as "borrower.id"`, `u.name as "borrower.name"`, `u.avatar as "borrower.avatar"`).
		From(borrowingTableName + " h").
		Join(usersTableName + " u on u.id = h.borrower_id").
		Where(sq.Eq{"h.book_id": bookID}).
		OrderBy("h.borrow_date asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	history := make([]model.BorrowRecord, 0)
	if err := r.db.SelectContext(ctx, &history, q, args...); err != nil {
		return nil, err
	}
	return history, nil
}

func (r *repository) BorrowedBy(ctx context.Context, userID int) ([]model.Book, error) {
	return r.selectBooks(ctx, r.bookQuery().
		Where(sq.Eq{"b.current_borrower_id": userID}))
}

func (r *repository) BorrowHistoryBooks(ctx context.Context, userID int) ([]model.Book, error) {
	return r.selectBooks(ctx, r.bookQuery().
		Where(sq.Expr(`exists (select 1 from `+borrowingTableName+` h where h.book_id = b.id and h.borrower_id = ?)`, userID)))
}

func (r *repository) LentBy(ctx context.Context, ownerID int) ([]model.Book, error) {
	return r.selectBooks(ctx, r.bookQuery().
		Where(sq.Eq{"b.owner_id": ownerID, "b.available": false}).
		Where(sq.NotEq{"b.current_borrower_id": nil}))
}

func (r *repository) ActiveRequests(ctx context.Context, ownerID int) ([]model.Book, error) {
	return r.selectBooks(ctx, r.bookQuery().
		Where(sq.Eq{"b.owner_id": ownerID, "b.available": false}).
		Where(sq.Expr(`exists (select 1 from `+borrowingTableName+` h where h.book_id = b.id and h.returned = false)`)))
}

func (r *repository) selectBooks(ctx context.Context, q sq.SelectBuilder) ([]model.Book, error) {
	query, args, err := q.OrderBy("b.created_at desc").ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return splitAll(books), nil
}
