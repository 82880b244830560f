package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/model"
)

var reviewColumns = []string{
	"rv.id", "rv.book_id", "rv.user_id", "rv.rating", "rv.comment", "rv.created_at",
	`u.id as "user.id"`, `u.name as "user.name"`, `u.avatar as "user.avatar"`,
}

func (r *repository) ListReviews(ctx context.Context, bookID int) ([]model.Review, error) {
	q, args, err := qb.Select(reviewColumns...).
		From(reviewsTableName + " rv").
		Join(usersTableName + " u on u.id = rv.user_id").
		Where(sq.Eq{"rv.book_id": bookID}).
		OrderBy("rv.created_at asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	reviews := make([]model.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, q, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *repository) GetReview(ctx context.Context, bookID, reviewID int) (model.Review, error) {
	q, args, err := qb.Select(reviewColumns...).
		From(reviewsTableName + " rv").
		Join(usersTableName + " u on u.id = rv.user_id").
		Where(sq.Eq{"rv.book_id": bookID, "rv.id": reviewID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var review model.Review
	if err := r.db.GetContext(ctx, &review, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, err
	}
	return review, nil
}

// AddReview inserts at most one review per user per book and refreshes the
// book's mean rating in the same transaction.
func (r *repository) AddReview(ctx context.Context, review model.Review) (model.Review, error) {
	var id int
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(reviewsTableName).
			Columns("book_id", "user_id", "rating", "comment").
			Values(review.BookID, review.UserID, review.Rating, review.Comment).
			Suffix("returning id").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &id, q, args...); err != nil {
			if isUniqueViolation(err) {
				return errs.ErrAlreadyReview
			}
			return err
		}
		return recomputeRating(ctx, tx, review.BookID)
	})
	if err != nil {
		return model.Review{}, err
	}
	return r.GetReview(ctx, review.BookID, id)
}

func (r *repository) UpdateReview(ctx context.Context, bookID, reviewID int, req model.ReviewRequest) (model.Review, error) {
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
update `+reviewsTableName+`
	set rating = $3, comment = $4, created_at = now()
where id = $2 and book_id = $1`, bookID, reviewID, req.Rating, req.Comment)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errs.ErrNotFound
		}
		return recomputeRating(ctx, tx, bookID)
	})
	if err != nil {
		return model.Review{}, err
	}
	return r.GetReview(ctx, bookID, reviewID)
}

func (r *repository) DeleteReview(ctx context.Context, bookID, reviewID int) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`delete from `+reviewsTableName+` where id = $2 and book_id = $1`, bookID, reviewID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errs.ErrNotFound
		}
		return recomputeRating(ctx, tx, bookID)
	})
}

// recomputeRating sets the book rating to the mean of its reviews, rounded
// to one decimal, or 0 when no reviews remain.
func recomputeRating(ctx context.Context, tx *sqlx.Tx, bookID int) error {
	_, err := tx.ExecContext(ctx, `
update `+booksTableName+`
	set rating = coalesce((select round(avg(rating)::numeric, 1) from `+reviewsTableName+` where book_id = $1), 0)
where id = $1`, bookID)
	return err
}
