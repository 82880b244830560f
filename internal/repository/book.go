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

var bookColumns = []string{
	"b.id", "b.title", "b.author", "b.description", "b.cover_image",
	`coalesce((select string_agg(g.genre, ',' order by g.genre) from ` + bookGenresTableName + ` g where g.book_id = b.id), '') as genres`,
	"b.condition", "b.language", "b.rent_price", "b.price", "b.transaction_type",
	"b.owner_id", "b.available", "b.current_borrower_id", "b.rating", "b.popularity_score",
	`b.address as "location.address"`, `b.city as "location.city"`, `b.state as "location.state"`,
	`b.lat as "location.lat"`, `b.lng as "location.lng"`,
	"b.created_at",
	`o.id as "owner.id"`, `o.name as "owner.name"`, `o.avatar as "owner.avatar"`,
	`o.city as "owner.city"`, `o.upi_id as "owner.upi_id"`,
}

func (r *repository) bookQuery() sq.SelectBuilder {
	return qb.Select(bookColumns...).
		From(booksTableName + " b").
		Join(usersTableName + " o on o.id = b.owner_id")
}

func splitAll(books []model.Book) []model.Book {
	for i := range books {
		books[i].SplitGenres()
	}
	return books
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := r.bookQuery()

	if len(filter.Genre) > 0 {
		q = q.Where(sq.Expr(`exists (select 1 from `+bookGenresTableName+` g where g.book_id = b.id and g.genre = any(?))`, filter.Genre))
	}
	if filter.AvailableOnly {
		q = q.Where(sq.Eq{"b.available": true})
	}
	if filter.MinRating > 0 {
		q = q.Where(sq.GtOrEq{"b.rating": filter.MinRating})
	}
	if filter.MaxPrice > 0 {
		q = q.Where(sq.LtOrEq{"b.rent_price": filter.MaxPrice})
	}
	if filter.Search != "" {
		pat := "%" + filter.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"b.title": pat},
			sq.ILike{"b.author": pat},
			sq.ILike{"b.description": pat},
		})
	}

	switch filter.Sort {
	case model.SortRating:
		q = q.OrderBy("b.rating desc")
	case model.SortPriceAsc:
		q = q.OrderBy("b.rent_price asc")
	case model.SortPriceDesc:
		q = q.OrderBy("b.rent_price desc")
	case model.SortPopularity:
		q = q.OrderBy("b.popularity_score desc")
	default: // newest
		q = q.OrderBy("b.created_at desc")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return splitAll(books), nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := r.bookQuery().
		Where(sq.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, err
	}
	book.SplitGenres()
	return book, nil
}

func (r *repository) IncPopularity(ctx context.Context, id int) error {
	q := `update ` + booksTableName + ` set popularity_score = popularity_score + 1 where id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func (r *repository) CreateBook(ctx context.Context, b model.Book) (model.Book, error) {
	var id int
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(booksTableName).
			Columns("title", "author", "description", "cover_image", "condition", "language",
				"rent_price", "price", "transaction_type", "owner_id", "available",
				"address", "city", "state", "lat", "lng").
			Values(b.Title, b.Author, b.Description, b.CoverImage, b.Condition, b.Language,
				b.RentPrice, b.Price, b.TransactionType, b.OwnerID, true,
				b.Location.Address, b.Location.City, b.Location.State, b.Location.Lat, b.Location.Lng).
			Suffix("returning id").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &id, q, args...); err != nil {
			r.log.Error("CreateBook", zap.String("q", q), zap.Error(err))
			return err
		}
		return insertGenres(ctx, tx, id, b.Genre)
	})
	if err != nil {
		return model.Book{}, err
	}
	return r.GetBook(ctx, id)
}

func insertGenres(ctx context.Context, tx *sqlx.Tx, bookID int, genres []string) error {
	if len(genres) == 0 {
		return nil
	}
	ins := qb.Insert(bookGenresTableName).Columns("book_id", "genre")
	for _, g := range genres {
		ins = ins.Values(bookID, g)
	}
	q, args, err := ins.Suffix("on conflict do nothing").ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		upd := qb.Update(booksTableName).Where(sq.Eq{"id": id})
		set := false
		if req.Title != nil {
			upd, set = upd.Set("title", *req.Title), true
		}
		if req.Author != nil {
			upd, set = upd.Set("author", *req.Author), true
		}
		if req.Description != nil {
			upd, set = upd.Set("description", *req.Description), true
		}
		if req.Price != nil {
			upd, set = upd.Set("price", *req.Price), true
		}
		if req.RentPrice != nil {
			upd, set = upd.Set("rent_price", *req.RentPrice), true
		}
		if req.Condition != nil {
			upd, set = upd.Set("condition", *req.Condition), true
		}
		if req.CoverImage != nil {
			upd, set = upd.Set("cover_image", *req.CoverImage), true
		}
		if req.Language != nil {
			upd, set = upd.Set("language", *req.Language), true
		}
		if set {
			q, args, err := upd.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, q, args...); err != nil {
				return err
			}
		}
		if req.Genre != nil {
			if _, err := tx.ExecContext(ctx, `delete from `+bookGenresTableName+` where book_id = $1`, id); err != nil {
				return err
			}
			return insertGenres(ctx, tx, id, req.Genre)
		}
		return nil
	})
	if err != nil {
		return model.Book{}, err
	}
	return r.GetBook(ctx, id)
}

func (r *repository) DeleteBook(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `delete from `+booksTableName+` where id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrBookNotFound
	}
	return nil
}

func (r *repository) BooksByOwner(ctx context.Context, ownerID int) ([]model.Book, error) {
	query, args, err := r.bookQuery().
		Where(sq.Eq{"b.owner_id": ownerID}).
		OrderBy("b.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return splitAll(books), nil
}

// Recommendations finds available books sharing a genre with the user's
// bookmarks, excluding books already bookmarked and the user's own listings.
func (r *repository) Recommendations(ctx context.Context, userID int) ([]model.Book, error) {
	query, args, err := r.bookQuery().
		Where(sq.Expr(`exists (
			select 1 from `+bookGenresTableName+` g
			join `+bookGenresTableName+` bg on bg.genre = g.genre
			join `+bookmarksTableName+` bm on bm.book_id = bg.book_id and bm.user_id = ?
			where g.book_id = b.id)`, userID)).
		Where(sq.Expr(`b.id not in (select book_id from `+bookmarksTableName+` where user_id = ?)`, userID)).
		Where(sq.NotEq{"b.owner_id": userID}).
		Where(sq.Eq{"b.available": true}).
		OrderBy("b.rating desc").
		Limit(10).
		ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return splitAll(books), nil
}

func (r *repository) ToggleBookmark(ctx context.Context, userID, bookID int) (bool, error) {
	if _, err := r.GetBook(ctx, bookID); err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx,
		`delete from `+bookmarksTableName+` where user_id = $1 and book_id = $2`, userID, bookID)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return false, nil
	}
	_, err = r.db.ExecContext(ctx,
		`insert into `+bookmarksTableName+` (user_id, book_id) values ($1, $2) on conflict do nothing`,
		userID, bookID)
	if err != nil {
		return false, err
	}
	return true, nil
}
