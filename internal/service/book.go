package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/model"
)

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, filter)
}

// GetBookDetail assembles the book page: the book itself, its reviews and the
// borrowing history, fetched concurrently. Each view bumps the popularity
// score.
func (s *Service) GetBookDetail(ctx context.Context, id int) (model.BookDetail, error) {
	var detail model.BookDetail
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		book, err := s.repo.GetBook(ctx, id)
		if err != nil {
			return err
		}
		detail.Book = book
		return s.repo.IncPopularity(ctx, id)
	})
	g.Go(func() error {
		reviews, err := s.repo.ListReviews(ctx, id)
		if err != nil {
			return err
		}
		detail.Reviews = reviews
		return nil
	})
	g.Go(func() error {
		history, err := s.repo.HistoryForBook(ctx, id)
		if err != nil {
			return err
		}
		detail.BorrowingHistory = history
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.BookDetail{}, errs.ErrBookNotFound
		}
		return model.BookDetail{}, err
	}
	return detail, nil
}

func (s *Service) CreateBook(ctx context.Context, ownerID int, req model.CreateBookRequest) (model.Book, error) {
	transactionType := req.TransactionType
	if transactionType == "" {
		transactionType = model.TransactionRent
	}
	condition := req.Condition
	if condition == "" {
		condition = model.ConditionGood
	}
	return s.repo.CreateBook(ctx, model.Book{
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		CoverImage:      req.CoverImage,
		Genre:           req.Genre,
		Condition:       condition,
		Language:        req.Language,
		RentPrice:       req.RentPrice,
		Price:           req.Price,
		TransactionType: transactionType,
		OwnerID:         ownerID,
		Available:       true,
		Location:        req.Location,
	})
}

func (s *Service) UpdateBook(ctx context.Context, userID, bookID int, req model.UpdateBookRequest) (model.Book, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.Book{}, errs.ErrBookNotFound
	}
	if book.OwnerID != userID {
		return model.Book{}, errs.ErrNotOwner
	}
	return s.repo.UpdateBook(ctx, bookID, req)
}

func (s *Service) DeleteBook(ctx context.Context, userID, bookID int) error {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return errs.ErrBookNotFound
	}
	if book.OwnerID != userID {
		return errs.ErrNotOwner
	}
	return s.repo.DeleteBook(ctx, bookID)
}

func (s *Service) MyBooks(ctx context.Context, ownerID int) ([]model.Book, error) {
	return s.repo.BooksByOwner(ctx, ownerID)
}

func (s *Service) Recommendations(ctx context.Context, userID int) ([]model.Book, error) {
	return s.repo.Recommendations(ctx, userID)
}

func (s *Service) ToggleBookmark(ctx context.Context, userID, bookID int) (model.BookmarkResponse, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.BookmarkResponse{}, errs.ErrBookNotFound
	}
	bookmarked, err := s.repo.ToggleBookmark(ctx, userID, bookID)
	if err != nil {
		return model.BookmarkResponse{}, err
	}
	msg := "Book bookmarked"
	if !bookmarked {
		msg = "Bookmark removed"
	}
	return model.BookmarkResponse{Message: msg, IsBookmarked: bookmarked}, nil
}
