package service

import (
	"context"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/model"
)

func (s *Service) ListReviews(ctx context.Context, bookID int) ([]model.Review, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return nil, errs.ErrBookNotFound
	}
	return s.repo.ListReviews(ctx, bookID)
}

func (s *Service) AddReview(ctx context.Context, userID, bookID int, req model.ReviewRequest) (model.Review, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.Review{}, errs.ErrBookNotFound
	}
	return s.repo.AddReview(ctx, model.Review{
		BookID:  bookID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
}

func (s *Service) UpdateReview(ctx context.Context, userID, bookID, reviewID int, req model.ReviewRequest) (model.Review, error) {
	review, err := s.repo.GetReview(ctx, bookID, reviewID)
	if err != nil {
		return model.Review{}, err
	}
	if review.UserID != userID {
		return model.Review{}, errs.ErrForbidden
	}
	return s.repo.UpdateReview(ctx, bookID, reviewID, req)
}

// DeleteReview removes a review. The author may always delete their own
// review; the book's owner may moderate reviews on their listing.
func (s *Service) DeleteReview(ctx context.Context, userID, bookID, reviewID int) error {
	review, err := s.repo.GetReview(ctx, bookID, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		book, err := s.repo.GetBook(ctx, bookID)
		if err != nil || book.OwnerID != userID {
			return errs.ErrForbidden
		}
	}
	return s.repo.DeleteReview(ctx, bookID, reviewID)
}
