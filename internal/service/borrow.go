package service

import (
	"context"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/model"
	"github.com/booklendiverse/booklend-service/pkg/kafka"
)

// Borrow places a hold on the book for the caller. The availability check
// lives in the repository as a single conditional update, so losing a race
// surfaces as ErrNotAvailable rather than a double borrow.
func (s *Service) Borrow(ctx context.Context, userID, bookID int) (model.BorrowResponse, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BorrowResponse{}, errs.ErrBookNotFound
	}
	if book.OwnerID == userID {
		return model.BorrowResponse{}, errs.ErrOwnBook
	}
	if err := s.repo.BorrowBook(ctx, bookID, userID); err != nil {
		return model.BorrowResponse{}, err
	}
	book, err = s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BorrowResponse{}, err
	}
	s.publish(kafka.EventStats{Type: kafka.EventBorrowRequested, UserID: userID, BookID: bookID})
	return model.BorrowResponse{Message: "Book borrowed successfully", Book: book}, nil
}

func (s *Service) Return(ctx context.Context, userID, bookID int, req model.ReturnRequest) (model.BorrowResponse, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.BorrowResponse{}, errs.ErrBookNotFound
	}
	if err := s.repo.ReturnBook(ctx, bookID, userID, req); err != nil {
		return model.BorrowResponse{}, err
	}
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BorrowResponse{}, err
	}
	s.publish(kafka.EventStats{Type: kafka.EventBookReturned, UserID: userID, BookID: bookID})
	return model.BorrowResponse{Message: "Book returned successfully", Book: book}, nil
}

// AcceptReturn lets the owner confirm a reported return.
func (s *Service) AcceptReturn(ctx context.Context, ownerID, bookID int) (model.BorrowResponse, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BorrowResponse{}, errs.ErrBookNotFound
	}
	if book.OwnerID != ownerID {
		return model.BorrowResponse{}, errs.ErrNotOwner
	}
	if err := s.repo.AcceptReturn(ctx, bookID); err != nil {
		return model.BorrowResponse{}, err
	}
	book, err = s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.BorrowResponse{}, err
	}
	s.publish(kafka.EventStats{Type: kafka.EventReturnAccepted, UserID: ownerID, BookID: bookID})
	return model.BorrowResponse{Message: "Return accepted", Book: book}, nil
}

func (s *Service) MyBorrowed(ctx context.Context, userID int) ([]model.Book, error) {
	return s.repo.BorrowedBy(ctx, userID)
}

func (s *Service) MyBorrowHistory(ctx context.Context, userID int) ([]model.Book, error) {
	return s.repo.BorrowHistoryBooks(ctx, userID)
}

func (s *Service) MyLent(ctx context.Context, ownerID int) ([]model.Book, error) {
	return s.repo.LentBy(ctx, ownerID)
}

func (s *Service) ActiveRequests(ctx context.Context, ownerID int) ([]model.Book, error) {
	return s.repo.ActiveRequests(ctx, ownerID)
}
