package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/model"
	"github.com/booklendiverse/booklend-service/pkg/kafka"
)

const (
	defaultRentDays      = 7
	ticketCreateAttempts = 3
)

// orderAmount prices the order: per-day rent times the duration (default
// seven days) for rentals, the flat price for sales. Rentals also get an end
// date.
func orderAmount(book model.Book, duration int) (float64, *time.Time) {
	if book.TransactionType != model.TransactionRent {
		return book.Price, nil
	}
	if duration <= 0 {
		duration = defaultRentDays
	}
	end := time.Now().AddDate(0, 0, duration)
	return book.RentPrice * float64(duration), &end
}

// CreateOrder opens a pending transaction and registers the order with the
// payment gateway. Rentals are priced per day; purchases use the flat price.
func (s *Service) CreateOrder(ctx context.Context, buyerID int, req model.CreateOrderRequest) (model.CreateOrderResponse, error) {
	book, err := s.repo.GetBook(ctx, req.BookID)
	if err != nil {
		return model.CreateOrderResponse{}, errs.ErrBookNotFound
	}
	if !book.Available {
		return model.CreateOrderResponse{}, errs.ErrNotAvailable
	}
	if book.OwnerID == buyerID {
		return model.CreateOrderResponse{}, errs.ErrOwnBook
	}
	seller, err := s.repo.GetUserByID(ctx, book.OwnerID)
	if err != nil {
		return model.CreateOrderResponse{}, err
	}
	if seller.UpiID == "" {
		return model.CreateOrderResponse{}, errs.ErrNoUpi
	}

	amount, endDate := orderAmount(book, req.Duration)

	var tx model.Transaction
	for attempt := 0; attempt < ticketCreateAttempts; attempt++ {
		ticket, err := NewTicketID()
		if err != nil {
			return model.CreateOrderResponse{}, errors.Wrap(err, "ticket id")
		}
		order, err := s.gw.CreateOrder(ctx, int64(amount*100), ticket)
		if err != nil {
			return model.CreateOrderResponse{}, err
		}
		tx, err = s.repo.CreateTransaction(ctx, model.Transaction{
			BuyerID:         buyerID,
			SellerID:        book.OwnerID,
			BookID:          book.ID,
			Amount:          amount,
			TransactionType: book.TransactionType,
			PaymentID:       order.ID,
			TicketID:        ticket,
			StartDate:       time.Now(),
			EndDate:         endDate,
		})
		if err != nil {
			if errors.Is(err, errs.ErrDuplicateTicket) {
				s.log.Warn("ticket collision, retrying", zap.String("ticket", ticket))
				continue
			}
			return model.CreateOrderResponse{}, err
		}
		return model.CreateOrderResponse{
			OrderID:       order.ID,
			Amount:        amount,
			Currency:      "INR",
			TransactionID: tx.ID,
			TicketID:      tx.TicketID,
			Key:           s.gw.KeyID(),
			SellerUpi:     seller.UpiID,
		}, nil
	}
	return model.CreateOrderResponse{}, errs.ErrDuplicateTicket
}

// VerifyPayment checks the gateway signature and completes the transaction.
// Completion is idempotent: a retried callback finds the row already
// completed and gets the same successful response without repeating the side
// effects.
func (s *Service) VerifyPayment(ctx context.Context, req model.VerifyPaymentRequest) (model.VerifyPaymentResponse, error) {
	if !s.gw.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return model.VerifyPaymentResponse{}, errs.ErrBadSignature
	}
	tx, completedNow, err := s.repo.CompleteTransaction(ctx, req.TransactionID, req.PaymentID)
	if err != nil {
		return model.VerifyPaymentResponse{}, err
	}
	if completedNow {
		s.awardBadges(ctx, tx.BuyerID)
		s.awardBadges(ctx, tx.SellerID)
		s.publish(kafka.EventStats{
			Type:   kafka.EventPaymentCompleted,
			UserID: tx.BuyerID,
			BookID: tx.BookID,
			Amount: tx.Amount,
		})
	}
	return model.VerifyPaymentResponse{
		Success:  true,
		TicketID: tx.TicketID,
		Message:  "Payment verified successfully",
	}, nil
}

// awardBadges refreshes the user's badge set after a completed transaction.
// Badge grants are monotone and inserted with on-conflict-do-nothing, so
// running after commit is safe.
func (s *Service) awardBadges(ctx context.Context, userID int) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		s.log.Error("award badges: load user", zap.Int("user", userID), zap.Error(err))
		return
	}
	if err := s.repo.AddBadges(ctx, userID, BadgesFor(user.TransactionCount)); err != nil {
		s.log.Error("award badges", zap.Int("user", userID), zap.Error(err))
	}
}

func (s *Service) MyTransactions(ctx context.Context, userID int) ([]model.Transaction, error) {
	return s.repo.TransactionsForUser(ctx, userID)
}

// TicketLookup resolves a pickup ticket. Only the two parties to the
// transaction (or an admin) may see it.
func (s *Service) TicketLookup(ctx context.Context, userID int, isAdmin bool, ticketID string) (model.Transaction, error) {
	tx, err := s.repo.TransactionByTicket(ctx, ticketID)
	if err != nil {
		return model.Transaction{}, err
	}
	if !isAdmin && tx.BuyerID != userID && tx.SellerID != userID {
		return model.Transaction{}, errs.ErrForbidden
	}
	return tx, nil
}

func (s *Service) AllTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.repo.AllTransactions(ctx)
}
