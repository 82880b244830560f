package handler

import (
	"context"

	"github.com/booklendiverse/booklend-service/internal/model"
	"github.com/booklendiverse/booklend-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ UserService    = (*service.Service)(nil)
	_ BookService    = (*service.Service)(nil)
	_ BorrowService  = (*service.Service)(nil)
	_ ReviewService  = (*service.Service)(nil)
	_ PaymentService = (*service.Service)(nil)
	_ ForumService   = (*service.Service)(nil)
)

type UserService interface {
	SignUp(ctx context.Context, req model.SignUpRequest) (model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Me(ctx context.Context, userID int) (model.User, error)
	UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (model.User, error)
	PublicProfile(ctx context.Context, id int) (model.User, error)
	RateUser(ctx context.Context, raterID, userID int, req model.ReviewRequest) error
	UserRatings(ctx context.Context, userID int) ([]model.UserRating, error)
}

type BookService interface {
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetBookDetail(ctx context.Context, id int) (model.BookDetail, error)
	CreateBook(ctx context.Context, ownerID int, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, userID, bookID int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, userID, bookID int) error
	MyBooks(ctx context.Context, ownerID int) ([]model.Book, error)
	Recommendations(ctx context.Context, userID int) ([]model.Book, error)
	ToggleBookmark(ctx context.Context, userID, bookID int) (model.BookmarkResponse, error)
}

type BorrowService interface {
	Borrow(ctx context.Context, userID, bookID int) (model.BorrowResponse, error)
	Return(ctx context.Context, userID, bookID int, req model.ReturnRequest) (model.BorrowResponse, error)
	AcceptReturn(ctx context.Context, ownerID, bookID int) (model.BorrowResponse, error)
	MyBorrowed(ctx context.Context, userID int) ([]model.Book, error)
	MyBorrowHistory(ctx context.Context, userID int) ([]model.Book, error)
	MyLent(ctx context.Context, ownerID int) ([]model.Book, error)
	ActiveRequests(ctx context.Context, ownerID int) ([]model.Book, error)
}

type ReviewService interface {
	ListReviews(ctx context.Context, bookID int) ([]model.Review, error)
	AddReview(ctx context.Context, userID, bookID int, req model.ReviewRequest) (model.Review, error)
	UpdateReview(ctx context.Context, userID, bookID, reviewID int, req model.ReviewRequest) (model.Review, error)
	DeleteReview(ctx context.Context, userID, bookID, reviewID int) error
}

type PaymentService interface {
	CreateOrder(ctx context.Context, buyerID int, req model.CreateOrderRequest) (model.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, req model.VerifyPaymentRequest) (model.VerifyPaymentResponse, error)
	MyTransactions(ctx context.Context, userID int) ([]model.Transaction, error)
	TicketLookup(ctx context.Context, userID int, isAdmin bool, ticketID string) (model.Transaction, error)
	AllTransactions(ctx context.Context) ([]model.Transaction, error)
}

type ForumService interface {
	ListPosts(ctx context.Context, filter model.PostFilter) (model.PostList, error)
	CreatePost(ctx context.Context, authorID int, req model.CreatePostRequest) (model.ForumPost, error)
	GetPost(ctx context.Context, id int) (model.ForumPost, error)
	AddComment(ctx context.Context, authorID, postID int, req model.CommentRequest) (model.ForumComment, error)
	ToggleLike(ctx context.Context, userID, postID int) (model.LikeResponse, error)
}
