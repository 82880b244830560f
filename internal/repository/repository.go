package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/booklendiverse/booklend-service/internal/model"
)

type Repository interface {
	// users
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)
	UpdateUser(ctx context.Context, id int, req model.UpdateProfileRequest) (model.User, error)
	GetBadges(ctx context.Context, userID int) ([]string, error)
	AddBadges(ctx context.Context, userID int, badges []string) error
	AddUserRating(ctx context.Context, r model.UserRating) error
	ListUserRatings(ctx context.Context, userID int) ([]model.UserRating, error)

	// books
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	IncPopularity(ctx context.Context, id int) error
	CreateBook(ctx context.Context, b model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
	BooksByOwner(ctx context.Context, ownerID int) ([]model.Book, error)
	Recommendations(ctx context.Context, userID int) ([]model.Book, error)
	ToggleBookmark(ctx context.Context, userID, bookID int) (bool, error)

	// reviews
	ListReviews(ctx context.Context, bookID int) ([]model.Review, error)
	GetReview(ctx context.Context, bookID, reviewID int) (model.Review, error)
	AddReview(ctx context.Context, r model.Review) (model.Review, error)
	UpdateReview(ctx context.Context, bookID, reviewID int, req model.ReviewRequest) (model.Review, error)
	DeleteReview(ctx context.Context, bookID, reviewID int) error

	// borrowing
	BorrowBook(ctx context.Context, bookID, borrowerID int) error
	ReturnBook(ctx context.Context, bookID, borrowerID int, req model.ReturnRequest) error
	AcceptReturn(ctx context.Context, bookID int) error
	HistoryForBook(ctx context.Context, bookID int) ([]model.BorrowRecord, error)
	BorrowedBy(ctx context.Context, userID int) ([]model.Book, error)
	BorrowHistoryBooks(ctx context.Context, userID int) ([]model.Book, error)
	LentBy(ctx context.Context, ownerID int) ([]model.Book, error)
	ActiveRequests(ctx context.Context, ownerID int) ([]model.Book, error)

	// transactions
	CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error)
	CompleteTransaction(ctx context.Context, transactionID int, paymentID string) (model.Transaction, bool, error)
	TransactionsForUser(ctx context.Context, userID int) ([]model.Transaction, error)
	TransactionByTicket(ctx context.Context, ticketID string) (model.Transaction, error)
	AllTransactions(ctx context.Context) ([]model.Transaction, error)

	// forum
	ListPosts(ctx context.Context, filter model.PostFilter) (model.PostList, error)
	CreatePost(ctx context.Context, p model.ForumPost) (model.ForumPost, error)
	GetPost(ctx context.Context, id int) (model.ForumPost, error)
	AddComment(ctx context.Context, c model.ForumComment) (model.ForumComment, error)
	ToggleLike(ctx context.Context, postID, userID int) (bool, int, error)

	// events
	InsertEvent(ctx context.Context, e model.Event) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName        = `users`
	userBadgesTableName   = `user_badges`
	userRatingsTableName  = `user_ratings`
	booksTableName        = `books`
	bookGenresTableName   = `book_genres`
	bookmarksTableName    = `bookmarks`
	reviewsTableName      = `reviews`
	borrowingTableName    = `borrowing_history`
	transactionsTableName = `transactions`
	forumPostsTableName   = `forum_posts`
	forumTagsTableName    = `forum_post_tags`
	forumLikesTableName   = `forum_post_likes`
	forumCommentsTable    = `forum_comments`
	eventsTableName       = `events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// inTx runs fn inside a transaction, rolling back on error.
func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
