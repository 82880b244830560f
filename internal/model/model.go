package model

import (
	"strings"
	"time"
)

type Condition string

const (
	ConditionNew        Condition = "New"
	ConditionLikeNew    Condition = "Like New"
	ConditionVeryGood   Condition = "Very Good"
	ConditionGood       Condition = "Good"
	ConditionAcceptable Condition = "Acceptable"
	ConditionPoor       Condition = "Poor"
)

type TransactionType string

const (
	TransactionRent TransactionType = "rent"
	TransactionBuy  TransactionType = "buy"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusRefunded  TransactionStatus = "refunded"
)

const (
	SortNewest     = "newest"
	SortRating     = "rating"
	SortPriceAsc   = "priceAsc"
	SortPriceDesc  = "priceDesc"
	SortPopularity = "popularity"
)

// Badges are a monotone function of the user's transaction count.
const (
	BadgeNewUser        = "new_user"
	BadgeBronzeLender   = "bronze_lender"
	BadgeSilverLender   = "silver_lender"
	BadgeGoldLender     = "gold_lender"
	BadgePlatinumLender = "platinum_lender"
)

type Location struct {
	Address string  `json:"address" db:"address"`
	City    string  `json:"city" db:"city"`
	State   string  `json:"state" db:"state"`
	Lat     float64 `json:"lat" db:"lat"`
	Lng     float64 `json:"lng" db:"lng"`
}

type User struct {
	ID               int       `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email,omitempty" db:"email"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	Phone            string    `json:"phone" db:"phone"`
	Avatar           string    `json:"avatar" db:"avatar"`
	Bio              string    `json:"bio" db:"bio"`
	Location         Location  `json:"location" db:"location"`
	Role             string    `json:"role" db:"role"`
	UpiID            string    `json:"upiId" db:"upi_id"`
	TransactionCount int       `json:"transactionCount" db:"transaction_count"`
	Badges           []string  `json:"badges" db:"-"`
	CreatedAt        time.Time `json:"registeredAt" db:"created_at"`
}

// UserRef is the public shard of a user embedded in other resources.
type UserRef struct {
	ID     int    `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Avatar string `json:"avatar" db:"avatar"`
	City   string `json:"city,omitempty" db:"city"`
	UpiID  string `json:"upiId,omitempty" db:"upi_id"`
}

type Book struct {
	ID              int             `json:"id" db:"id"`
	Title           string          `json:"title" db:"title"`
	Author          string          `json:"author" db:"author"`
	Description     string          `json:"description" db:"description"`
	CoverImage      string          `json:"coverImage" db:"cover_image"`
	Genre           []string        `json:"genre" db:"-"`
	Genres          string          `json:"-" db:"genres"`
	Condition       Condition       `json:"condition" db:"condition"`
	Language        string          `json:"language" db:"language"`
	RentPrice       float64         `json:"rentPrice" db:"rent_price"`
	Price           float64         `json:"price" db:"price"`
	TransactionType TransactionType `json:"transactionType" db:"transaction_type"`
	OwnerID         int             `json:"ownerId" db:"owner_id"`
	Owner           UserRef         `json:"owner" db:"owner"`
	Available       bool            `json:"available" db:"available"`
	CurrentBorrower *int            `json:"currentBorrower" db:"current_borrower_id"`
	Rating          float64         `json:"rating" db:"rating"`
	PopularityScore int             `json:"popularityScore" db:"popularity_score"`
	Location        Location        `json:"location" db:"location"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}

// SplitGenres unpacks the aggregated genres column into the JSON field.
func (b *Book) SplitGenres() {
	if b.Genres == "" {
		b.Genre = []string{}
		return
	}
	b.Genre = strings.Split(b.Genres, ",")
}

type BookDetail struct {
	Book
	Reviews          []Review       `json:"reviews"`
	BorrowingHistory []BorrowRecord `json:"borrowingHistory"`
}

type Review struct {
	ID        int       `json:"id" db:"id"`
	BookID    int       `json:"bookId" db:"book_id"`
	UserID    int       `json:"userId" db:"user_id"`
	User      UserRef   `json:"user" db:"user"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"date" db:"created_at"`
}

type UserRating struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	RaterID   int       `json:"raterId" db:"rater_id"`
	Rater     UserRef   `json:"user" db:"rater"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"date" db:"created_at"`
}

type BorrowRecord struct {
	ID              int        `json:"id" db:"id"`
	BookID          int        `json:"bookId" db:"book_id"`
	BorrowerID      int        `json:"borrowerId" db:"borrower_id"`
	Borrower        UserRef    `json:"borrower" db:"borrower"`
	BorrowDate      time.Time  `json:"borrowDate" db:"borrow_date"`
	ReturnDate      *time.Time `json:"returnDate" db:"return_date"`
	Returned        bool       `json:"returned" db:"returned"`
	ReturnConfirmed bool       `json:"returnConfirmed" db:"return_confirmed"`
	BorrowerRating  *int       `json:"borrowerRating,omitempty" db:"borrower_rating"`
	BorrowerComment string     `json:"borrowerComment,omitempty" db:"borrower_comment"`
}

type Transaction struct {
	ID              int               `json:"id" db:"id"`
	BuyerID         int               `json:"buyerId" db:"buyer_id"`
	SellerID        int               `json:"sellerId" db:"seller_id"`
	BookID          int               `json:"bookId" db:"book_id"`
	Buyer           UserRef           `json:"buyer" db:"buyer"`
	Seller          UserRef           `json:"seller" db:"seller"`
	BookTitle       string            `json:"bookTitle" db:"book_title"`
	BookAuthor      string            `json:"bookAuthor" db:"book_author"`
	Amount          float64           `json:"amount" db:"amount"`
	TransactionType TransactionType   `json:"transactionType" db:"transaction_type"`
	PaymentID       string            `json:"paymentId" db:"payment_id"`
	TicketID        string            `json:"ticketId" db:"ticket_id"`
	Status          TransactionStatus `json:"status" db:"status"`
	StartDate       time.Time         `json:"startDate" db:"start_date"`
	EndDate         *time.Time        `json:"endDate" db:"end_date"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
}

type ForumComment struct {
	ID        int       `json:"id" db:"id"`
	PostID    int       `json:"postId" db:"post_id"`
	AuthorID  int       `json:"authorId" db:"author_id"`
	Author    UserRef   `json:"author" db:"author"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type ForumPost struct {
	ID        int            `json:"id" db:"id"`
	AuthorID  int            `json:"authorId" db:"author_id"`
	Author    UserRef        `json:"author" db:"author"`
	Title     string         `json:"title" db:"title"`
	Content   string         `json:"content" db:"content"`
	Tags      []string       `json:"tags" db:"-"`
	TagsCSV   string         `json:"-" db:"tags"`
	Likes     int            `json:"likes" db:"likes"`
	Comments  []ForumComment `json:"comments,omitempty"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`
}

func (p *ForumPost) SplitTags() {
	if p.TagsCSV == "" {
		p.Tags = []string{}
		return
	}
	p.Tags = strings.Split(p.TagsCSV, ",")
}

type Event struct {
	ID        int       `json:"id" db:"id"`
	Type      string    `json:"type" db:"event_type"`
	UserID    int       `json:"userId" db:"user_id"`
	BookID    *int      `json:"bookId" db:"book_id"`
	Amount    float64   `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
