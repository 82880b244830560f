package model

type SignUpRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Location Location `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type UpdateProfileRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Phone    string    `json:"phone"`
	Bio      string    `json:"bio"`
	UpiID    string    `json:"upiId"`
	Location *Location `json:"location"`
}

type CreateBookRequest struct {
	Title           string          `json:"title" validate:"required"`
	Author          string          `json:"author" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	Price           float64         `json:"price" validate:"gte=0"`
	RentPrice       float64         `json:"rentPrice" validate:"gte=0"`
	TransactionType TransactionType `json:"transactionType" validate:"omitempty,oneof=rent buy"`
	Condition       Condition       `json:"condition"`
	Genre           []string        `json:"genre"`
	CoverImage      string          `json:"coverImage"`
	Language        string          `json:"language"`
	Location        Location        `json:"location"`
}

type UpdateBookRequest struct {
	Title       *string    `json:"title"`
	Author      *string    `json:"author"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price"`
	RentPrice   *float64   `json:"rentPrice"`
	Condition   *Condition `json:"condition"`
	Genre       []string   `json:"genre"`
	CoverImage  *string    `json:"coverImage"`
	Language    *string    `json:"language"`
}

type BookFilter struct {
	Genre         []string
	AvailableOnly bool
	MinRating     float64
	MaxPrice      float64
	Search        string
	Sort          string
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReturnRequest struct {
	BorrowerRating  *int   `json:"borrowerRating" validate:"omitempty,min=1,max=5"`
	BorrowerComment string `json:"borrowerComment"`
}

type BorrowResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

type BookmarkResponse struct {
	Message      string `json:"message"`
	IsBookmarked bool   `json:"isBookmarked"`
}

type CreateOrderRequest struct {
	BookID   int `json:"bookId" validate:"required"`
	Duration int `json:"duration" validate:"omitempty,gte=1"`
}

type CreateOrderResponse struct {
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransactionID int     `json:"transactionId"`
	TicketID      string  `json:"ticketId"`
	Key           string  `json:"key"`
	SellerUpi     string  `json:"sellerUpi"`
}

type VerifyPaymentRequest struct {
	PaymentID     string `json:"razorpay_payment_id" validate:"required"`
	OrderID       string `json:"razorpay_order_id" validate:"required"`
	Signature     string `json:"razorpay_signature" validate:"required"`
	TransactionID int    `json:"transactionId" validate:"required"`
}

type VerifyPaymentResponse struct {
	Success  bool   `json:"success"`
	TicketID string `json:"ticketId"`
	Message  string `json:"message"`
}

type PostFilter struct {
	Search string
	Tag    string
	Page   int
	Limit  int
}

type CreatePostRequest struct {
	Title   string   `json:"title" validate:"required,max=200"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type PostList struct {
	Posts      []ForumPost `json:"posts"`
	Pagination Pagination  `json:"pagination"`
}

type LikeResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
	Likes   int    `json:"likes"`
}
