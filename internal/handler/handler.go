package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/pkg/auth"
	md "github.com/booklendiverse/booklend-service/pkg/middleware"
	"github.com/booklendiverse/booklend-service/pkg/validate"
	_ "github.com/booklendiverse/booklend-service/swagger"
)

type Config struct {
	JWTSecret   []byte
	AllowOrigin string
}

type Handler struct {
	userSvc    UserService
	bookSvc    BookService
	borrowSvc  BorrowService
	reviewSvc  ReviewService
	paymentSvc PaymentService
	forumSvc   ForumService
	log        *zap.Logger
}

func New(
	userSvc UserService,
	bookSvc BookService,
	borrowSvc BorrowService,
	reviewSvc ReviewService,
	paymentSvc PaymentService,
	forumSvc ForumService,
	log *zap.Logger,
) *Handler {
	return &Handler{
		userSvc:    userSvc,
		bookSvc:    bookSvc,
		borrowSvc:  borrowSvc,
		reviewSvc:  reviewSvc,
		paymentSvc: paymentSvc,
		forumSvc:   forumSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter(cfg Config) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	allowOrigins := []string{"*"}
	if cfg.AllowOrigin != "" {
		allowOrigins = []string{cfg.AllowOrigin}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	jwtAuth := md.JwtAuthentication(cfg.JWTSecret)

	users := api.Group("/users")
	users.POST("/signup", h.SignUp)
	users.POST("/login", h.Login)
	users.POST("/logout", h.Logout)
	users.GET("/me", h.Me, jwtAuth)
	users.PUT("/profile", h.UpdateProfile, jwtAuth)
	users.GET("/:id", h.PublicProfile)
	users.GET("/:id/ratings", h.UserRatings)

	books := api.Group("/books")
	books.GET("", h.ListBooks)
	books.GET("/user/:userId", h.BooksByUser)
	books.GET("/recommendations/:userId", h.Recommendations, jwtAuth)
	books.GET("/:id", h.GetBook)
	books.POST("", h.CreateBook, jwtAuth)
	books.PUT("/:id", h.UpdateBook, jwtAuth)
	books.DELETE("/:id", h.DeleteBook, jwtAuth)
	books.POST("/:id/bookmark", h.ToggleBookmark, jwtAuth)
	books.GET("/:id/reviews", h.ListReviews)
	books.POST("/:id/reviews", h.AddReview, jwtAuth)

	reviews := api.Group("/reviews")
	reviews.GET("/book/:bookId", h.ListReviews)
	reviews.POST("/book/:bookId", h.AddReview, jwtAuth)
	reviews.PUT("/book/:bookId/review/:reviewId", h.UpdateReview, jwtAuth)
	reviews.DELETE("/book/:bookId/review/:reviewId", h.DeleteReview, jwtAuth)
	reviews.POST("/user/:userId", h.RateUser, jwtAuth)

	borrow := api.Group("/borrow", jwtAuth)
	borrow.POST("/request/:bookId", h.Borrow)
	borrow.POST("/return/:bookId", h.Return)
	borrow.POST("/accept-return/:bookId", h.AcceptReturn)
	borrow.GET("/my-borrowed", h.MyBorrowed)
	borrow.GET("/my-history", h.MyBorrowHistory)
	borrow.GET("/my-lent", h.MyLent)
	borrow.GET("/my-requests", h.ActiveRequests)

	payments := api.Group("/payments", jwtAuth)
	payments.POST("/create-order", h.CreateOrder)
	payments.POST("/verify-payment", h.VerifyPayment)
	payments.GET("/history", h.MyTransactions)
	payments.GET("/ticket/:ticketId", h.TicketLookup)
	payments.GET("/admin/all", h.AllTransactions, adminOnly)

	forum := api.Group("/forum")
	forum.GET("/posts", h.ListPosts)
	forum.POST("/posts", h.CreatePost, jwtAuth)
	forum.GET("/posts/:id", h.GetPost)
	forum.POST("/posts/:id/comments", h.AddComment, jwtAuth)
	forum.POST("/posts/:id/like", h.ToggleLike, jwtAuth)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// adminOnly must run after JwtAuthentication.
func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, err := auth.GetRole(c.Request().Context())
		if err != nil || role != auth.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errs.ErrAdminOnly.Error())
		}
		return next(c)
	}
}

// userID pulls the authenticated user out of the request context.
func userID(c echo.Context) (int, error) {
	id, err := auth.GetUserID(c.Request().Context())
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.Errorf("%s is invalid", name).Error())
	}
	return id, nil
}

// httpError maps service sentinels onto HTTP statuses.
func httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrBadCreds):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrBookNotFound),
		errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrNotOwner),
		errors.Is(err, errs.ErrNotBorrower),
		errors.Is(err, errs.ErrForbidden),
		errors.Is(err, errs.ErrAdminOnly):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrUserExists),
		errors.Is(err, errs.ErrNotAvailable),
		errors.Is(err, errs.ErrOwnBook),
		errors.Is(err, errs.ErrAlreadyReview),
		errors.Is(err, errs.ErrNotReturned),
		errors.Is(err, errs.ErrNoUpi),
		errors.Is(err, errs.ErrBadSignature),
		errors.Is(err, errs.ErrDuplicateTicket):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
