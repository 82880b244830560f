package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/booklendiverse/booklend-service/internal/errs"
	"github.com/booklendiverse/booklend-service/internal/handler"
	service_mocks "github.com/booklendiverse/booklend-service/internal/handler/mocks"
	"github.com/booklendiverse/booklend-service/internal/model"
	"github.com/booklendiverse/booklend-service/pkg/auth"
	md "github.com/booklendiverse/booklend-service/pkg/middleware"
	"github.com/booklendiverse/booklend-service/pkg/validate"
)

var testSecret = []byte("test-secret")

func testToken(t *testing.T, userID int, role string) string {
	t.Helper()
	token, err := auth.NewToken(testSecret, userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func newHandler(t *testing.T, c *gomock.Controller) (*handler.Handler, *mocks) {
	t.Helper()
	m := &mocks{
		user:    service_mocks.NewMockUserService(c),
		book:    service_mocks.NewMockBookService(c),
		borrow:  service_mocks.NewMockBorrowService(c),
		review:  service_mocks.NewMockReviewService(c),
		payment: service_mocks.NewMockPaymentService(c),
		forum:   service_mocks.NewMockForumService(c),
	}
	log := zap.NewExample().Named("test")
	return handler.New(m.user, m.book, m.borrow, m.review, m.payment, m.forum, log), m
}

type mocks struct {
	user    *service_mocks.MockUserService
	book    *service_mocks.MockBookService
	borrow  *service_mocks.MockBorrowService
	review  *service_mocks.MockReviewService
	payment *service_mocks.MockPaymentService
	forum   *service_mocks.MockForumService
}

func TestHandler_Borrow(t *testing.T) {
	t.Parallel()
	type input struct {
		userID int
		bookID int
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m *mocks, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(m *mocks, inp input) {
				m.borrow.EXPECT().
					Borrow(gomock.Any(), inp.userID, inp.bookID).
					Return(model.BorrowResponse{
						Message: "Book borrowed successfully",
						Book:    model.Book{ID: inp.bookID, Title: "Dune", Author: "Frank Herbert", Genre: []string{}, CurrentBorrower: &inp.userID},
					}, nil)
			},
			input: input{userID: 7, bookID: 3},
			response: response{
				expectedCode: http.StatusOK,
			},
		},
		{
			name: "err. not available",
			mockBehavior: func(m *mocks, inp input) {
				m.borrow.EXPECT().
					Borrow(gomock.Any(), inp.userID, inp.bookID).
					Return(model.BorrowResponse{}, errs.ErrNotAvailable)
			},
			input: input{userID: 7, bookID: 3},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Book is not available"}`,
			},
		},
		{
			name: "err. own book",
			mockBehavior: func(m *mocks, inp input) {
				m.borrow.EXPECT().
					Borrow(gomock.Any(), inp.userID, inp.bookID).
					Return(model.BorrowResponse{}, errs.ErrOwnBook)
			},
			input: input{userID: 7, bookID: 3},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"You cannot borrow your own book"}`,
			},
		},
		{
			name: "err. book not found",
			mockBehavior: func(m *mocks, inp input) {
				m.borrow.EXPECT().
					Borrow(gomock.Any(), inp.userID, inp.bookID).
					Return(model.BorrowResponse{}, errs.ErrBookNotFound)
			},
			input: input{userID: 7, bookID: 404},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Book not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			h, m := newHandler(t, c)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/borrow/request/:bookId", h.Borrow, md.JwtAuthentication(testSecret))

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/borrow/request/%d", tt.input.bookID), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set("Authorization", "Bearer "+testToken(t, tt.input.userID, auth.RoleUser))
			w := httptest.NewRecorder()

			tt.mockBehavior(m, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Borrow_NoToken(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	h, _ := newHandler(t, c)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/api/borrow/request/:bookId", h.Borrow, md.JwtAuthentication(testSecret))

	r := httptest.NewRequest(http.MethodPost, "/api/borrow/request/1", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"message":"No token, authorization denied"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	type input struct {
		userID int
		bookID int
		body   string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m *mocks, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok with rating",
			mockBehavior: func(m *mocks, inp input) {
				rating := 5
				m.borrow.EXPECT().
					Return(gomock.Any(), inp.userID, inp.bookID, model.ReturnRequest{BorrowerRating: &rating, BorrowerComment: "great"}).
					Return(model.BorrowResponse{Message: "Book returned successfully"}, nil)
			},
			input: input{userID: 7, bookID: 3, body: `{"borrowerRating":5,"borrowerComment":"great"}`},
			response: response{
				expectedCode: http.StatusOK,
			},
		},
		{
			name: "err. not the borrower",
			mockBehavior: func(m *mocks, inp input) {
				m.borrow.EXPECT().
					Return(gomock.Any(), inp.userID, inp.bookID, model.ReturnRequest{}).
					Return(model.BorrowResponse{}, errs.ErrNotBorrower)
			},
			input: input{userID: 8, bookID: 3, body: `{}`},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"You are not currently borrowing this book"}`,
			},
		},
		{
			name:         "err. rating out of range",
			mockBehavior: func(m *mocks, inp input) {},
			input:        input{userID: 7, bookID: 3, body: `{"borrowerRating":9}`},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			h, m := newHandler(t, c)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/borrow/return/:bookId", h.Return, md.JwtAuthentication(testSecret))

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/borrow/return/%d", tt.input.bookID), strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set("Authorization", "Bearer "+testToken(t, tt.input.userID, auth.RoleUser))
			w := httptest.NewRecorder()

			tt.mockBehavior(m, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_SignUp(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m *mocks)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"name":"Asha","email":"asha@example.com","password":"secret12"}`,
			mockBehavior: func(m *mocks) {
				m.user.EXPECT().
					SignUp(gomock.Any(), model.SignUpRequest{Name: "Asha", Email: "asha@example.com", Password: "secret12"}).
					Return(model.AuthResponse{Message: "User registered successfully", Token: "tok"}, nil)
			},
			response: response{expectedCode: http.StatusCreated},
		},
		{
			name: "err. duplicate email",
			body: `{"name":"Asha","email":"asha@example.com","password":"secret12"}`,
			mockBehavior: func(m *mocks) {
				m.user.EXPECT().
					SignUp(gomock.Any(), gomock.Any()).
					Return(model.AuthResponse{}, errs.ErrUserExists)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"User already exists"}`,
			},
		},
		{
			name:         "err. short password",
			body:         `{"name":"Asha","email":"asha@example.com","password":"ab"}`,
			mockBehavior: func(m *mocks) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name:         "err. invalid email",
			body:         `{"name":"Asha","email":"not-an-email","password":"secret12"}`,
			mockBehavior: func(m *mocks) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			h, m := newHandler(t, c)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/users/signup", h.SignUp)

			r := httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	h, m := newHandler(t, c)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/api/users/login", h.Login)

	m.user.EXPECT().
		Login(gomock.Any(), model.LoginRequest{Email: "asha@example.com", Password: "wrong"}).
		Return(model.AuthResponse{}, errs.ErrBadCreds)

	r := httptest.NewRequest(http.MethodPost, "/api/users/login",
		strings.NewReader(`{"email":"asha@example.com","password":"wrong"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"message":"Invalid credentials"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_AddReview(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m *mocks)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"rating":4,"comment":"solid read"}`,
			mockBehavior: func(m *mocks) {
				m.review.EXPECT().
					AddReview(gomock.Any(), 7, 3, model.ReviewRequest{Rating: 4, Comment: "solid read"}).
					Return(model.Review{ID: 1, BookID: 3, UserID: 7, Rating: 4, Comment: "solid read"}, nil)
			},
			response: response{expectedCode: http.StatusCreated},
		},
		{
			name: "err. already reviewed",
			body: `{"rating":4}`,
			mockBehavior: func(m *mocks) {
				m.review.EXPECT().
					AddReview(gomock.Any(), 7, 3, gomock.Any()).
					Return(model.Review{}, errs.ErrAlreadyReview)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Book already reviewed"}`,
			},
		},
		{
			name:         "err. rating required",
			body:         `{"comment":"no stars"}`,
			mockBehavior: func(m *mocks) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			h, m := newHandler(t, c)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/books/:id/reviews", h.AddReview, md.JwtAuthentication(testSecret))

			r := httptest.NewRequest(http.MethodPost, "/api/books/3/reviews", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set("Authorization", "Bearer "+testToken(t, 7, auth.RoleUser))
			w := httptest.NewRecorder()

			tt.mockBehavior(m)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_VerifyPayment(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m *mocks)

	body := `{"razorpay_payment_id":"pay_1","razorpay_order_id":"order_1","razorpay_signature":"sig","transactionId":11}`
	req := model.VerifyPaymentRequest{PaymentID: "pay_1", OrderID: "order_1", Signature: "sig", TransactionID: 11}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: body,
			mockBehavior: func(m *mocks) {
				m.payment.EXPECT().
					VerifyPayment(gomock.Any(), req).
					Return(model.VerifyPaymentResponse{Success: true, TicketID: "BLD-XYZ-ABC123", Message: "Payment verified successfully"}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"ticketId":"BLD-XYZ-ABC123","message":"Payment verified successfully"}`,
			},
		},
		{
			name: "err. bad signature",
			body: body,
			mockBehavior: func(m *mocks) {
				m.payment.EXPECT().
					VerifyPayment(gomock.Any(), req).
					Return(model.VerifyPaymentResponse{}, errs.ErrBadSignature)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid payment signature"}`,
			},
		},
		{
			name:         "err. missing fields",
			body:         `{"razorpay_payment_id":"pay_1"}`,
			mockBehavior: func(m *mocks) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "err. internal",
			body: body,
			mockBehavior: func(m *mocks) {
				m.payment.EXPECT().
					VerifyPayment(gomock.Any(), req).
					Return(model.VerifyPaymentResponse{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			h, m := newHandler(t, c)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/payments/verify-payment", h.VerifyPayment, md.JwtAuthentication(testSecret))

			r := httptest.NewRequest(http.MethodPost, "/api/payments/verify-payment", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set("Authorization", "Bearer "+testToken(t, 7, auth.RoleUser))
			w := httptest.NewRecorder()

			tt.mockBehavior(m)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_AllTransactions_AdminOnly(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	h, m := newHandler(t, c)

	e := h.NewRouter(handler.Config{JWTSecret: testSecret})

	t.Run("forbidden for user role", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/payments/admin/all", http.NoBody)
		r.Header.Set("Authorization", "Bearer "+testToken(t, 7, auth.RoleUser))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("ok for admin", func(t *testing.T) {
		m.payment.EXPECT().
			AllTransactions(gomock.Any()).
			Return([]model.Transaction{}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/payments/admin/all", http.NoBody)
		r.Header.Set("Authorization", "Bearer "+testToken(t, 1, auth.RoleAdmin))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_ListBooks_FilterParsing(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	h, m := newHandler(t, c)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/books", h.ListBooks)

	m.book.EXPECT().
		ListBooks(gomock.Any(), model.BookFilter{
			Genre:         []string{"Fantasy", "Sci-Fi"},
			AvailableOnly: true,
			MinRating:     3.5,
			MaxPrice:      200,
			Search:        "dune",
			Sort:          model.SortRating,
		}).
		Return([]model.Book{}, nil)

	r := httptest.NewRequest(http.MethodGet,
		"/api/books?genre=Fantasy,Sci-Fi&available=true&minRating=3.5&maxPrice=200&search=dune&sort=rating", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", strings.Trim(w.Body.String(), "\n"))
}
