package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/booklendiverse/booklend-service/internal/model"
)

func TestOrderAmount(t *testing.T) {
	t.Parallel()
	rentBook := model.Book{TransactionType: model.TransactionRent, RentPrice: 25, Price: 500}
	buyBook := model.Book{TransactionType: model.TransactionBuy, RentPrice: 25, Price: 500}

	tests := []struct {
		name     string
		book     model.Book
		duration int
		want     float64
		wantEnd  bool
	}{
		{"rent for 10 days", rentBook, 10, 250, true},
		{"rent defaults to a week", rentBook, 0, 175, true},
		{"rent ignores negative duration", rentBook, -3, 175, true},
		{"buy uses flat price", buyBook, 10, 500, false},
		{"buy without duration", buyBook, 0, 500, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			amount, end := orderAmount(tt.book, tt.duration)
			require.Equal(t, tt.want, amount)
			if tt.wantEnd {
				require.NotNil(t, end)
				require.True(t, end.After(time.Now()))
			} else {
				require.Nil(t, end)
			}
		})
	}
}
