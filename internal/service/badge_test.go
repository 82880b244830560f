package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/booklendiverse/booklend-service/internal/model"
)

func TestBadgesFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{"fresh account", 0, []string{model.BadgeNewUser}},
		{"below bronze", 4, []string{model.BadgeNewUser}},
		{"bronze", 5, []string{model.BadgeNewUser, model.BadgeBronzeLender}},
		{"silver", 15, []string{model.BadgeNewUser, model.BadgeBronzeLender, model.BadgeSilverLender}},
		{"gold", 30, []string{model.BadgeNewUser, model.BadgeBronzeLender, model.BadgeSilverLender, model.BadgeGoldLender}},
		{"platinum", 50, []string{model.BadgeNewUser, model.BadgeBronzeLender, model.BadgeSilverLender, model.BadgeGoldLender, model.BadgePlatinumLender}},
		{"beyond platinum", 500, []string{model.BadgeNewUser, model.BadgeBronzeLender, model.BadgeSilverLender, model.BadgeGoldLender, model.BadgePlatinumLender}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, BadgesFor(tt.count))
		})
	}
}

func TestBadgesFor_Monotone(t *testing.T) {
	t.Parallel()
	prev := 0
	for count := 0; count <= 60; count++ {
		got := len(BadgesFor(count))
		require.GreaterOrEqual(t, got, prev, "badge count dropped at %d transactions", count)
		prev = got
	}
}
