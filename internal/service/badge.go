package service

import "github.com/booklendiverse/booklend-service/internal/model"

// badgeThresholds maps a completed-transaction count to the lender badge it
// unlocks. Thresholds are cumulative: a user at 30 transactions holds every
// badge up to gold.
var badgeThresholds = []struct {
	count int
	badge string
}{
	{0, model.BadgeNewUser},
	{5, model.BadgeBronzeLender},
	{15, model.BadgeSilverLender},
	{30, model.BadgeGoldLender},
	{50, model.BadgePlatinumLender},
}

// BadgesFor returns every badge earned at the given transaction count. The
// result is monotone in count: badges are never taken away.
func BadgesFor(transactionCount int) []string {
	badges := make([]string, 0, len(badgeThresholds))
	for _, t := range badgeThresholds {
		if transactionCount >= t.count {
			badges = append(badges, t.badge)
		}
	}
	return badges
}
