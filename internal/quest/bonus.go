package quest

import (
	"math/rand"
	"strings"
	"time"
)

// returnGapDays is how long the learner must be away before the
// welcome-back banner shows.
const returnGapDays = 3

// XPChatExchange is the XP paid for every chat exchange with Minaria.
const XPChatExchange = 10

// BonusItem is a small present Minaria hands out once per day.
type BonusItem struct {
	Name string
	XP   int
}

var bonusItems = []BonusItem{
	{Name: "Mini Potion", XP: 5},
	{Name: "Lucky Candy", XP: 10},
	{Name: "Fluffy Furball", XP: 8},
}

// TouchPlayDate records today as the last play day. The welcome-back
// banner is raised first, so a gap of three or more days is still
// visible after the update. Called once at startup.
func (s *State) TouchPlayDate(today time.Time) {
	t := today.Format(time.DateOnly)

	s.ShowReturnBanner = false
	if s.LastPlayDate != "" {
		if last, err := time.Parse(time.DateOnly, s.LastPlayDate); err == nil {
			if int(today.Sub(last).Hours()/24) >= returnGapDays {
				s.ShowReturnBanner = true
			}
		}
	}
	s.LastPlayDate = t

	// A new calendar day also re-arms the login bonus.
	if s.LastLoginDate != t {
		s.LastLoginDate = t
		s.LoginBonusGivenToday = false
	}
}

// WantsBonus reports whether a chat message is asking for the daily
// login bonus.
func WantsBonus(input string) bool {
	return strings.Contains(strings.ToLower(input), "bonus")
}

// ClaimLoginBonus hands out the daily present. The second claim on the
// same day returns false and pays nothing.
func (s *State) ClaimLoginBonus(rng *rand.Rand) (BonusItem, bool) {
	if s.LoginBonusGivenToday {
		return BonusItem{}, false
	}
	item := bonusItems[rng.Intn(len(bonusItems))]
	s.LoginBonusGivenToday = true
	s.Ledger.Award(item.XP)
	return item, true
}

// AwardChatExchange pays the per-exchange chat XP.
func (s *State) AwardChatExchange() {
	s.Ledger.Award(XPChatExchange)
}
