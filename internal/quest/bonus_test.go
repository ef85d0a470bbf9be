package quest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTouchPlayDateReturnBanner(t *testing.T) {
	s := NewState()

	s.TouchPlayDate(day("2026-08-01"))
	assert.False(t, s.ShowReturnBanner, "first visit shows no welcome-back")

	s.TouchPlayDate(day("2026-08-03"))
	assert.False(t, s.ShowReturnBanner, "two days away is not a return")

	s.TouchPlayDate(day("2026-08-06"))
	assert.True(t, s.ShowReturnBanner, "three days away raises the banner")
	assert.Equal(t, "2026-08-06", s.LastPlayDate)

	s.TouchPlayDate(day("2026-08-06"))
	assert.False(t, s.ShowReturnBanner, "same-day revisit clears it again")
}

func TestLoginBonusOncePerDay(t *testing.T) {
	s := NewState()
	rng := rand.New(rand.NewSource(1))

	s.TouchPlayDate(day("2026-08-01"))

	item, ok := s.ClaimLoginBonus(rng)
	require.True(t, ok)
	assert.NotEmpty(t, item.Name)
	assert.Equal(t, item.XP, s.Ledger.XP())

	_, ok = s.ClaimLoginBonus(rng)
	assert.False(t, ok, "second claim on the same day pays nothing")

	s.TouchPlayDate(day("2026-08-02"))
	_, ok = s.ClaimLoginBonus(rng)
	assert.True(t, ok, "a new day re-arms the bonus")
}

func TestWantsBonus(t *testing.T) {
	assert.True(t, WantsBonus("can I have my login bonus?"))
	assert.True(t, WantsBonus("BONUS please"))
	assert.False(t, WantsBonus("how does print work?"))
}

func TestAwardChatExchange(t *testing.T) {
	s := NewState()
	s.AwardChatExchange()
	s.AwardChatExchange()
	assert.Equal(t, 2*XPChatExchange, s.Ledger.XP(), "chat XP repeats on every exchange")
}
