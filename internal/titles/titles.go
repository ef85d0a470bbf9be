// Package titles maps accumulated XP to learner levels and honorific
// titles, and guards XP awards so each deed pays out exactly once.
package titles

// XPPerLevel is the amount of XP needed to advance one level.
const XPPerLevel = 50

// Tier is one rung of the title ladder.
type Tier struct {
	MinXP int
	Name  string
}

// Tiers lists the title ladder in ascending XP order. TitleFor depends
// on this ordering.
var Tiers = []Tier{
	{MinXP: 0, Name: "🌙 Star-Gazer"},
	{MinXP: 50, Name: "🌱 Poyon Meadow Wanderer"},
	{MinXP: 120, Name: "💧 Little Bug Healer"},
	{MinXP: 250, Name: "🕊 Minaria's Walking Companion"},
	{MinXP: 400, Name: "✨ Light of the Forest"},
	{MinXP: 600, Name: "🌈 Guardian of the Cocomoa Kingdom"},
}

// TitleFor returns the highest title whose threshold the given XP meets.
func TitleFor(xp int) string {
	name := Tiers[0].Name
	for _, t := range Tiers {
		if xp >= t.MinXP {
			name = t.Name
		}
	}
	return name
}

// Level converts XP to a level, starting at 1.
func Level(xp int) int {
	lvl := xp/XPPerLevel + 1
	if lvl < 1 {
		lvl = 1
	}
	return lvl
}

// NextTier returns the next tier above the given XP, or false when the
// learner already holds the top title.
func NextTier(xp int) (Tier, bool) {
	for _, t := range Tiers {
		if xp < t.MinXP {
			return t, true
		}
	}
	return Tier{}, false
}

// Progress reports where the learner stands between title tiers.
type Progress struct {
	Current Tier
	Next    Tier
	HasNext bool

	// Needed is the XP still missing for Next, zero at the top tier.
	Needed int

	// Ratio is the position within the current tier band,
	// (xp - current.MinXP) / (next.MinXP - current.MinXP), clamped to
	// [0, 1]. At the top tier it is 1.
	Ratio float64
}

// ProgressFor computes the full ladder position for the given XP.
func ProgressFor(xp int) Progress {
	cur := Tiers[0]
	for _, t := range Tiers {
		if xp >= t.MinXP {
			cur = t
		}
	}

	next, ok := NextTier(xp)
	if !ok {
		return Progress{Current: cur, Ratio: 1}
	}

	ratio := float64(xp-cur.MinXP) / float64(next.MinXP-cur.MinXP)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return Progress{
		Current: cur,
		Next:    next,
		HasNext: true,
		Needed:  next.MinXP - xp,
		Ratio:   ratio,
	}
}
