package titles

// Ledger tracks XP and the set of deeds already paid, so repeating a
// deed never pays twice.
type Ledger struct {
	xp     int
	earned map[string]bool
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{earned: make(map[string]bool)}
}

// RestoredLedger rebuilds a ledger from persisted XP and earned keys.
func RestoredLedger(xp int, keys []string) *Ledger {
	l := NewLedger()
	l.xp = xp
	for _, k := range keys {
		l.earned[k] = true
	}
	return l
}

// AwardOnce grants points for the keyed deed. It returns true only the
// first time the key is seen; later calls leave the XP untouched.
func (l *Ledger) AwardOnce(key string, points int) bool {
	if l.earned[key] {
		return false
	}
	l.earned[key] = true
	l.xp += points
	return true
}

// Award grants points unconditionally, for deeds that may repeat.
func (l *Ledger) Award(points int) {
	l.xp += points
}

// Earned reports whether the keyed deed has already paid out.
func (l *Ledger) Earned(key string) bool {
	return l.earned[key]
}

// EarnedKeys returns the keys of all paid deeds, for persistence.
func (l *Ledger) EarnedKeys() []string {
	keys := make([]string, 0, len(l.earned))
	for k := range l.earned {
		keys = append(keys, k)
	}
	return keys
}

// XP returns the current total.
func (l *Ledger) XP() int {
	return l.xp
}

// Level returns the current level derived from XP.
func (l *Ledger) Level() int {
	return Level(l.xp)
}

// Title returns the current title derived from XP.
func (l *Ledger) Title() string {
	return TitleFor(l.xp)
}
