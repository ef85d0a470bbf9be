package titles

import "testing"

func TestTitleFor(t *testing.T) {
	tests := []struct {
		xp   int
		want string
	}{
		{0, "🌙 Star-Gazer"},
		{49, "🌙 Star-Gazer"},
		{50, "🌱 Poyon Meadow Wanderer"},
		{119, "🌱 Poyon Meadow Wanderer"},
		{120, "💧 Little Bug Healer"},
		{250, "🕊 Minaria's Walking Companion"},
		{400, "✨ Light of the Forest"},
		{599, "✨ Light of the Forest"},
		{600, "🌈 Guardian of the Cocomoa Kingdom"},
		{9999, "🌈 Guardian of the Cocomoa Kingdom"},
	}

	for _, tt := range tests {
		if got := TitleFor(tt.xp); got != tt.want {
			t.Errorf("TitleFor(%d) = %q, want %q", tt.xp, got, tt.want)
		}
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{99, 2},
		{100, 3},
		{600, 13},
	}

	for _, tt := range tests {
		if got := Level(tt.xp); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestNextTier(t *testing.T) {
	next, ok := NextTier(0)
	if !ok || next.MinXP != 50 {
		t.Errorf("NextTier(0) = %+v, %v, want MinXP 50", next, ok)
	}

	next, ok = NextTier(550)
	if !ok || next.MinXP != 600 {
		t.Errorf("NextTier(550) = %+v, %v, want MinXP 600", next, ok)
	}

	if _, ok := NextTier(600); ok {
		t.Error("NextTier(600) should report no further tier")
	}
}

func TestProgressFor(t *testing.T) {
	const eps = 1e-9

	tests := []struct {
		xp         int
		wantNext   string
		wantNeeded int
		wantRatio  float64
	}{
		{0, "🌱 Poyon Meadow Wanderer", 50, 0},
		{49, "🌱 Poyon Meadow Wanderer", 1, 49.0 / 50.0},
		{50, "💧 Little Bug Healer", 70, 0},
		{100, "💧 Little Bug Healer", 20, 50.0 / 70.0},
		{399, "✨ Light of the Forest", 1, 149.0 / 150.0},
	}

	for _, tt := range tests {
		p := ProgressFor(tt.xp)
		if !p.HasNext {
			t.Errorf("ProgressFor(%d).HasNext = false, want true", tt.xp)
			continue
		}
		if p.Next.Name != tt.wantNext {
			t.Errorf("ProgressFor(%d).Next = %q, want %q", tt.xp, p.Next.Name, tt.wantNext)
		}
		if p.Needed != tt.wantNeeded {
			t.Errorf("ProgressFor(%d).Needed = %d, want %d", tt.xp, p.Needed, tt.wantNeeded)
		}
		if diff := p.Ratio - tt.wantRatio; diff > eps || diff < -eps {
			t.Errorf("ProgressFor(%d).Ratio = %v, want %v", tt.xp, p.Ratio, tt.wantRatio)
		}
		if p.Ratio < 0 || p.Ratio > 1 {
			t.Errorf("ProgressFor(%d).Ratio = %v, outside [0,1]", tt.xp, p.Ratio)
		}
	}
}

func TestProgressForTopTier(t *testing.T) {
	for _, xp := range []int{600, 9999} {
		p := ProgressFor(xp)
		if p.HasNext {
			t.Errorf("ProgressFor(%d).HasNext = true, want false", xp)
		}
		if p.Needed != 0 {
			t.Errorf("ProgressFor(%d).Needed = %d, want 0", xp, p.Needed)
		}
		if p.Ratio != 1 {
			t.Errorf("ProgressFor(%d).Ratio = %v, want 1", xp, p.Ratio)
		}
		if p.Current.Name != "🌈 Guardian of the Cocomoa Kingdom" {
			t.Errorf("ProgressFor(%d).Current = %q", xp, p.Current.Name)
		}
	}
}

func TestLedgerAwardOnce(t *testing.T) {
	l := NewLedger()

	if !l.AwardOnce("stage1_0_step0", 10) {
		t.Error("first AwardOnce should pay")
	}
	if l.AwardOnce("stage1_0_step0", 10) {
		t.Error("second AwardOnce for same key should not pay")
	}
	if l.XP() != 10 {
		t.Errorf("XP = %d, want 10", l.XP())
	}

	l.Award(10)
	l.Award(10)
	if l.XP() != 30 {
		t.Errorf("XP after repeatable awards = %d, want 30", l.XP())
	}
}

func TestRestoredLedger(t *testing.T) {
	l := RestoredLedger(75, []string{"stage1_0_step0", "stage2_1"})

	if l.XP() != 75 {
		t.Errorf("XP = %d, want 75", l.XP())
	}
	if l.Level() != 2 {
		t.Errorf("Level = %d, want 2", l.Level())
	}
	if !l.Earned("stage2_1") {
		t.Error("restored key should be marked earned")
	}
	if l.AwardOnce("stage2_1", 25) {
		t.Error("restored key should not pay again")
	}
	if l.AwardOnce("stage2_2", 25) == false {
		t.Error("new key should pay")
	}
	if l.XP() != 100 {
		t.Errorf("XP = %d, want 100", l.XP())
	}
}
