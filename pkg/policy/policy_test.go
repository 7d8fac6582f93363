package policy

import "testing"

func TestNoneAlwaysAllowed(t *testing.T) {
	p := NewNone()
	if !p.Allowed(1) || !p.Allowed(100) {
		t.Error("None should allow any size")
	}
	if !p.IsStillPossible(0) {
		t.Error("None should always remain possible")
	}
}

func TestFixExactSizeOnly(t *testing.T) {
	p := NewFix(5)
	if p.Allowed(4) || p.Allowed(6) {
		t.Error("Fix(5) should reject sizes other than 5")
	}
	if !p.Allowed(5) {
		t.Error("Fix(5) should allow size 5")
	}
	if !p.CouldBecomeAllowed(3) || p.CouldBecomeAllowed(6) {
		t.Error("Fix(5).CouldBecomeAllowed should hold only for s <= 5")
	}
}

func TestAscendingDerivesMaxFromArea(t *testing.T) {
	// 5x5 = 25 cells, upper limit 22; 1+2+3+4=10<=22, +5=15<=22, +6=21<=22, +7=28>22
	// so max=6, Ascending max (M-1) = 5.
	p := NewAscending(5, 5).(*ascending)
	if p.max != 5 {
		t.Errorf("max = %d, want 5", p.max)
	}
}

func TestAscendingPrefixConstraint(t *testing.T) {
	p := NewAscending(5, 5)

	if !p.Allowed(1) {
		t.Error("size 1 should be allowed before any notify")
	}
	p.Notify(1)
	if p.Allowed(1) {
		t.Error("size 1 should not be allowed again after notify")
	}
	if !p.Allowed(2) {
		t.Error("size 2 should still be allowed")
	}
	if p.Allowed(6) {
		t.Error("size beyond max should never be allowed")
	}
}

func TestAscendingIsStillPossible(t *testing.T) {
	p := NewAscending(5, 5)
	p.Notify(1)
	p.Notify(3)
	// Only gaps inside the used prefix are still required: size 2 = 2 cells.
	if p.IsStillPossible(1) {
		t.Error("1 remaining cell should not fit the required size 2")
	}
	if !p.IsStillPossible(2) {
		t.Error("2 remaining cells should exactly fit the required size 2")
	}
}

func TestAscendingNotifyTwicePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate notify")
		}
	}()
	p := NewAscending(5, 5)
	p.Notify(2)
	p.Notify(2)
}

func TestAscendingCloneIsIndependent(t *testing.T) {
	p := NewAscending(5, 5)
	p.Notify(1)

	c := p.Clone()
	c.Notify(2)

	if p.Allowed(2) == false {
		t.Error("original should be unaffected by clone's notify")
	}
}
