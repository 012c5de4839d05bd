package stepnav

import (
	"errors"
	"testing"
)

func checkoutNav() *Navigator {
	return New([]string{"cart", "shipping", "payment"})
}

func TestGoToSetsCurrentContainer(t *testing.T) {
	nav := checkoutNav()
	ids := []string{"cart", "shipping", "payment"}

	for i, id := range ids {
		if err := nav.GoTo(i); err != nil {
			t.Fatalf("GoTo(%d): %v", i, err)
		}
		cur := nav.CurrentContainer()
		if cur == nil {
			t.Fatalf("GoTo(%d): CurrentContainer returned nil", i)
		}
		if cur.ID != id || cur.Index != i {
			t.Errorf("GoTo(%d): got {%q, %d}, want {%q, %d}", i, cur.ID, cur.Index, id, i)
		}
	}
}

func TestGoToOutOfRange(t *testing.T) {
	nav := checkoutNav()
	_ = nav.GoTo(1)

	for _, index := range []int{-1, 3, 42} {
		if err := nav.GoTo(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("GoTo(%d): got %v, want ErrIndexOutOfRange", index, err)
		}
	}
	if cur := nav.CurrentContainer(); cur == nil || cur.Index != 1 {
		t.Errorf("out-of-range GoTo moved the navigator: %+v", cur)
	}
}

func TestStatusDerivation(t *testing.T) {
	nav := checkoutNav()

	// Uninitialized: everything disabled.
	for i := 0; i < nav.Len(); i++ {
		if got := nav.Status(i); got != StatusDisabled {
			t.Errorf("uninitialized Status(%d) = %v, want StatusDisabled", i, got)
		}
	}

	_ = nav.GoTo(1)

	want := []Status{StatusVisited, StatusActive, StatusDisabled}
	for i, w := range want {
		if got := nav.Status(i); got != w {
			t.Errorf("Status(%d) = %v, want %v", i, got, w)
		}
	}

	// Exactly one active step.
	active := 0
	for _, s := range nav.Snapshot().Steps {
		if s.Status == StatusActive {
			active++
			if !s.Selected {
				t.Error("active step is not marked selected")
			}
		} else if s.Selected {
			t.Errorf("step %d marked selected while not active", s.Index)
		}
	}
	if active != 1 {
		t.Errorf("snapshot has %d active steps, want 1", active)
	}
}

func TestVisitedStepsStayReachable(t *testing.T) {
	nav := checkoutNav()
	_ = nav.GoTo(2)
	_ = nav.GoTo(0)

	if got := nav.Status(1); got != StatusDefault {
		t.Errorf("Status(1) after visiting and returning = %v, want StatusDefault", got)
	}
	if got := nav.Status(2); got != StatusDefault {
		t.Errorf("Status(2) after visiting and returning = %v, want StatusDefault", got)
	}
}

func TestBeforeVetoLeavesStateUnchanged(t *testing.T) {
	nav := checkoutNav()
	_ = nav.GoTo(0)

	afterFired := false
	secondBeforeFired := false
	nav.BeforeChange(func(Step) bool { return false })
	nav.BeforeChange(func(Step) bool { secondBeforeFired = true; return true })
	nav.AfterChange(func(Step) { afterFired = true })

	before := nav.Snapshot()
	if err := nav.GoTo(2); err != nil {
		t.Fatalf("vetoed GoTo returned error: %v", err)
	}

	if cur := nav.CurrentContainer(); cur.Index != 0 {
		t.Errorf("veto did not hold the navigator at 0, now at %d", cur.Index)
	}
	if afterFired {
		t.Error("after-interceptor ran on a vetoed transition")
	}
	if secondBeforeFired {
		t.Error("interceptors kept running after the veto")
	}
	after := nav.Snapshot()
	for i := range before.Steps {
		if before.Steps[i] != after.Steps[i] {
			t.Errorf("step %d state changed across a vetoed transition", i)
		}
	}
}

func TestContinueChangeBypassesInterceptors(t *testing.T) {
	nav := checkoutNav()
	_ = nav.GoTo(0)

	var vetoed *Step
	nav.BeforeChange(func(target Step) bool {
		vetoed = &target
		return false
	})

	_ = nav.GoTo(2)
	if vetoed == nil {
		t.Fatal("before-interceptor never ran")
	}
	if cur := nav.CurrentContainer(); cur.Index != 0 {
		t.Fatalf("veto failed, navigator at %d", cur.Index)
	}

	if err := nav.ContinueChange(*vetoed); err != nil {
		t.Fatalf("ContinueChange: %v", err)
	}
	if cur := nav.CurrentContainer(); cur.Index != 2 || cur.ID != "payment" {
		t.Errorf("ContinueChange landed on %+v, want payment/2", cur)
	}
}

func TestNextPreviousGuards(t *testing.T) {
	nav := checkoutNav()
	_ = nav.GoTo(0)

	nav.Previous()
	if cur := nav.CurrentContainer(); cur.Index != 0 {
		t.Errorf("Previous at step 0 moved to %d", cur.Index)
	}

	_ = nav.GoTo(2)
	nav.Next()
	if cur := nav.CurrentContainer(); cur.Index != 2 {
		t.Errorf("Next at the last step moved to %d", cur.Index)
	}
}

func TestGoToIDDelegation(t *testing.T) {
	nav := checkoutNav()
	_ = nav.GoTo(1)

	if !nav.GoToID("next") {
		t.Error(`GoToID("next") returned false`)
	}
	if cur := nav.CurrentContainer(); cur.Index != 2 {
		t.Errorf(`GoToID("next") landed on %d, want 2`, cur.Index)
	}

	if !nav.GoToID("prev") {
		t.Error(`GoToID("prev") returned false`)
	}
	if cur := nav.CurrentContainer(); cur.Index != 1 {
		t.Errorf(`GoToID("prev") landed on %d, want 1`, cur.Index)
	}
}

func TestGoToIDMatch(t *testing.T) {
	nav := checkoutNav()
	_ = nav.GoTo(0)

	if !nav.GoToID("payment") {
		t.Error(`GoToID("payment") returned false on a match`)
	}
	if cur := nav.CurrentContainer(); cur.ID != "payment" {
		t.Errorf("landed on %q, want payment", cur.ID)
	}

	// Leading fragment markers are stripped.
	if !nav.GoToID("#shipping") {
		t.Error(`GoToID("#shipping") returned false on a match`)
	}
	if cur := nav.CurrentContainer(); cur.ID != "shipping" {
		t.Errorf("landed on %q, want shipping", cur.ID)
	}

	if nav.GoToID("no-such-step") {
		t.Error("GoToID returned true for an unknown identifier")
	}
}

func TestSameIndexRerendersWithoutInterceptors(t *testing.T) {
	nav := checkoutNav()
	_ = nav.GoTo(1)

	renders := 0
	beforeFired := false
	afterFired := false
	nav.OnRender(func(Snapshot) { renders++ })
	nav.BeforeChange(func(Step) bool { beforeFired = true; return true })
	nav.AfterChange(func(Step) { afterFired = true })

	before := nav.Snapshot()
	if err := nav.GoTo(1); err != nil {
		t.Fatalf("GoTo(1): %v", err)
	}

	if renders != 1 {
		t.Errorf("same-index GoTo produced %d renders, want 1", renders)
	}
	if beforeFired || afterFired {
		t.Error("interceptors fired on a same-index transition")
	}
	after := nav.Snapshot()
	for i := range before.Steps {
		if before.Steps[i] != after.Steps[i] {
			t.Errorf("step %d state changed across a same-index transition", i)
		}
	}
}

func TestInterceptorOrderAndDuplicates(t *testing.T) {
	nav := checkoutNav()
	_ = nav.GoTo(0)

	var order []int
	record := func(n int) BeforeFunc {
		return func(Step) bool {
			order = append(order, n)
			return true
		}
	}
	fn := record(1)
	nav.BeforeChange(fn).BeforeChange(record(2)).BeforeChange(fn)

	_ = nav.GoTo(1)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 1 {
		t.Errorf("interceptor call order = %v, want [1 2 1]", order)
	}
}

func TestActivateRequestedStep(t *testing.T) {
	nav := checkoutNav()
	loc := NewLocation()

	if err := nav.Activate(loc, "shipping"); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	cur := nav.CurrentContainer()
	if cur == nil || cur.Index != 1 {
		t.Fatalf("Activate landed on %+v, want shipping/1", cur)
	}
	if loc.Value() != "shipping" {
		t.Errorf("location = %q, want shipping", loc.Value())
	}
	snap := nav.Snapshot()
	if snap.PreviousDisabled || snap.NextDisabled {
		t.Errorf("controls at step 1 of 3: prev disabled=%v next disabled=%v, want both enabled",
			snap.PreviousDisabled, snap.NextDisabled)
	}
}

func TestActivatePriorityOrder(t *testing.T) {
	// Location value used when no explicit request matches.
	nav := checkoutNav()
	loc := NewLocation()
	loc.Set("payment")
	if err := nav.Activate(loc, "bogus"); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if cur := nav.CurrentContainer(); cur.ID != "payment" {
		t.Errorf("landed on %q, want payment (location fallback)", cur.ID)
	}

	// Nothing requested, nothing in the location: step 0.
	nav = checkoutNav()
	if err := nav.Activate(NewLocation(), ""); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if cur := nav.CurrentContainer(); cur.Index != 0 {
		t.Errorf("landed on %d, want 0", cur.Index)
	}
}

func TestVetoedNextStaysPut(t *testing.T) {
	nav := checkoutNav()
	_ = nav.GoTo(1)

	nav.BeforeChange(func(target Step) bool {
		return target.ID != "payment"
	})

	nav.Next()
	nav.Next()
	if cur := nav.CurrentContainer(); cur.Index != 1 {
		t.Errorf("vetoed Next moved the navigator to %d, want 1", cur.Index)
	}
}

func TestSingleStepFlow(t *testing.T) {
	nav := New([]string{"done"})
	if err := nav.Activate(nil, ""); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	snap := nav.Snapshot()
	if !snap.PreviousDisabled || !snap.NextDisabled {
		t.Error("single-step flow must disable both controls")
	}
	if cur := nav.CurrentContainer(); cur.Index != 0 {
		t.Errorf("landed on %d, want 0", cur.Index)
	}
}

func TestInertNavigator(t *testing.T) {
	nav := New(nil)

	if cur := nav.CurrentContainer(); cur != nil {
		t.Errorf("inert CurrentContainer = %+v, want nil", cur)
	}
	if err := nav.GoTo(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("inert GoTo: got %v, want ErrIndexOutOfRange", err)
	}
	if nav.GoToID("next") || nav.GoToID("anything") {
		t.Error("inert GoToID returned true")
	}
	nav.Next()
	nav.Previous()
	if err := nav.Activate(NewLocation(), "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("inert Activate: got %v, want ErrIndexOutOfRange", err)
	}
}

func TestLocationRoundTrip(t *testing.T) {
	nav := checkoutNav()
	loc := NewLocation()
	if err := nav.Activate(loc, ""); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	// Navigator publishes ids for steps past the first.
	_ = nav.GoTo(2)
	if loc.Value() != "payment" {
		t.Errorf("location = %q, want payment", loc.Value())
	}

	// Returning to step 0 clears the slot.
	_ = nav.GoTo(0)
	if loc.Value() != "" {
		t.Errorf("location = %q, want empty at step 0", loc.Value())
	}

	// External writes drive the navigator.
	loc.Set("#shipping")
	if cur := nav.CurrentContainer(); cur.ID != "shipping" {
		t.Errorf("external location write landed on %q, want shipping", cur.ID)
	}

	// Clearing externally falls back to step 0.
	loc.Clear()
	if cur := nav.CurrentContainer(); cur.Index != 0 {
		t.Errorf("cleared location landed on %d, want 0", cur.Index)
	}
}

func TestLocationVetoHoldsNavigator(t *testing.T) {
	nav := checkoutNav()
	loc := NewLocation()
	_ = nav.Activate(loc, "")

	nav.BeforeChange(func(target Step) bool {
		return target.ID != "payment"
	})

	loc.Set("payment")
	if cur := nav.CurrentContainer(); cur.Index != 0 {
		t.Errorf("vetoed location write moved the navigator to %d", cur.Index)
	}
}
