// Package stepnav provides a transition-guarded navigator over a linear
// sequence of steps.
//
// Unlike a screen router, stepnav models a single flow whose steps are fixed
// at construction: a checkout, an enrollment, a device setup sequence. The
// navigator owns only the bookkeeping — which step is active, which steps have
// been visited, whether the previous/next controls are usable — and leaves all
// rendering to a listener. Interceptors let the host gate or observe every
// transition.
//
// # Basic Usage
//
//	nav := stepnav.New([]string{"cart", "shipping", "payment"})
//
//	nav.BeforeChange(func(target stepnav.Step) bool {
//	    // Returning false vetoes the transition.
//	    return cartIsValid() || target.Index == 0
//	})
//
//	nav.AfterChange(func(target stepnav.Step) {
//	    log.Printf("now on %s", target.ID)
//	})
//
//	nav.OnRender(func(snap stepnav.Snapshot) {
//	    // Project statuses onto the UI.
//	})
//
//	_ = nav.GoTo(0)
//	nav.Next()
//
// # Vetoes and ContinueChange
//
// A BeforeChange interceptor that returns false aborts the transition before
// any state changes. This is normal control flow, not an error: GoTo returns
// nil and the navigator stays where it was. Once the host has resolved
// whatever caused the veto (a confirmation dialog, typically), it can resume
// with ContinueChange, which replays the transition without consulting the
// interceptors.
//
// # Statuses
//
// Statuses are derived from the current index on every transition, never
// stored per step. Steps behind the active one are visited; steps ahead are
// disabled unless they were visited earlier, in which case they stay
// reachable. Exactly one step is active at a time.
//
// # Location
//
// A Location is an externally visible slot holding the active step's
// identifier, standing in for whatever deep-link surface the host has (a URL
// fragment, a launcher argument). The navigator keeps it in sync and routes
// external writes back through GoToID, so back/forward style navigation needs
// no special casing.
package stepnav
