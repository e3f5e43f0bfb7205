// Package testing provides deterministic time for animator and timer tests.
//
// # Quick Start
//
// Create a tester, add animators, and advance time frame by frame:
//
//	func TestSlide(t *testing.T) {
//	    tester := tweentest.NewTesterWithT(t)
//	    a, _ := animation.New(animation.WithEndValues(animation.V("x", 100)))
//	    tester.Add(a)
//
//	    a.Start()
//	    tester.PumpFor(500 * time.Millisecond)
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Timers
//
// Timers created with [Tester.NewTimer] use a [FakeScheduler] bound to the
// tester's clock, so their callbacks fire during Pump when their interval
// boundary has passed.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import tweentest "github.com/go-drift/tween/pkg/testing"
package testing
