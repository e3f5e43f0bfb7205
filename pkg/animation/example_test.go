package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/tween/pkg/animation"
	tweentest "github.com/go-drift/tween/pkg/testing"
)

// This example moves one value with a linear curve and samples it the way
// a render loop would.
func ExampleAnimator() {
	clk := tweentest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	a, err := animation.New(
		animation.WithValues(animation.V("x", 0)),
		animation.WithEndValues(animation.V("x", 100)),
		animation.WithDuration(time.Second),
		animation.WithCurve("easeLinear"),
	)
	if err != nil {
		panic(err)
	}

	a.Start()
	for range 4 {
		clk.Advance(250 * time.Millisecond)
		a.Update()
		x, _ := a.CurrentValues().Get("x")
		fmt.Printf("x=%.0f running=%v\n", x, a.IsRunning())
	}

	// Output:
	// x=25 running=true
	// x=50 running=true
	// x=75 running=true
	// x=100 running=false
}

// This example retargets a settled animator, which is how hosts reverse
// or redirect an animation without constructing a new one.
func ExampleAnimator_SetEndValues() {
	clk := tweentest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	a, _ := animation.New(
		animation.WithValues(animation.V("x", 0).With("y", 10)),
		animation.WithEndValues(animation.V("x", 10).With("y", 20)),
	)
	a.Start()
	clk.Advance(a.Duration())
	a.Update()

	_ = a.SetEndValues(animation.V("x", 30).With("y", 40))
	a.Start()
	clk.Advance(a.Duration())
	a.Update()

	fmt.Println(a.CurrentValues())

	// Output:
	// {x: 30, y: 40}
}

// This example listens for completion.
func ExampleAnimator_AddStatusListener() {
	clk := tweentest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	a, _ := animation.New(animation.WithEndValues(animation.V("x", 1)))
	a.AddStatusListener(func(s animation.Status) {
		fmt.Println("status:", s)
	})

	a.Start()
	clk.Advance(2 * time.Second)
	a.Update()

	// Output:
	// status: running
	// status: completed
}

// This example shows how to create a tween for basic interpolation.
func ExampleTween() {
	opacity := animation.TweenFloat64(0.0, 1.0, nil)
	fmt.Printf("Opacity at 0.5: %.1f\n", opacity.Evaluate(0.5))

	// Output:
	// Opacity at 0.5: 0.5
}
