package animation

import (
	"sync"
	"time"
)

// Group steps a set of animators together, once per frame.
//
// Hosts that drive many animators from one render loop add them to a Group
// and call Step each frame instead of updating each animator by hand.
// Animators are stepped in the order they were added.
type Group struct {
	mu        sync.Mutex
	animators []*Animator
}

// Add appends animators to the group. Animators already in the group are
// skipped.
func (g *Group) Add(animators ...*Animator) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, a := range animators {
		if a == nil || g.indexLocked(a) >= 0 {
			continue
		}
		g.animators = append(g.animators, a)
	}
}

// Remove drops a from the group.
func (g *Group) Remove(a *Animator) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i := g.indexLocked(a); i >= 0 {
		g.animators = append(g.animators[:i], g.animators[i+1:]...)
	}
}

func (g *Group) indexLocked(a *Animator) int {
	for i, member := range g.animators {
		if member == a {
			return i
		}
	}
	return -1
}

// Len returns the number of animators in the group.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.animators)
}

// Animators returns the members in step order.
func (g *Group) Animators() []*Animator {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*Animator(nil), g.animators...)
}

// Start starts every animator in the group.
func (g *Group) Start() {
	for _, a := range g.Animators() {
		a.Start()
	}
}

// Stop stops every animator in the group.
func (g *Group) Stop() {
	for _, a := range g.Animators() {
		a.Stop()
	}
}

// Step updates every animator using the package clock.
func (g *Group) Step() {
	g.StepAt(Now())
}

// StepAt updates every animator to now. The member list is copied first so
// that status listeners may add or remove animators while stepping.
func (g *Group) StepAt(now time.Time) {
	for _, a := range g.Animators() {
		a.UpdateAt(now)
	}
}

// HasRunning reports whether any animator in the group is running.
func (g *Group) HasRunning() bool {
	for _, a := range g.Animators() {
		if a.IsRunning() {
			return true
		}
	}
	return false
}
