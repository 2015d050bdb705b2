package router_test

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/clock"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/router"
)

// pager is a minimal navigator that prints what it is asked to do.
type pager struct {
	index, total int
}

func (p *pager) GoTo(i int) bool {
	if i < 0 || i >= p.total || i == p.index {
		return false
	}
	p.index = i
	fmt.Printf("now on slide %d\n", i+1)
	return true
}

func (p *pager) Next() bool     { return p.GoTo(p.index + 1) }
func (p *pager) Previous() bool { return p.GoTo(p.index - 1) }
func (p *pager) Total() int     { return p.total }

// Example demonstrates routing several input channels into one navigator.
func Example() {
	tl := clock.NewTimeline()
	r := router.New(&pager{total: 5}, tl)

	r.HandleKey(constants.KeyArrowRight)
	r.HandleKey(constants.KeyEnd)

	// A swipe down of 80 units goes back.
	r.TouchStart(100)
	r.TouchEnd(180)

	// Only the first of two quick wheel ticks counts.
	r.Wheel(-1)
	r.Wheel(-1)
	tl.Advance(600 * time.Millisecond)
	r.Wheel(-1)

	// Output:
	// now on slide 2
	// now on slide 5
	// now on slide 4
	// now on slide 3
	// now on slide 2
}
