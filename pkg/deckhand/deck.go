package deckhand

// Deck is the ordered list of slides being presented. Its length is fixed
// once a Presenter is built from it.
type Deck struct {
	Title  string
	Locale string
	Slides []Slide
}

// Len returns the number of slides.
func (d Deck) Len() int {
	return len(d.Slides)
}

// Slide is one full-screen unit, addressed by its index in the deck.
type Slide struct {
	Title    string
	Cards    []RevealItem
	Counters []CounterItem
}

// RevealItem is a content block that slides in when its slide activates.
type RevealItem struct {
	Heading string
	Body    string
}

// CounterItem is a number that counts up from zero when its slide
// activates. A zero Target fades in without counting.
type CounterItem struct {
	Target int
	Prefix string
	Suffix string
	Label  string
}

// Animated reports whether the counter runs a count-up.
func (c CounterItem) Animated() bool {
	return c.Target > 0
}
