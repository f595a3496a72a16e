package maskbutton

import (
	"fmt"
	"image"
)

// State is a control state that content can be assigned to.
type State int

const (
	StateNormal State = iota
	StateHighlighted
	StateDisabled
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHighlighted:
		return "highlighted"
	case StateDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState maps "normal", "highlighted" and "disabled" to a State.
func ParseState(s string) (State, error) {
	switch s {
	case "normal":
		return StateNormal, nil
	case "highlighted":
		return StateHighlighted, nil
	case "disabled":
		return StateDisabled, nil
	}
	return StateNormal, fmt.Errorf("unknown state %q", s)
}

// ContentKind identifies what a stencil was built from.
type ContentKind int

const (
	ContentNone ContentKind = iota
	ContentText
	ContentImage
)

// String returns a human-readable representation of the content kind.
func (k ContentKind) String() string {
	switch k {
	case ContentNone:
		return "none"
	case ContentText:
		return "text"
	case ContentImage:
		return "image"
	default:
		return fmt.Sprintf("ContentKind(%d)", int(k))
	}
}

// Content is the title or image resolved for rendering. At most one of the
// two is set.
type Content struct {
	Title string
	Image image.Image
}

// Kind reports which kind of content c holds. A title always wins.
func (c Content) Kind() ContentKind {
	switch {
	case c.Title != "":
		return ContentText
	case c.Image != nil:
		return ContentImage
	default:
		return ContentNone
	}
}

// stateContent stores titles and images per state. Setting a title for a
// state removes that state's image and vice versa.
type stateContent struct {
	titles map[State]string
	images map[State]image.Image
}

func newStateContent() stateContent {
	return stateContent{
		titles: make(map[State]string),
		images: make(map[State]image.Image),
	}
}

func (c *stateContent) setTitle(state State, title string) {
	if title == "" {
		delete(c.titles, state)
		return
	}
	c.titles[state] = title
	delete(c.images, state)
}

func (c *stateContent) setImage(state State, img image.Image) {
	if img == nil {
		delete(c.images, state)
		return
	}
	c.images[state] = img
	delete(c.titles, state)
}

// resolve returns the content for state and the state it was taken from.
// Titles are looked up first (state, then normal), then images.
func (c *stateContent) resolve(state State) (Content, State) {
	if t, ok := c.titles[state]; ok {
		return Content{Title: t}, state
	}
	if t, ok := c.titles[StateNormal]; ok {
		return Content{Title: t}, StateNormal
	}
	if img, ok := c.images[state]; ok {
		return Content{Image: img}, state
	}
	if img, ok := c.images[StateNormal]; ok {
		return Content{Image: img}, StateNormal
	}
	return Content{}, state
}
