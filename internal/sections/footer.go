package sections

import (
	"fmt"
	"html/template"
	"time"

	"github.com/Nishanth262/portfolio/internal/content"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// ScrollBehavior mirrors the browser's scroll behavior option.
type ScrollBehavior string

const (
	ScrollSmooth  ScrollBehavior = "smooth"
	ScrollInstant ScrollBehavior = "instant"
)

// ScrollRequest asks the host viewport to move to a vertical offset.
type ScrollRequest struct {
	Top      int
	Behavior ScrollBehavior
}

// TopOfPage is the request issued by the footer's scroll-to-top button.
var TopOfPage = ScrollRequest{Top: 0, Behavior: ScrollSmooth}

// Scroller is the host capability that animates the viewport.
// A later request supersedes any animation still in flight.
type Scroller interface {
	ScrollTo(req ScrollRequest)
}

// ScrollToTop asks s to smoothly scroll to offset 0. It never blocks.
func ScrollToTop(s Scroller) {
	s.ScrollTo(TopOfPage)
}

// ScriptScroller turns scroll requests into the browser call that performs them.
type ScriptScroller struct {
	script template.JS
}

func (s *ScriptScroller) ScrollTo(req ScrollRequest) {
	s.script = template.JS(fmt.Sprintf("window.scrollTo({top: %d, behavior: '%s'})", req.Top, req.Behavior))
}

// Script returns the call for the most recent request.
func (s *ScriptScroller) Script() template.JS {
	return s.script
}

// FooterSection renders navigation links, the scroll-to-top button and the copyright line.
type FooterSection struct {
	profile content.Profile
	clock   Clock
}

// FooterView is what the footer template consumes.
type FooterView struct {
	Name         string
	Headline     string
	Credit       string
	NavLinks     []content.NavLink
	Year         int
	ScrollScript template.JS
}

// NewFooterSection returns a footer; a nil clock means the host clock.
func NewFooterSection(profile content.Profile, clock Clock) *FooterSection {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FooterSection{profile: profile, clock: clock}
}

// Year is read from the clock on every call.
func (s *FooterSection) Year() int {
	return s.clock.Now().Year()
}

func (s *FooterSection) ScrollToTop(sc Scroller) {
	ScrollToTop(sc)
}

func (s *FooterSection) View() FooterView {
	var sc ScriptScroller
	s.ScrollToTop(&sc)
	return FooterView{
		Name:         s.profile.Name,
		Headline:     s.profile.Headline,
		Credit:       s.profile.Credit,
		NavLinks:     s.profile.NavLinks,
		Year:         s.Year(),
		ScrollScript: sc.Script(),
	}
}
