package pong

import "fmt"

// Score holds both players' goal counts for the session. Resets never
// touch it.
type Score struct {
	Left  int
	Right int
}

// Add credits one goal to side.
func (s *Score) Add(side Side) {
	switch side {
	case SideLeft:
		s.Left++
	case SideRight:
		s.Right++
	}
}

// Of returns the count for side.
func (s Score) Of(side Side) int {
	if side == SideRight {
		return s.Right
	}
	return s.Left
}

// Total returns the number of goals scored so far.
func (s Score) Total() int {
	return s.Left + s.Right
}

func (s Score) String() string {
	return fmt.Sprintf("%d - %d", s.Left, s.Right)
}
