package document

import "github.com/gogpu/gg"

// smoother holds the three most recent input points of a gesture and turns
// them into quadratic Bezier segments: the middle point becomes the control
// point, the newest point the segment end. This is what keeps live strokes
// from showing polyline corners at normal sampling rates.
type smoother struct {
	window [3]gg.Point
	count  int
}

// Reset clears the window. Called at the start of every gesture.
func (s *smoother) Reset() {
	s.count = 0
}

// Push adds a point to the window. Once the window is full it reports the
// control and end point of the next quadratic segment; the oldest point is
// shifted out so every subsequent push yields one more segment.
func (s *smoother) Push(p gg.Point) (ctrl, end gg.Point, ok bool) {
	if s.count < 3 {
		s.window[s.count] = p
		s.count++
	} else {
		s.window[0] = s.window[1]
		s.window[1] = s.window[2]
		s.window[2] = p
	}
	if s.count < 3 {
		return gg.Point{}, gg.Point{}, false
	}
	return s.window[1], s.window[2], true
}
