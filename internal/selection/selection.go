// Package selection tracks which two of the three ballistic inputs are held
// constant. Enabling a third input evicts whichever was enabled longest ago.
package selection

import "github.com/san-kum/topgun/internal/ballistics"

// Capacity is the number of inputs that may be enabled at once.
const Capacity = 2

// Order is a fixed-capacity FIFO of enabled variables, oldest first.
type Order struct {
	items [Capacity]ballistics.Variable
	n     int
}

// Push appends v. When the order is full the oldest entry is evicted and
// returned with ok set.
func (o *Order) Push(v ballistics.Variable) (evicted ballistics.Variable, ok bool) {
	if o.Contains(v) {
		return 0, false
	}
	if o.n == Capacity {
		evicted, ok = o.Oldest()
		copy(o.items[:], o.items[1:])
		o.n--
	}
	o.items[o.n] = v
	o.n++
	return evicted, ok
}

// Remove drops v, preserving the order of the rest.
func (o *Order) Remove(v ballistics.Variable) bool {
	for i := 0; i < o.n; i++ {
		if o.items[i] == v {
			copy(o.items[i:o.n], o.items[i+1:o.n])
			o.n--
			return true
		}
	}
	return false
}

func (o Order) Contains(v ballistics.Variable) bool {
	for i := 0; i < o.n; i++ {
		if o.items[i] == v {
			return true
		}
	}
	return false
}

func (o Order) Len() int { return o.n }

func (o Order) Items() []ballistics.Variable {
	out := make([]ballistics.Variable, o.n)
	copy(out, o.items[:o.n])
	return out
}

// Oldest is the entry the next Push on a full order would evict.
func (o Order) Oldest() (ballistics.Variable, bool) {
	if o.n == 0 {
		return 0, false
	}
	return o.items[0], true
}

// State holds the enabled flag of each variable together with the order in
// which they were enabled.
type State struct {
	enabled map[ballistics.Variable]bool
	order   Order
}

// New returns the initial selection: projectile and velocity enabled.
func New() *State {
	s := &State{enabled: make(map[ballistics.Variable]bool, len(ballistics.Variables))}
	s.Toggle(ballistics.Projectile)
	s.Toggle(ballistics.Velocity)
	return s
}

// FromEnabled builds a state by enabling vars in order. More than two
// variables evicts as Toggle would.
func FromEnabled(vars ...ballistics.Variable) *State {
	s := &State{enabled: make(map[ballistics.Variable]bool, len(ballistics.Variables))}
	for _, v := range vars {
		s.SetEnabled(v, true)
	}
	return s
}

func (s *State) Enabled(v ballistics.Variable) bool {
	return s.enabled[v]
}

// Toggle flips v. Enabling a third variable disables the oldest one, which
// is returned with evicted set. Disabling may leave a single variable
// enabled; Pair and Free report that state.
func (s *State) Toggle(v ballistics.Variable) (ballistics.Variable, bool) {
	if s.enabled[v] {
		s.enabled[v] = false
		s.order.Remove(v)
		return 0, false
	}
	s.enabled[v] = true
	oldest, evicted := s.order.Push(v)
	if evicted {
		s.enabled[oldest] = false
	}
	return oldest, evicted
}

func (s *State) SetEnabled(v ballistics.Variable, on bool) (ballistics.Variable, bool) {
	if s.enabled[v] == on {
		return 0, false
	}
	return s.Toggle(v)
}

// Order returns the enabled variables, oldest first.
func (s *State) Order() []ballistics.Variable {
	return s.order.Items()
}

func (s *State) Count() int {
	return s.order.Len()
}

// Pair returns the held-constant pair. ok is false unless exactly two
// variables are enabled.
func (s *State) Pair() (ballistics.Pair, bool) {
	if s.order.Len() != Capacity {
		return ballistics.Pair{}, false
	}
	items := s.order.Items()
	p, err := ballistics.NewPair(items[0], items[1])
	if err != nil {
		return ballistics.Pair{}, false
	}
	return p, true
}

// Free returns the derived variable, the one not enabled.
func (s *State) Free() (ballistics.Variable, bool) {
	p, ok := s.Pair()
	if !ok {
		return 0, false
	}
	return p.Free(), true
}
