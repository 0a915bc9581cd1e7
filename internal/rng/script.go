package rng

// Script is a Roller that replays a fixed sequence of values.
// Each call to IntN, RollN1 or Damroll consumes one queued value.
// When the queue is exhausted it keeps returning the Fallback value,
// which lets tests pin only the rolls they care about.
type Script struct {
	Values   []int
	Fallback int

	pos int
}

func (s *Script) next() int {
	if s.pos >= len(s.Values) {
		return s.Fallback
	}
	v := s.Values[s.pos]
	s.pos++
	return v
}

func (s *Script) IntN(n int) int {
	v := s.next()
	if n > 0 && v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (s *Script) RollN1(n int) int {
	v := s.next()
	if v < 1 {
		v = 1
	}
	if n > 0 && v > n {
		v = n
	}
	return v
}

func (s *Script) Damroll(num, sides int) int {
	return s.next()
}

// Consumed reports how many queued values have been used so far.
func (s *Script) Consumed() int { return s.pos }
