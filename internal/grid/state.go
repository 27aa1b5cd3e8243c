package grid

// State is the mutable simulation of one world. A Clone shares no memory
// with its source.
type State struct {
	ID         int
	Turn       int
	MaxTurns   int
	Pos        Pos
	Visited    []bool
	Score      int
	Terminated bool
}

// NewState places the agent on the start cell of world id.
func NewState(id int, m *Map, maxTurns int) (State, error) {
	start, ok := m.Start()
	if !ok {
		return State{}, &MalformedMapError{World: id, Reason: "no start cell"}
	}
	s := State{
		ID:       id,
		MaxTurns: maxTurns,
		Pos:      start,
		Visited:  make([]bool, m.Rows*m.Cols),
	}
	s.Visited[m.index(start)] = true
	return s, nil
}

func (s *State) IsDone() bool { return s.Turn >= s.MaxTurns }

// Advance plays one move. A finished world ignores further moves.
func (s *State) Advance(m *Map, d Direction) {
	if s.IsDone() {
		return
	}
	next := s.Pos.Add(d.Delta())
	s.Turn++
	cell := m.At(next)
	if cell == Wall {
		return
	}
	s.Pos = next

	if cell == Trap {
		s.Terminated = true
		s.Turn = s.MaxTurns
		return
	}

	idx := m.index(next)
	if !s.Visited[idx] {
		s.Visited[idx] = true
		s.Score++
	}
}

// Evaluate is the search heuristic; for now it is the raw score.
func (s *State) Evaluate() int { return s.Score }

func (s *State) Clone() State {
	c := *s
	c.Visited = append([]bool(nil), s.Visited...)
	return c
}

func (s *State) Seen(m *Map, p Pos) bool {
	return m.In(p) && s.Visited[m.index(p)]
}

func (s *State) VisitedCount() int {
	n := 0
	for _, v := range s.Visited {
		if v {
			n++
		}
	}
	return n
}
