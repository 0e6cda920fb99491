package navigation

import "github.com/datatug/pathview/pkg/fsutils"

// State is the navigation state: the displayed directory and a back stack.
type State struct {
	CurrentPath string
	// History holds previously visited paths, most recent last.
	History []string
}

func (s *State) push(path string) {
	if path == "" {
		return
	}
	if n := len(s.History); n > 0 && fsutils.SamePath(s.History[n-1], path) {
		return
	}
	s.History = append(s.History, path)
}

func (s *State) pop() (string, bool) {
	n := len(s.History)
	if n == 0 {
		return "", false
	}
	last := s.History[n-1]
	s.History = s.History[:n-1]
	return last, true
}

func (s State) clone() State {
	history := make([]string, len(s.History))
	copy(history, s.History)
	return State{CurrentPath: s.CurrentPath, History: history}
}
