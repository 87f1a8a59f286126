package client

import (
	"sync"

	"postshare/pkg/post"
)

type State struct {
	Posts     []post.Post
	IsLoading bool
	Error     string
}

// Store keeps the client-side view of the posts. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Posts: []post.Post{}}}
}

func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, a)
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Posts = append([]post.Post(nil), s.state.Posts...)
	return st
}

func reduce(st State, a Action) State {
	switch a.Type {
	case StartLoading:
		st.IsLoading = true
		st.Error = ""
	case EndLoading:
		st.IsLoading = false
	case Error:
		st.IsLoading = false
		st.Error, _ = a.Payload.(string)
	case FetchAll:
		if posts, ok := a.Payload.([]post.Post); ok {
			st.Posts = append([]post.Post(nil), posts...)
		}
	case Create:
		if p, ok := a.Payload.(post.Post); ok {
			st.Posts = append(append([]post.Post(nil), st.Posts...), p)
		}
	case Update, Like:
		if p, ok := a.Payload.(post.Post); ok {
			next := make([]post.Post, len(st.Posts))
			for i, cur := range st.Posts {
				if cur.Id == p.Id {
					cur = p
				}
				next[i] = cur
			}
			st.Posts = next
		}
	case Delete:
		if id, ok := a.Payload.(string); ok {
			next := make([]post.Post, 0, len(st.Posts))
			for _, cur := range st.Posts {
				if cur.Id.Hex() != id {
					next = append(next, cur)
				}
			}
			st.Posts = next
		}
	}
	return st
}
