package memory

import (
	"maps"
	"sync"
	"time"

	model "blog-platform/internal/domain/models"
)

// Store is the shared state behind the in-memory repositories, so that post
// authors can be checked against users the way a foreign key would.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*model.User
	posts    map[string]*model.Post
	lastTime time.Time

	failMu   sync.Mutex
	failures map[string]error
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*model.User),
		posts:    make(map[string]*model.Post),
		failures: make(map[string]error),
	}
}

// SimulateFailure makes the next call of operation (e.g. "user_delete") fail with err.
func (s *Store) SimulateFailure(operation string, err error) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	s.failures[operation] = err
}

func (s *Store) takeFailure(operation string) error {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	err, ok := s.failures[operation]
	if !ok {
		return nil
	}
	delete(s.failures, operation)
	return err
}

// now returns strictly increasing timestamps; must be called with s.mu held.
func (s *Store) now() time.Time {
	t := time.Now().UTC()
	if !t.After(s.lastTime) {
		t = s.lastTime.Add(time.Microsecond)
	}
	s.lastTime = t
	return t
}

type snapshot struct {
	users map[string]*model.User
	posts map[string]*model.Post
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		users: make(map[string]*model.User, len(s.users)),
		posts: make(map[string]*model.Post, len(s.posts)),
	}
	for id, u := range s.users {
		userCopy := *u
		snap.users[id] = &userCopy
	}
	for id, p := range s.posts {
		postCopy := *p
		snap.posts[id] = &postCopy
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = maps.Clone(snap.users)
	s.posts = maps.Clone(snap.posts)
}
