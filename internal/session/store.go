// Package session holds the single mutable session cell of the portal:
// an optional opaque token, its durable backings, and the issuer that
// mints new tokens.
package session

import (
	"sync"

	"github.com/spec-kit/videogames-portal/internal/domain"
)

// TokenKey is the durable storage key backing the session cell.
const TokenKey = "videogames_token"

// Update carries the store value observed at one point in the stream.
// Present is false when the store is empty.
type Update struct {
	Token   domain.Token
	Present bool
}

// Store is the process-wide session cell. At most one token is held at a
// time; Set replaces any prior value. Observe returns a live stream that
// immediately yields the current value to the new subscriber and every
// subsequent change thereafter. The stream is never closed by the store;
// the returned cancel func detaches the subscriber.
type Store interface {
	Get() (domain.Token, bool)
	Set(token domain.Token)
	Clear()
	Observe() (<-chan Update, func())
}

// IsAuthenticated reports whether the store currently holds a token.
func IsAuthenticated(s Store) bool {
	_, ok := s.Get()
	return ok
}

// notifier fans updates out to subscribers. Each subscriber owns an
// unbounded queue drained by its own goroutine, so a slow reader never
// blocks Set or Clear.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscriber
}

type subscriber struct {
	mu    sync.Mutex
	queue []Update
	wake  chan struct{}
	out   chan Update
	done  chan struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]*subscriber)}
}

// subscribe registers a subscriber seeded with the current value.
func (n *notifier) subscribe(current Update) (<-chan Update, func()) {
	sub := &subscriber{
		queue: []Update{current},
		wake:  make(chan struct{}, 1),
		out:   make(chan Update),
		done:  make(chan struct{}),
	}

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = sub
	n.mu.Unlock()

	go sub.run()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			close(sub.done)
		})
	}
	return sub.out, cancel
}

// publish enqueues the update for every current subscriber. The caller
// holds the owning store's mutex, which keeps update order consistent
// across subscribers.
func (n *notifier) publish(u Update) {
	n.mu.Lock()
	for _, sub := range n.subs {
		sub.push(u)
	}
	n.mu.Unlock()
}

func (s *subscriber) push(u Update) {
	s.mu.Lock()
	s.queue = append(s.queue, u)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) run() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		select {
		case s.out <- next:
		case <-s.done:
			return
		}
	}
}

// MemoryStore keeps the session cell in process memory only. Used by
// tests and throwaway sessions.
type MemoryStore struct {
	mu       sync.Mutex
	token    domain.Token
	present  bool
	notifier *notifier
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{notifier: newNotifier()}
}

// Get returns the held token, if any.
func (m *MemoryStore) Get() (domain.Token, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.present
}

// Set replaces the held value and notifies subscribers.
func (m *MemoryStore) Set(token domain.Token) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.present = true
	m.notifier.publish(Update{Token: token, Present: true})
}

// Clear empties the cell and notifies subscribers.
func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.present = false
	m.notifier.publish(Update{})
}

// Observe subscribes to the cell's value stream.
func (m *MemoryStore) Observe() (<-chan Update, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifier.subscribe(Update{Token: m.token, Present: m.present})
}
