package notification

import (
	"sync"

	"imobsite/internal/domain"
)

// Feed fans lead-creation events out to subscribers. Delivery is
// synchronous and in receipt order: each subscriber sees every published
// lead exactly once, in the order Publish was called.
type Feed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(domain.Lead)
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[int]func(domain.Lead))}
}

// Subscribe registers a callback for future lead creations. The returned
// Subscription must be released with Unsubscribe at session teardown.
func (f *Feed) Subscribe(fn func(domain.Lead)) *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := f.nextID
	f.subs[id] = fn

	return &Subscription{feed: f, id: id}
}

// Publish delivers a created lead to every current subscriber.
func (f *Feed) Publish(lead domain.Lead) {
	f.mu.Lock()
	fns := make([]func(domain.Lead), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(lead)
	}
}

// Subscription is a live registration on the feed.
type Subscription struct {
	feed *Feed
	id   int
	once sync.Once
}

// Unsubscribe removes the registration. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.feed.mu.Lock()
		delete(s.feed.subs, s.id)
		s.feed.mu.Unlock()
	})
}
