package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"imobsite/internal/domain"
)

type stubLeadReader struct{}

func (stubLeadReader) ListRecent(ctx context.Context, limit int) ([]domain.Lead, error) {
	return nil, nil
}

func TestHub_PushAfterDisconnect(t *testing.T) {
	h := NewHub(NewFeed(), stubLeadReader{})
	s := &session{send: make(chan []byte, 4), center: NewCenter()}
	h.register(s)
	h.unregister(s)

	// a push landing after the session is gone is dropped silently
	assert.NotPanics(t, func() {
		h.push(s, snapshotEvent(s.center))
	})
	assert.Equal(t, 0, h.SessionCount())
}

func TestHub_PublishRacesDisconnect(t *testing.T) {
	feed := NewFeed()
	h := NewHub(feed, stubLeadReader{})

	// the feed invokes callbacks outside any hub lock, so a publish in
	// flight can reach a session that is tearing down
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			feed.Publish(lead(int64(i), domain.LeadStatusNew))
		}
	}()

	assert.NotPanics(t, func() {
		for i := 0; i < 200; i++ {
			s := &session{send: make(chan []byte, 4), center: NewCenter()}
			s.sub = feed.Subscribe(func(l domain.Lead) {
				s.center.Add(l)
				h.push(s, snapshotEvent(s.center))
			})
			h.register(s)
			s.sub.Unsubscribe()
			h.unregister(s)
		}
	})
	<-done
}
