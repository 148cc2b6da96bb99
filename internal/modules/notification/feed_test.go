package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"imobsite/internal/domain"
)

func TestFeed_DeliversInOrderToEverySubscriber(t *testing.T) {
	feed := NewFeed()

	var a, b []int64
	feed.Subscribe(func(l domain.Lead) { a = append(a, l.ID) })
	feed.Subscribe(func(l domain.Lead) { b = append(b, l.ID) })

	for id := int64(1); id <= 5; id++ {
		feed.Publish(lead(id, domain.LeadStatusNew))
	}

	want := []int64{1, 2, 3, 4, 5}
	assert.Equal(t, want, a)
	assert.Equal(t, want, b)
}

func TestFeed_UnsubscribeStopsDelivery(t *testing.T) {
	feed := NewFeed()

	var got []int64
	sub := feed.Subscribe(func(l domain.Lead) { got = append(got, l.ID) })

	feed.Publish(lead(1, domain.LeadStatusNew))
	sub.Unsubscribe()
	feed.Publish(lead(2, domain.LeadStatusNew))

	assert.Equal(t, []int64{1}, got)
}

func TestFeed_UnsubscribeTwiceIsSafe(t *testing.T) {
	feed := NewFeed()

	sub := feed.Subscribe(func(domain.Lead) {})
	sub.Unsubscribe()
	assert.NotPanics(t, func() { sub.Unsubscribe() })
}

func TestFeed_PublishWithoutSubscribersIsNoop(t *testing.T) {
	feed := NewFeed()
	assert.NotPanics(t, func() {
		feed.Publish(lead(1, domain.LeadStatusNew))
	})
}
