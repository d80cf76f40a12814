package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListeners_NotifyInOrder(t *testing.T) {
	var l Listeners[int]
	var got []string

	l.Add(func(v int) { got = append(got, "first") })
	l.Add(func(v int) { got = append(got, "second") })
	l.Notify(1)

	assert.Equal(t, []string{"first", "second"}, got)
	assert.Equal(t, 2, l.Len())
}

func TestListeners_Close(t *testing.T) {
	var l Listeners[int]
	calls := 0

	sub := l.Add(func(int) { calls++ })
	l.Notify(1)
	sub.Close()
	sub.Close()
	l.Notify(2)

	assert.Equal(t, 1, calls)
	assert.Zero(t, l.Len())
}

func TestListeners_CloseFromListener(t *testing.T) {
	var l Listeners[int]
	calls := 0

	var sub *Subscription
	sub = l.Add(func(int) {
		calls++
		sub.Close()
	})
	l.Notify(1)
	l.Notify(2)

	assert.Equal(t, 1, calls)
}

func TestListeners_Clear(t *testing.T) {
	var l Listeners[string]
	l.Add(func(string) { t.Error("listener called after Clear") })
	l.Clear()
	l.Notify("x")

	var nilSub *Subscription
	nilSub.Close()
}
