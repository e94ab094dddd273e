package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherDeliversInOrder(t *testing.T) {
	var d Dispatcher
	var got []string

	d.AddKeyListener(func(k Key) { got = append(got, "a down "+k.String()) }, nil)
	d.AddKeyListener(
		func(k Key) { got = append(got, "b down "+k.String()) },
		func(k Key) { got = append(got, "b up "+k.String()) },
	)

	d.KeyDown(KeyW)
	d.KeyUp(KeyUp)

	assert.Equal(t, []string{"a down W", "b down W", "b up ArrowUp"}, got)
}

func TestDispatcherRemove(t *testing.T) {
	var d Dispatcher
	calls := 0
	remove := d.AddKeyListener(func(Key) { calls++ }, nil)
	assert.Equal(t, 1, d.Len())

	remove()
	remove()
	d.KeyDown(KeyA)

	assert.Equal(t, 0, d.Len())
	assert.Zero(t, calls)
}

func TestDispatcherRemoveDuringDelivery(t *testing.T) {
	var d Dispatcher
	var remove func()
	first, second := 0, 0
	remove = d.AddKeyListener(func(Key) {
		first++
		remove()
	}, nil)
	d.AddKeyListener(func(Key) { second++ }, nil)

	d.KeyDown(KeyS)
	d.KeyDown(KeyS)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "ArrowLeft", KeyLeft.String())
	assert.Equal(t, "Unknown", Key(999).String())
}
