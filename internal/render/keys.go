package render

type keyListener struct {
	id       int
	down, up KeyHandler
}

// Dispatcher is a KeySource that fans key transitions out to registered
// listeners in registration order. Backends feed it from their polling loop.
// It is not safe for concurrent use; everything runs on the game loop.
type Dispatcher struct {
	nextID    int
	listeners []keyListener
}

// AddKeyListener implements KeySource. Nil handlers are allowed.
func (d *Dispatcher) AddKeyListener(down, up KeyHandler) (remove func()) {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, keyListener{id: id, down: down, up: up})
	return func() { d.remove(id) }
}

func (d *Dispatcher) remove(id int) {
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// KeyDown delivers a key-down event.
func (d *Dispatcher) KeyDown(key Key) {
	for _, l := range d.snapshot() {
		if l.down != nil {
			l.down(key)
		}
	}
}

// KeyUp delivers a key-up event.
func (d *Dispatcher) KeyUp(key Key) {
	for _, l := range d.snapshot() {
		if l.up != nil {
			l.up(key)
		}
	}
}

// snapshot lets handlers add or remove listeners while an event is delivered.
func (d *Dispatcher) snapshot() []keyListener {
	return append([]keyListener(nil), d.listeners...)
}
