package database

import (
	"log"
	"sync"
)

// Table identifies a watched table for change notifications.
type Table string

const (
	TableUsers  Table = "users"
	TableEvents Table = "events"
)

// Notifier fans table-change signals out to active subscriptions. Signals
// carry no payload; subscribers re-run their query to pick up the new
// result set.
type Notifier struct {
	mu     sync.Mutex
	subs   map[Table]map[int]chan struct{}
	nextID int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[Table]map[int]chan struct{})}
}

// Notify marks the table as changed. It never blocks: a subscriber that
// already has a pending signal does not need another one.
func (n *Notifier) Notify(table Table) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs[table] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (n *Notifier) subscribe(table Table) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	if n.subs[table] == nil {
		n.subs[table] = make(map[int]chan struct{})
	}
	n.subs[table][id] = ch
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		delete(n.subs[table], id)
		n.mu.Unlock()
	}
	return ch, cancel
}

// Subscription is a live query result. C delivers the current result set
// shortly after Watch is called and again after every change to the
// watched table, until Cancel. Deliveries coalesce: a reader that lags
// observes only the latest result, never a backlog. A failed re-query is
// logged and delivered as the zero value of T.
type Subscription[T any] struct {
	C <-chan T

	cancel func()
	once   sync.Once
}

// Cancel detaches the subscription and closes C. Safe to call repeatedly.
func (s *Subscription[T]) Cancel() {
	s.once.Do(s.cancel)
}

// Watch subscribes query to changes of table on the given notifier. The
// query runs once immediately and once per change signal.
func Watch[T any](n *Notifier, table Table, query func() (T, error)) *Subscription[T] {
	out := make(chan T, 1)
	changes, unsubscribe := n.subscribe(table)
	done := make(chan struct{})

	emit := func() {
		v, err := query()
		if err != nil {
			log.Printf("watch %s: query failed: %v", table, err)
			var zero T
			v = zero
		}
		// Replace an undelivered previous result rather than queueing.
		select {
		case <-out:
		default:
		}
		select {
		case out <- v:
		default:
		}
	}

	go func() {
		defer close(out)
		emit()
		for {
			select {
			case <-done:
				return
			case <-changes:
				emit()
			}
		}
	}()

	return &Subscription[T]{
		C: out,
		cancel: func() {
			unsubscribe()
			close(done)
		},
	}
}
