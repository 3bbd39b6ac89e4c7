package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, c <-chan T) T {
	t.Helper()
	select {
	case v := <-c:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for emission")
		panic("unreachable")
	}
}

func TestWatch_EmitsCurrentResultImmediately(t *testing.T) {
	n := NewNotifier()

	sub := Watch(n, TableEvents, func() (int, error) { return 42, nil })
	defer sub.Cancel()

	assert.Equal(t, 42, receive(t, sub.C))
}

func TestWatch_ReEmitsOnNotify(t *testing.T) {
	n := NewNotifier()

	value := 1
	sub := Watch(n, TableEvents, func() (int, error) { return value, nil })
	defer sub.Cancel()

	assert.Equal(t, 1, receive(t, sub.C))

	value = 2
	n.Notify(TableEvents)
	assert.Equal(t, 2, receive(t, sub.C))
}

func TestWatch_IgnoresOtherTables(t *testing.T) {
	n := NewNotifier()

	calls := 0
	sub := Watch(n, TableEvents, func() (int, error) { calls++; return calls, nil })
	defer sub.Cancel()

	assert.Equal(t, 1, receive(t, sub.C))

	n.Notify(TableUsers)
	select {
	case v := <-sub.C:
		t.Fatalf("unexpected emission %v after unrelated notify", v)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatch_CoalescesWhenReaderLags(t *testing.T) {
	n := NewNotifier()

	value := 0
	sub := Watch(n, TableEvents, func() (int, error) { value++; return value, nil })
	defer sub.Cancel()

	// Do not read the initial emission; fire a change and let the newer
	// result replace it.
	n.Notify(TableEvents)

	require.Eventually(t, func() bool {
		select {
		case v := <-sub.C:
			return v == 2
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatch_CancelClosesStream(t *testing.T) {
	n := NewNotifier()

	sub := Watch(n, TableEvents, func() (int, error) { return 7, nil })
	receive(t, sub.C)

	sub.Cancel()
	sub.Cancel() // idempotent

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-sub.C:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)

	// A notify after cancel must not panic or deliver.
	n.Notify(TableEvents)
}
