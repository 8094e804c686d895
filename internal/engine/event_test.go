package engine

import "testing"

func TestEventInvokeOrder(t *testing.T) {
	var e Event
	var calls []int
	e.AddListener(func() { calls = append(calls, 1) })
	e.AddListener(func() { calls = append(calls, 2) })
	e.AddListener(nil)

	e.Invoke()

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("Expected [1 2], got %v", calls)
	}
	if e.ListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.ListenerCount())
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e EventWithArg[string]
	var got []string
	first := e.AddListener(func(s string) { got = append(got, "a:"+s) })
	e.AddListener(func(s string) { got = append(got, "b:"+s) })

	e.RemoveListener(first)
	e.Invoke("x")

	if len(got) != 1 || got[0] != "b:x" {
		t.Errorf("Expected [b:x], got %v", got)
	}

	e.RemoveAllListeners()
	e.Invoke("y")
	if len(got) != 1 {
		t.Error("RemoveAllListeners should drop every listener")
	}
}

func TestEventRemoveDuringInvoke(t *testing.T) {
	var e Event
	count := 0
	var id ListenerID
	id = e.AddListener(func() {
		count++
		e.RemoveListener(id)
	})
	e.AddListener(func() { count++ })

	e.Invoke()
	e.Invoke()

	if count != 3 {
		t.Errorf("Expected 3 calls, got %d", count)
	}
}
