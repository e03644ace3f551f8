package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(PlayerJumped, a)
	d.Subscribe(PlayerJumped, b)
	d.Subscribe(PlayerLanded, b)

	d.Dispatch(Event{Type: PlayerJumped, Data: 7})
	d.Dispatch(Event{Type: PlayerLanded})
	d.Dispatch(Event{Type: PlayerRespawned})

	if len(a.got) != 1 || a.got[0].Data != 7 {
		t.Fatalf("a got %+v, want one PlayerJumped with data 7", a.got)
	}
	if len(b.got) != 2 || b.got[1].Type != PlayerLanded {
		t.Fatalf("b got %+v, want PlayerJumped then PlayerLanded", b.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(PlayerJumped, a)
	d.Subscribe(PlayerJumped, b)
	d.Unsubscribe(PlayerJumped, a)
	d.Unsubscribe(PlayerLanded, a)

	d.Dispatch(Event{Type: PlayerJumped})
	if len(a.got) != 0 {
		t.Fatalf("unsubscribed listener got %+v", a.got)
	}
	if len(b.got) != 1 {
		t.Fatalf("remaining listener got %d events, want 1", len(b.got))
	}
}

func TestQueueFlush(t *testing.T) {
	d := NewDispatcher()
	var order []EventType
	d.Subscribe(PlayerJumped, ListenerFunc(func(e Event) {
		order = append(order, e.Type)
		d.Queue(Event{Type: PlayerLanded})
	}))
	d.Subscribe(PlayerLanded, ListenerFunc(func(e Event) {
		order = append(order, e.Type)
	}))

	d.Queue(Event{Type: PlayerJumped})
	if len(order) != 0 {
		t.Fatalf("queued event delivered before Flush: %v", order)
	}

	d.Flush()
	if len(order) != 1 || order[0] != PlayerJumped {
		t.Fatalf("after first Flush got %v, want [PlayerJumped]", order)
	}

	d.Flush()
	if len(order) != 2 || order[1] != PlayerLanded {
		t.Fatalf("after second Flush got %v, want PlayerLanded appended", order)
	}

	d.Flush()
	if len(order) != 2 {
		t.Fatalf("empty Flush delivered events: %v", order)
	}
}
