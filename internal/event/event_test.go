package event

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "second") }))

	other := &recorder{}
	d.Subscribe(GameOver, other)

	d.Dispatch(Event{Type: EnemyKilled})
	if strings.Join(order, ",") != "first,second" {
		t.Errorf("listeners ran in order %v", order)
	}
	if len(other.got) != 0 {
		t.Error("GameOver listener received EnemyKilled")
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(DefenderPlaced, r)
	d.Unsubscribe(DefenderPlaced, r)
	d.Dispatch(Event{Type: DefenderPlaced})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener got %d events", len(r.got))
	}
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r)
	for _, typ := range AllTypes {
		d.Dispatch(Event{Type: typ})
	}
	if len(r.got) != len(AllTypes) {
		t.Errorf("got %d events, want %d", len(r.got), len(AllTypes))
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(log.New(&buf, "", 0))
	l.OnEvent(Event{Type: EnemyKilled, Data: EnemyKilledData{MaxHealth: 100, Reward: 10}})
	l.OnEvent(Event{Type: GameOver, Data: 42})

	out := buf.String()
	if !strings.Contains(out, "EnemyKilled: reward 10") {
		t.Errorf("missing kill line in %q", out)
	}
	if !strings.Contains(out, "GameOver: 42") {
		t.Errorf("missing game over line in %q", out)
	}
}
