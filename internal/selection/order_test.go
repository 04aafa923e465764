package selection

import (
	"testing"

	"github.com/san-kum/topgun/internal/ballistics"
)

func TestOrderPushEvictsOldest(t *testing.T) {
	var o Order

	if _, ok := o.Push(ballistics.Projectile); ok {
		t.Fatal("unexpected eviction on first push")
	}
	if _, ok := o.Push(ballistics.Velocity); ok {
		t.Fatal("unexpected eviction on second push")
	}

	evicted, ok := o.Push(ballistics.RifleWeight)
	if !ok {
		t.Fatal("expected eviction on third push")
	}
	if evicted != ballistics.Projectile {
		t.Errorf("expected projectile evicted, got %s", evicted)
	}

	items := o.Items()
	if len(items) != 2 || items[0] != ballistics.Velocity || items[1] != ballistics.RifleWeight {
		t.Errorf("unexpected order %v", items)
	}
}

func TestOrderPushDuplicate(t *testing.T) {
	var o Order
	o.Push(ballistics.Velocity)
	o.Push(ballistics.Velocity)
	if o.Len() != 1 {
		t.Errorf("expected len 1, got %d", o.Len())
	}
}

func TestOrderRemove(t *testing.T) {
	var o Order
	o.Push(ballistics.Projectile)
	o.Push(ballistics.Velocity)

	if !o.Remove(ballistics.Projectile) {
		t.Fatal("expected remove to succeed")
	}
	if o.Remove(ballistics.RifleWeight) {
		t.Error("removing absent variable should report false")
	}

	oldest, ok := o.Oldest()
	if !ok || oldest != ballistics.Velocity {
		t.Errorf("expected velocity oldest, got %s", oldest)
	}
	if o.Len() != 1 {
		t.Errorf("expected len 1, got %d", o.Len())
	}
}

func TestOrderEmpty(t *testing.T) {
	var o Order
	if _, ok := o.Oldest(); ok {
		t.Error("empty order has no oldest")
	}
	if len(o.Items()) != 0 {
		t.Error("expected no items")
	}
}
