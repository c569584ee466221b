package ivy

import "testing"

func TestSignalEmitOrder(t *testing.T) {
	var sig Signal
	var order []int

	sig.Connect(func(Hittable, *Pointer) { order = append(order, 1) })
	sig.Connect(func(Hittable, *Pointer) { order = append(order, 2) })
	sig.Connect(func(Hittable, *Pointer) { order = append(order, 3) })

	sig.Emit(nil, nil)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order = %v, want [1 2 3]", order)
	}
}

func TestSignalEmitPayload(t *testing.T) {
	var sig Signal
	box := NewRegion("box", 0, 0, HitRect{Width: 1, Height: 1})
	ptr := NewPointer(2)

	var gotTarget Hittable
	var gotPointer *Pointer
	sig.Connect(func(target Hittable, p *Pointer) {
		gotTarget = target
		gotPointer = p
	})

	sig.Emit(box, ptr)

	if gotTarget != Hittable(box) {
		t.Errorf("target = %v, want box", gotTarget)
	}
	if gotPointer != ptr {
		t.Errorf("pointer = %v, want ptr", gotPointer)
	}
}

func TestListenerHandleRemove(t *testing.T) {
	var sig Signal
	var fired []string

	sig.Connect(func(Hittable, *Pointer) { fired = append(fired, "a") })
	h := sig.Connect(func(Hittable, *Pointer) { fired = append(fired, "b") })
	sig.Connect(func(Hittable, *Pointer) { fired = append(fired, "c") })

	h.Remove()
	sig.Emit(nil, nil)

	if len(fired) != 2 || fired[0] != "a" || fired[1] != "c" {
		t.Errorf("fired = %v, want [a c]", fired)
	}

	// Removing twice is harmless.
	h.Remove()
	sig.Emit(nil, nil)
	if len(fired) != 4 {
		t.Errorf("fired = %v after second emit", fired)
	}
}

func TestListenerHandleZeroValue(t *testing.T) {
	var h ListenerHandle
	h.Remove() // must not panic
}

func TestSignalReleaseAll(t *testing.T) {
	var sig Signal
	var count int

	sig.Connect(func(Hittable, *Pointer) { count++ })
	sig.Connect(func(Hittable, *Pointer) { count++ })

	if !sig.HasListeners() {
		t.Error("HasListeners should be true with two listeners")
	}

	sig.ReleaseAll()
	sig.Emit(nil, nil)

	if count != 0 {
		t.Errorf("released listeners fired %d times", count)
	}
	if sig.HasListeners() {
		t.Error("HasListeners should be false after ReleaseAll")
	}
}

func TestSignalRemoveDuringEmit(t *testing.T) {
	var sig Signal
	var fired []string

	var h ListenerHandle
	sig.Connect(func(Hittable, *Pointer) {
		fired = append(fired, "a")
		h.Remove()
	})
	h = sig.Connect(func(Hittable, *Pointer) { fired = append(fired, "b") })

	// Delivery snapshots nothing: removal mid-emit affects this emission
	// because the handler slice is walked live. The documented model is
	// synchronous and unguarded; this pins the behavior.
	sig.Emit(nil, nil)
	sig.Emit(nil, nil)

	if len(fired) != 2 || fired[0] != "a" || fired[1] != "a" {
		t.Errorf("fired = %v, want [a a]", fired)
	}
}
