package glide

import "testing"

func TestTeardownRunsLIFOOnce(t *testing.T) {
	var td Teardown
	var order []int
	td.Defer(func() { order = append(order, 1) })
	td.Defer(func() { order = append(order, 2) })
	td.Defer(func() { order = append(order, 3) })
	td.Run()
	td.Run()
	if !equalInts(order, []int{3, 2, 1}) {
		t.Errorf("order = %v, want [3 2 1]", order)
	}
	if !td.Done() {
		t.Error("Done = false after Run")
	}
}

func TestTeardownDeferAfterRunRunsImmediately(t *testing.T) {
	var td Teardown
	td.Run()
	ran := false
	td.Defer(func() { ran = true })
	if !ran {
		t.Error("late Defer did not run")
	}
}
