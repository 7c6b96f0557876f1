package sim

import (
	"reflect"
	"testing"
)

func TestPoolPreservesOrder(t *testing.T) {
	p := NewPool[int]()
	for i := 1; i <= 5; i++ {
		v := i * 10
		p.Add(EntityID(i), &v)
	}

	if !p.Remove(2) {
		t.Fatal("Remove(2) = false")
	}
	if p.Remove(2) {
		t.Error("second Remove(2) = true")
	}

	var ids []EntityID
	p.Each(func(id EntityID, _ *int) bool {
		ids = append(ids, id)
		return true
	})
	if want := []EntityID{1, 3, 4, 5}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
	if v, ok := p.Get(4); !ok || *v != 40 {
		t.Errorf("Get(4) = %v, %v", v, ok)
	}
	if _, ok := p.Get(2); ok {
		t.Error("removed id still present")
	}

	var seen []int
	p.Each(func(_ EntityID, v *int) bool {
		seen = append(seen, *v)
		return *v < 40
	})
	if want := []int{10, 30, 40}; !reflect.DeepEqual(seen, want) {
		t.Errorf("Each visited %v, want %v", seen, want)
	}
}
