package sim

// Pool is an insertion-ordered arena of entities keyed by EntityID.
// Removal keeps the relative order of the remaining entities, which makes
// every scan over a pool deterministic.
type Pool[T any] struct {
	ids   []EntityID
	items []*T
	index map[EntityID]int
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{index: make(map[EntityID]int)}
}

// Add appends an item. Adding an existing id replaces the item in place.
func (p *Pool[T]) Add(id EntityID, item *T) {
	if i, ok := p.index[id]; ok {
		p.items[i] = item
		return
	}
	p.index[id] = len(p.ids)
	p.ids = append(p.ids, id)
	p.items = append(p.items, item)
}

// Get returns the item for id.
func (p *Pool[T]) Get(id EntityID) (*T, bool) {
	i, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return p.items[i], true
}

// Remove deletes id and reports whether it was present.
func (p *Pool[T]) Remove(id EntityID) bool {
	i, ok := p.index[id]
	if !ok {
		return false
	}
	delete(p.index, id)

	copy(p.ids[i:], p.ids[i+1:])
	p.ids = p.ids[:len(p.ids)-1]
	copy(p.items[i:], p.items[i+1:])
	p.items[len(p.items)-1] = nil
	p.items = p.items[:len(p.items)-1]

	for j := i; j < len(p.ids); j++ {
		p.index[p.ids[j]] = j
	}
	return true
}

// Each calls fn for every item in insertion order until fn returns false.
// fn must not add or remove items.
func (p *Pool[T]) Each(fn func(id EntityID, item *T) bool) {
	for i, id := range p.ids {
		if !fn(id, p.items[i]) {
			return
		}
	}
}

// Len returns the number of items.
func (p *Pool[T]) Len() int {
	return len(p.ids)
}

// Items returns the items in order.
func (p *Pool[T]) Items() []*T {
	return append([]*T(nil), p.items...)
}
