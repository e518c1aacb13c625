package policy

import "container/list"

// keyOrder is a doubly linked list of keys with O(1) lookup by key.
// Front is the oldest entry, back the newest.
type keyOrder[K comparable] struct {
	order *list.List
	items map[K]*list.Element
}

func newKeyOrder[K comparable]() keyOrder[K] {
	return keyOrder[K]{
		order: list.New(),
		items: make(map[K]*list.Element),
	}
}

func (o *keyOrder[K]) pushBack(key K) {
	if elem, ok := o.items[key]; ok {
		o.order.MoveToBack(elem)
		return
	}
	o.items[key] = o.order.PushBack(key)
}

func (o *keyOrder[K]) moveToBack(key K) {
	if elem, ok := o.items[key]; ok {
		o.order.MoveToBack(elem)
	}
}

func (o *keyOrder[K]) popFront() (K, bool) {
	return o.pop(o.order.Front())
}

func (o *keyOrder[K]) popBack() (K, bool) {
	return o.pop(o.order.Back())
}

func (o *keyOrder[K]) pop(elem *list.Element) (K, bool) {
	if elem == nil {
		var zero K
		return zero, false
	}
	key := o.order.Remove(elem).(K)
	delete(o.items, key)
	return key, true
}

func (o *keyOrder[K]) len() int {
	return len(o.items)
}

// keys returns the keys front to back.
func (o *keyOrder[K]) keys() []K {
	keys := make([]K, 0, o.order.Len())
	for e := o.order.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(K))
	}
	return keys
}

// reversed returns the keys back to front.
func (o *keyOrder[K]) reversed() []K {
	keys := make([]K, 0, o.order.Len())
	for e := o.order.Back(); e != nil; e = e.Prev() {
		keys = append(keys, e.Value.(K))
	}
	return keys
}
