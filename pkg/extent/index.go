package extent

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"
)

// Index is an R-tree over the normalized extents of caller-identified items.
//
// It answers "which items may intersect this region" for regions that wrap
// the antimeridian or straddle the prime meridian. Every extent is split with
// Normalize on insert and every query is split the same way, so a box
// crossing longitude 180 matches items on both sides.
//
// Example:
//
//	idx := extent.NewIndex[string]()
//	idx.Insert("warning-1", extent.Extent{MinLat: -5, MinLon: 175, MaxLat: 5, MaxLon: 185})
//	ids := idx.Search(extent.Extent{MinLat: 0, MinLon: -179, MaxLat: 1, MaxLon: -178})
//	// ids = ["warning-1"]
//
// An Index is safe for concurrent use.
type Index[T comparable] struct {
	mu      sync.RWMutex
	rtree   *rtreego.Rtree
	entries map[T][]*indexedBox[T]
	next    uint64
}

// indexedBox wraps one normalized box of an item for R-tree storage.
type indexedBox[T comparable] struct {
	id  T
	box Extent
	seq uint64 // insertion order of the item
}

// Bounds implements rtreego.Spatial interface.
func (b *indexedBox[T]) Bounds() rtreego.Rect {
	return rect(b.box)
}

// NewIndex returns an empty index.
func NewIndex[T comparable]() *Index[T] {
	return &Index[T]{
		rtree:   rtreego.NewTree(2, 25, 50),
		entries: make(map[T][]*indexedBox[T]),
	}
}

// Insert stores the extent of id, replacing any extent already stored for
// it. An empty extent cannot be indexed, nor can one whose longitudes do
// not normalize into ordered boxes.
func (idx *Index[T]) Insert(id T, e Extent) error {
	if e.IsEmpty() {
		return fmt.Errorf("index %v: empty extent", id)
	}
	boxes := Normalize(e)
	for _, b := range boxes {
		if b.MinLon > b.MaxLon {
			return fmt.Errorf("index %v: longitudes %g to %g do not normalize", id, e.MinLon, e.MaxLon)
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.remove(id)
	idx.next++
	stored := make([]*indexedBox[T], len(boxes))
	for i, b := range boxes {
		stored[i] = &indexedBox[T]{id: id, box: b, seq: idx.next}
		idx.rtree.Insert(stored[i])
	}
	idx.entries[id] = stored
	return nil
}

// Search returns the ids of every item whose extent intersects e, once
// each, in the order the items were inserted. Query boxes that stay
// unordered after Normalize match nothing.
func (idx *Index[T]) Search(e Extent) []T {
	if e.IsEmpty() {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	seen := make(map[T]uint64)
	for _, q := range Normalize(e) {
		if q.MinLon > q.MaxLon {
			continue
		}
		for _, s := range idx.rtree.SearchIntersect(rect(q)) {
			b := s.(*indexedBox[T])
			seen[b.id] = b.seq
		}
	}

	ids := make([]T, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return seen[ids[i]] < seen[ids[j]]
	})
	return ids
}

// Remove deletes the extent stored for id. It reports whether id was
// present.
func (idx *Index[T]) Remove(id T) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.remove(id)
}

func (idx *Index[T]) remove(id T) bool {
	stored, ok := idx.entries[id]
	if !ok {
		return false
	}
	for _, b := range stored {
		idx.rtree.Delete(b)
	}
	delete(idx.entries, id)
	return true
}

// Len returns the number of items in the index.
func (idx *Index[T]) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// rect converts an extent to an R-tree rectangle.
func rect(e Extent) rtreego.Rect {
	point := rtreego.Point{e.MinLon, e.MinLat}

	// R-tree requires non-zero dimensions
	lonLength := e.MaxLon - e.MinLon
	latLength := e.MaxLat - e.MinLat

	// For point extents (zero-area), use small epsilon (~11 meters at equator)
	const epsilon = 0.0001
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	r, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return r
}
