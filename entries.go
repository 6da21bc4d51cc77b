package hrx

import (
	"iter"
	"slices"
)

// Entries is an insertion ordered mapping of [Path] to [Entry]. Keys are
// unique; iteration yields entries in the order they were first added,
// which is also the order they serialize in. The zero value is an empty
// collection ready for use.
type Entries struct {
	items []entryItem

	// position of each raw path in items
	index map[string]int
}

type entryItem struct {
	path  Path
	entry *Entry
}

func (e *Entries) Len() int {
	return len(e.items)
}

// Get returns the entry stored under the given raw path.
func (e *Entries) Get(path string) (*Entry, bool) {
	idx, ok := e.index[path]
	if !ok {
		return nil, false
	}

	return e.items[idx].entry, true
}

// Set stores entry under path. Replacing an existing path keeps its
// original position, a new path is appended at the end.
func (e *Entries) Set(path Path, entry *Entry) {
	if idx, ok := e.index[path.raw]; ok {
		e.items[idx].entry = entry
		return
	}

	if e.index == nil {
		e.index = map[string]int{}
	}

	e.index[path.raw] = len(e.items)
	e.items = append(e.items, entryItem{path: path, entry: entry})
}

// Delete removes the entry stored under the given raw path and reports
// whether it was present.
func (e *Entries) Delete(path string) bool {
	idx, ok := e.index[path]
	if !ok {
		return false
	}

	e.items = slices.Delete(e.items, idx, idx+1)
	delete(e.index, path)

	for ; idx < len(e.items); idx++ {
		e.index[e.items[idx].path.raw] = idx
	}

	return true
}

// All iterates the entries in insertion order.
func (e *Entries) All() iter.Seq2[Path, *Entry] {
	return func(yield func(Path, *Entry) bool) {
		for _, item := range e.items {
			if !yield(item.path, item.entry) {
				return
			}
		}
	}
}

// Paths returns the entry paths in insertion order.
func (e *Entries) Paths() []Path {
	paths := make([]Path, len(e.items))
	for idx, item := range e.items {
		paths[idx] = item.path
	}

	return paths
}
