package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedMap is a string-keyed map that remembers the order keys were first
// set. Overwriting a key keeps its position. It marshals to a JSON object with
// keys in that order and without HTML escaping.
type OrderedMap[V any] struct {
	*orderedmap.OrderedMap[string, V]
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[V any]() OrderedMap[V] {
	return OrderedMap[V]{
		orderedmap.New[string, V](orderedmap.WithDisableHTMLEscape[string, V]()),
	}
}

// Keys returns the keys in insertion order.
func (m OrderedMap[V]) Keys() []string {
	if m.OrderedMap == nil {
		return nil
	}
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Has reports whether key is present.
func (m OrderedMap[V]) Has(key string) bool {
	if m.OrderedMap == nil {
		return false
	}
	_, ok := m.Get(key)
	return ok
}

// SheetResult maps class name to its timetable.
type SheetResult = OrderedMap[ClassTimetable]

// ProcessedData maps sheet name to its classes.
type ProcessedData = OrderedMap[SheetResult]

// NewSheetResult returns an empty SheetResult.
func NewSheetResult() SheetResult {
	return NewOrderedMap[ClassTimetable]()
}

// NewProcessedData returns an empty ProcessedData.
func NewProcessedData() *ProcessedData {
	data := NewOrderedMap[SheetResult]()
	return &data
}
