package copytrade

import (
	"sort"

	"github.com/quantfeed/tradeboard/internal/model"
)

// LeaderboardHeap is a binary max-heap of traders keyed by ROI. The trader
// with the highest ROI is always at the root. Not safe for concurrent use;
// the Service serializes access.
type LeaderboardHeap struct {
	items []model.Trader
}

// Insert adds a trader to the heap.
func (h *LeaderboardHeap) Insert(t model.Trader) {
	h.items = append(h.items, t)
	h.up(len(h.items) - 1)
}

// ExtractMax removes and returns the trader with the highest ROI.
func (h *LeaderboardHeap) ExtractMax() (model.Trader, bool) {
	if len(h.items) == 0 {
		return model.Trader{}, false
	}

	max := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.down(0)
	}
	return max, true
}

// Peek returns the trader with the highest ROI without removing it.
func (h *LeaderboardHeap) Peek() (model.Trader, bool) {
	if len(h.items) == 0 {
		return model.Trader{}, false
	}
	return h.items[0], true
}

// Len returns the number of traders in the heap.
func (h *LeaderboardHeap) Len() int {
	return len(h.items)
}

// Sorted returns all traders ordered by ROI descending without modifying
// the heap.
func (h *LeaderboardHeap) Sorted() []model.Trader {
	out := make([]model.Trader, len(h.items))
	copy(out, h.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ROI > out[j].ROI
	})
	return out
}

func (h *LeaderboardHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].ROI <= h.items[parent].ROI {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *LeaderboardHeap) down(i int) {
	n := len(h.items)
	for {
		largest := i
		left, right := 2*i+1, 2*i+2

		if left < n && h.items[left].ROI > h.items[largest].ROI {
			largest = left
		}
		if right < n && h.items[right].ROI > h.items[largest].ROI {
			largest = right
		}
		if largest == i {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}
