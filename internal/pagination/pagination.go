package pagination

import (
	"fmt"
	"math"

	"github.com/containerd/errdefs"
)

// IndexPage is one window of an Indexed collection.
type IndexPage[T any] struct {
	// Index is the requested start position.
	Index int `json:"index"`
	// NextIndex is the position right after the last returned item.
	NextIndex int `json:"next_index"`
	// PageSize is the number of items actually returned.
	PageSize int `json:"page_size"`
	Data     []T `json:"data"`
}

// HyperPage is one page of a Sequence with navigation metadata.
// NextPage and PrevPage are nil at the ends of the collection.
type HyperPage[T any] struct {
	PageSize   int  `json:"page_size"`
	Page       int  `json:"page"`
	Data       []T  `json:"data"`
	NextPage   *int `json:"next_page"`
	PrevPage   *int `json:"prev_page"`
	TotalPages int  `json:"total_pages"`
}

// IndexRange returns the half-open range [start, end) covered by a
// 1-indexed page. Bounds saturate at math.MaxInt instead of wrapping.
func IndexRange(page, pageSize int) (start, end int) {
	if page <= 1 || pageSize <= 0 {
		return 0, max(pageSize, 0)
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt, math.MaxInt
	}
	start = (page - 1) * pageSize
	if pageSize > math.MaxInt-start {
		return start, math.MaxInt
	}
	return start, start + pageSize
}

// Page returns the items of the given 1-indexed page, clipped to the
// collection. A page past the end is empty.
func Page[T any](seq Sequence[T], page, pageSize int) ([]T, error) {
	if err := validatePage(page, pageSize); err != nil {
		return nil, err
	}

	// (page-1)*pageSize may overflow, so test start < n by division
	n := seq.Len()
	if n == 0 || page-1 > (n-1)/pageSize {
		return []T{}, nil
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, n-start)

	items := make([]T, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, seq.At(i))
	}
	return items, nil
}

// Hyper returns the page along with links to its neighbours and the total
// number of pages.
func Hyper[T any](seq Sequence[T], page, pageSize int) (HyperPage[T], error) {
	data, err := Page(seq, page, pageSize)
	if err != nil {
		return HyperPage[T]{}, err
	}

	n := seq.Len()
	total := n / pageSize
	if n%pageSize != 0 {
		total++
	}
	hp := HyperPage[T]{
		PageSize:   len(data),
		Page:       page,
		Data:       data,
		TotalPages: total,
	}
	if page < total {
		next := page + 1
		hp.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		hp.PrevPage = &prev
	}
	return hp, nil
}

// PageByIndex collects up to pageSize present items starting at index,
// skipping missing positions. Resuming from the returned NextIndex stays
// correct when items are deleted between calls.
func PageByIndex[T any](src Indexed[T], index, pageSize int) (IndexPage[T], error) {
	n := src.Len()
	if index < 0 || index >= n {
		return IndexPage[T]{}, fmt.Errorf("index %d out of range [0, %d): %w", index, n, errdefs.ErrInvalidArgument)
	}
	if pageSize <= 0 {
		return IndexPage[T]{}, fmt.Errorf("page size must be a positive integer, got %d: %w", pageSize, errdefs.ErrInvalidArgument)
	}

	data := make([]T, 0, min(pageSize, n-index))
	next := index
	for len(data) < pageSize && next < n {
		item, ok := src.Lookup(next)
		next++
		if ok {
			data = append(data, item)
		}
	}

	return IndexPage[T]{
		Index:     index,
		NextIndex: next,
		PageSize:  len(data),
		Data:      data,
	}, nil
}

func validatePage(page, pageSize int) error {
	if page <= 0 {
		return fmt.Errorf("page must be a positive integer, got %d: %w", page, errdefs.ErrInvalidArgument)
	}
	if pageSize <= 0 {
		return fmt.Errorf("page size must be a positive integer, got %d: %w", pageSize, errdefs.ErrInvalidArgument)
	}
	return nil
}
