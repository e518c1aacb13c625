package pagination

import (
	"fmt"
	"math"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("name-%d", i)
	}
	return out
}

func intPtr(i int) *int { return &i }

func TestIndexRange(t *testing.T) {
	for _, tc := range []struct {
		page, size int
		start, end int
	}{
		{1, 7, 0, 7},
		{3, 15, 30, 45},
		{2, 1, 1, 2},
	} {
		start, end := IndexRange(tc.page, tc.size)
		assert.Equal(t, tc.start, start)
		assert.Equal(t, tc.end, end)
	}
}

func TestPage(t *testing.T) {
	data := Slice[string](names(25))

	page, err := Page[string](data, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, names(10), page)

	// last page is clipped
	page, err = Page[string](data, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"name-20", "name-21", "name-22", "name-23", "name-24"}, page)

	// past the end
	page, err = Page[string](data, 3000, 100)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.NotNil(t, page)
}

func TestPage_InvalidArgument(t *testing.T) {
	data := Slice[int]{1, 2, 3}

	for _, tc := range []struct{ page, size int }{
		{0, 10},
		{-1, 10},
		{1, 0},
		{2, -3},
	} {
		_, err := Page[int](data, tc.page, tc.size)
		assert.Error(t, err, "page=%d size=%d", tc.page, tc.size)
		assert.True(t, errdefs.IsInvalidArgument(err))
	}
}

// Walking every page of an unmodified dataset yields the dataset back,
// in order, without duplicates.
func TestPage_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 100} {
		for _, size := range []int{1, 3, 10} {
			data := names(n)
			var got []string
			for p := 1; ; p++ {
				page, err := Page[string](Slice[string](data), p, size)
				require.NoError(t, err)
				if len(page) == 0 {
					break
				}
				got = append(got, page...)
			}
			if diff := cmp.Diff(data, got, cmpEmpty); diff != "" {
				t.Errorf("n=%d size=%d (-want +got):\n%s", n, size, diff)
			}
		}
	}
}

// cmpEmpty treats nil and empty slices as equal.
var cmpEmpty = cmp.Comparer(func(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
})

func TestHyper(t *testing.T) {
	data := Slice[string](names(25))

	got, err := Hyper[string](data, 1, 10)
	require.NoError(t, err)
	want := HyperPage[string]{
		PageSize:   10,
		Page:       1,
		Data:       names(10),
		NextPage:   intPtr(2),
		PrevPage:   nil,
		TotalPages: 3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("first page (-want +got):\n%s", diff)
	}

	got, err = Hyper[string](data, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, got.PageSize)
	assert.Nil(t, got.NextPage)
	assert.Equal(t, intPtr(2), got.PrevPage)

	got, err = Hyper[string](data, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, got.PageSize)
	assert.Nil(t, got.NextPage)
	assert.Equal(t, intPtr(9), got.PrevPage)

	_, err = Hyper[string](data, 0, 10)
	assert.True(t, errdefs.IsInvalidArgument(err))
}

func TestPageByIndex(t *testing.T) {
	src := NewSparse(names(10))

	got, err := PageByIndex[string](src, 0, 3)
	require.NoError(t, err)
	want := IndexPage[string]{Index: 0, NextIndex: 3, PageSize: 3, Data: names(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPageByIndex_SkipsGaps(t *testing.T) {
	src := NewSparse(names(10))
	src.Delete(5)

	got, err := PageByIndex[string](src, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Index)
	assert.Equal(t, 8, got.NextIndex)
	assert.Equal(t, 3, got.PageSize)
	assert.Equal(t, []string{"name-4", "name-6", "name-7"}, got.Data)

	// Addressable length is unchanged by the deletion
	assert.Equal(t, 10, src.Len())
	assert.Equal(t, 9, src.Present())
}

// Deleting an item already served does not shift the next page.
func TestPageByIndex_DeletionResilient(t *testing.T) {
	src := NewSparse(names(20))

	first, err := PageByIndex[string](src, 0, 5)
	require.NoError(t, err)

	src.Delete(2)
	src.Delete(first.NextIndex)

	second, err := PageByIndex[string](src, first.NextIndex, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"name-6", "name-7", "name-8", "name-9", "name-10"}, second.Data)
	assert.Equal(t, 11, second.NextIndex)
}

func TestPageByIndex_TrailingGapsAndEnd(t *testing.T) {
	src := SparseFrom(map[int]string{0: "a", 1: "b", 3: "d"}, 6)

	got, err := PageByIndex[string](src, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, got.Data)
	assert.Equal(t, 6, got.NextIndex)
	assert.Equal(t, 2, got.PageSize)

	// The gap right after the last item is not skipped ahead of time
	got, err = PageByIndex[string](src, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NextIndex)
}

func TestPageByIndex_InvalidArgument(t *testing.T) {
	src := NewSparse(names(10))

	for _, tc := range []struct{ index, size int }{
		{-1, 3},
		{10, 3},
		{42, 3},
		{0, 0},
	} {
		_, err := PageByIndex[string](src, tc.index, tc.size)
		assert.Error(t, err, "index=%d size=%d", tc.index, tc.size)
		assert.True(t, errdefs.IsInvalidArgument(err))
	}

	_, err := PageByIndex[string](SparseFrom[string](nil, 0), 0, 3)
	assert.True(t, errdefs.IsInvalidArgument(err))
}

func TestIndexRange_Saturates(t *testing.T) {
	start, end := IndexRange((1<<62)+1, 4)
	assert.Equal(t, math.MaxInt, start)
	assert.Equal(t, math.MaxInt, end)

	start, end = IndexRange(2, math.MaxInt)
	assert.Equal(t, math.MaxInt, start)
	assert.Equal(t, math.MaxInt, end)

	start, end = IndexRange(1, math.MaxInt)
	assert.Equal(t, 0, start)
	assert.Equal(t, math.MaxInt, end)
}

func TestPage_LargeArguments(t *testing.T) {
	data := Slice[int]{0, 1, 2, 3, 4}

	for _, tc := range []struct{ page, size int }{
		{(1 << 61) + 1, 5},
		{(1 << 62) + 1, 4},
		{math.MaxInt, 1},
		{2, math.MaxInt},
	} {
		page, err := Page[int](data, tc.page, tc.size)
		require.NoError(t, err)
		assert.Empty(t, page, "page=%d size=%d", tc.page, tc.size)
	}

	page, err := Page[int](data, 1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, page)
}

func TestHyper_LargePageSize(t *testing.T) {
	data := Slice[int]{0, 1, 2, 3, 4}

	got, err := Hyper[int](data, 1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalPages)
	assert.Equal(t, 5, got.PageSize)
	assert.Nil(t, got.NextPage)
	assert.Nil(t, got.PrevPage)

	got, err = Hyper[int](data, math.MaxInt, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalPages)
	assert.Empty(t, got.Data)
	assert.Nil(t, got.NextPage)
	require.NotNil(t, got.PrevPage)
	assert.Equal(t, math.MaxInt-1, *got.PrevPage)
}

func TestPageByIndex_LargePageSize(t *testing.T) {
	src := NewSparse([]int{1, 2, 3})
	src.Delete(1)

	got, err := PageByIndex[int](src, 0, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got.Data)
	assert.Equal(t, 3, got.NextIndex)
	assert.Equal(t, 2, got.PageSize)
}
