package cart

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64) Product {
	return Product{
		ID:          id,
		Name:        "Product " + id,
		Price:       price,
		Description: "desc " + id,
		ImageURL:    "https://img.example/" + id,
		ImageHint:   "hint " + id,
	}
}

func Test_Apply_AddItem(t *testing.T) {
	testCases := []struct {
		name     string
		initial  State
		action   AddItem
		expected []Item
	}{
		{
			name:     "Add to empty cart appends a new item",
			initial:  State{},
			action:   AddItem{Product: product("p1", 1000), Quantity: 1},
			expected: []Item{{Product: product("p1", 1000), Quantity: 1}},
		},
		{
			name:     "Add with default-like quantity of 1",
			initial:  State{Items: []Item{{Product: product("p1", 1000), Quantity: 2}}},
			action:   AddItem{Product: product("p1", 1000), Quantity: 1},
			expected: []Item{{Product: product("p1", 1000), Quantity: 3}},
		},
		{
			name:    "Add existing id increments, snapshot fields untouched",
			initial: State{Items: []Item{{Product: product("p1", 1000), Quantity: 2}}},
			// Same id with different price: the stored snapshot wins.
			action:   AddItem{Product: product("p1", 9999), Quantity: 3},
			expected: []Item{{Product: product("p1", 1000), Quantity: 5}},
		},
		{
			name:     "Add with empty product id is a no-op",
			initial:  State{Items: []Item{{Product: product("p1", 1000), Quantity: 1}}},
			action:   AddItem{Product: Product{}, Quantity: 1},
			expected: []Item{{Product: product("p1", 1000), Quantity: 1}},
		},
		{
			name:     "Add new item with non-positive quantity is not inserted",
			initial:  State{},
			action:   AddItem{Product: product("p1", 1000), Quantity: 0},
			expected: nil,
		},
		{
			name:     "Add negative quantity driving total below one removes the item",
			initial:  State{Items: []Item{{Product: product("p1", 1000), Quantity: 2}}},
			action:   AddItem{Product: product("p1", 1000), Quantity: -5},
			expected: []Item{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(tc.initial, tc.action)
			assert.Equal(t, tc.expected, got.Items)
		})
	}
}

func Test_Apply_AddItem_AdditiveNotDuplicating(t *testing.T) {
	// addItem(P,2) then addItem(P,3) yields one item with quantity 5.
	s := Apply(State{}, AddItem{Product: product("p1", 1000), Quantity: 2})
	s = Apply(s, AddItem{Product: product("p1", 1000), Quantity: 3})

	require.Len(t, s.Items, 1)
	assert.Equal(t, 5, s.Items[0].Quantity)
	assert.Equal(t, "p1", s.Items[0].ID)
}

func Test_Apply_RemoveItem(t *testing.T) {
	initial := State{Items: []Item{
		{Product: product("p1", 1000), Quantity: 1},
		{Product: product("p2", 2000), Quantity: 2},
	}}

	t.Run("Remove present id deletes it and keeps order", func(t *testing.T) {
		got := Apply(initial, RemoveItem{ProductID: "p1"})
		require.Len(t, got.Items, 1)
		assert.Equal(t, "p2", got.Items[0].ID)
	})

	t.Run("Remove absent id leaves items unchanged", func(t *testing.T) {
		got := Apply(initial, RemoveItem{ProductID: "nope"})
		assert.Equal(t, initial.Items, got.Items)
	})
}

func Test_Apply_UpdateQuantity(t *testing.T) {
	initial := State{Items: []Item{{Product: product("p1", 1000), Quantity: 3}}}

	testCases := []struct {
		name     string
		action   UpdateQuantity
		expected []Item
	}{
		{
			name:     "Set replaces, does not increment",
			action:   UpdateQuantity{ProductID: "p1", Quantity: 7},
			expected: []Item{{Product: product("p1", 1000), Quantity: 7}},
		},
		{
			name:     "Zero removes the item",
			action:   UpdateQuantity{ProductID: "p1", Quantity: 0},
			expected: []Item{},
		},
		{
			name:     "Negative clamps to zero and removes",
			action:   UpdateQuantity{ProductID: "p1", Quantity: -4},
			expected: []Item{},
		},
		{
			name:     "Absent id is a no-op",
			action:   UpdateQuantity{ProductID: "ghost", Quantity: 5},
			expected: initial.Items,
		},
		{
			name:     "Absent id with zero quantity causes no state change",
			action:   UpdateQuantity{ProductID: "ghost", Quantity: 0},
			expected: initial.Items,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(initial, tc.action)
			assert.Equal(t, tc.expected, got.Items)
		})
	}
}

func Test_Apply_Clear(t *testing.T) {
	s := State{}
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("p%d", i)
		s = Apply(s, AddItem{Product: product(id, int64(1000*(i+1))), Quantity: i + 1})
	}
	require.Len(t, s.Items, 5)

	got := Apply(s, Clear{})
	assert.Empty(t, got.Items)
	assert.Equal(t, int64(0), got.TotalPrice())
	assert.Equal(t, 0, got.TotalItems())
}

func Test_Apply_Load(t *testing.T) {
	testCases := []struct {
		name     string
		items    []Item
		expected []Item
	}{
		{
			name: "Valid items load as-is",
			items: []Item{
				{Product: product("p1", 1000), Quantity: 1},
				{Product: product("p2", 2000), Quantity: 2},
			},
			expected: []Item{
				{Product: product("p1", 1000), Quantity: 1},
				{Product: product("p2", 2000), Quantity: 2},
			},
		},
		{
			name: "Invalid rows are dropped, not fatal",
			items: []Item{
				{Product: product("p1", 1000), Quantity: 1},
				{Product: Product{}, Quantity: 3},
				{Product: product("p2", 2000), Quantity: 0},
				{Product: product("p1", 5000), Quantity: 9},
			},
			expected: []Item{{Product: product("p1", 1000), Quantity: 1}},
		},
		{
			name:     "Empty load yields empty state",
			items:    nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(State{Items: []Item{{Product: product("stale", 1), Quantity: 1}}}, Load{Items: tc.items})
			assert.Equal(t, tc.expected, got.Items)
		})
	}
}

func Test_State_DerivedValues(t *testing.T) {
	s := State{Items: []Item{
		{Product: product("p1", 1000), Quantity: 1},
		{Product: product("p2", 2500), Quantity: 3},
	}}

	assert.Equal(t, 4, s.TotalItems())
	assert.Equal(t, int64(1000+3*2500), s.TotalPrice())
	assert.Equal(t, 3, s.Quantity("p2"))
	assert.Equal(t, 0, s.Quantity("absent"))
}

// Test_Apply_RandomSequenceInvariants drives the reducer with a random
// operation sequence and checks after every step that ids stay unique, every
// quantity is >= 1 and the derived totals match a fresh recomputation.
func Test_Apply_RandomSequenceInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"p1", "p2", "p3", "p4", "p5"}

	s := State{}
	for step := 0; step < 2000; step++ {
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(4) {
		case 0:
			s = Apply(s, AddItem{Product: product(id, int64(100*(rng.Intn(50)+1))), Quantity: rng.Intn(7) - 2})
		case 1:
			s = Apply(s, RemoveItem{ProductID: id})
		case 2:
			s = Apply(s, UpdateQuantity{ProductID: id, Quantity: rng.Intn(11) - 3})
		case 3:
			if rng.Intn(20) == 0 {
				s = Apply(s, Clear{})
			}
		}

		seen := make(map[string]struct{}, len(s.Items))
		var wantItems int
		var wantPrice int64
		for _, it := range s.Items {
			_, dup := seen[it.ID]
			require.False(t, dup, "step %d: duplicate id %s", step, it.ID)
			seen[it.ID] = struct{}{}
			require.GreaterOrEqual(t, it.Quantity, 1, "step %d: id %s", step, it.ID)
			wantItems += it.Quantity
			wantPrice += it.Price * int64(it.Quantity)
		}
		require.Equal(t, wantItems, s.TotalItems(), "step %d", step)
		require.Equal(t, wantPrice, s.TotalPrice(), "step %d", step)
	}
}
