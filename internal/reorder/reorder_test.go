package reorder

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeRows() []Row {
	return []Row{{ID: 1, OrderIndex: 0}, {ID: 2, OrderIndex: 1}, {ID: 3, OrderIndex: 2}}
}

func TestMove_UpSwapsWithPrevious(t *testing.T) {
	res, ok := Move(threeRows(), 2, Up)
	require.True(t, ok)

	want := []Row{{ID: 2, OrderIndex: 0}, {ID: 1, OrderIndex: 1}, {ID: 3, OrderIndex: 2}}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, [2]Row{{ID: 2, OrderIndex: 0}, {ID: 1, OrderIndex: 1}}, res.Changed)
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	rows := threeRows()
	_, ok := Move(rows, 1, Down)
	require.True(t, ok)
	assert.Equal(t, threeRows(), rows)
}

func TestMove_BoundaryAndMissingAreNoops(t *testing.T) {
	for n := 2; n <= 8; n++ {
		rows := Rebuild(randomRows(n, int64(n)))
		_, ok := Move(rows, rows[0].ID, Up)
		assert.False(t, ok, "first row up, n=%d", n)
		_, ok = Move(rows, rows[n-1].ID, Down)
		assert.False(t, ok, "last row down, n=%d", n)
	}
	_, ok := Move(threeRows(), 42, Up)
	assert.False(t, ok)
	_, ok = Move(nil, 1, Down)
	assert.False(t, ok)
}

func TestMove_UpThenDownRestoresAssignment(t *testing.T) {
	for n := 3; n <= 10; n++ {
		rows := Rebuild(randomRows(n, int64(100+n)))
		for i := 1; i < n-1; i++ {
			id := rows[i].ID
			up, ok := Move(rows, id, Up)
			require.True(t, ok)
			down, ok := Move(up.Rows, id, Down)
			require.True(t, ok)
			if diff := cmp.Diff(rows, down.Rows); diff != "" {
				t.Fatalf("n=%d i=%d round trip mismatch (-want +got):\n%s", n, i, diff)
			}
		}
	}
}

func TestRebuild_ProducesContiguousOrder(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rows := randomRows(int(seed%9)+1, seed)
		out := Rebuild(rows)
		require.Len(t, out, len(rows))
		assert.True(t, Contiguous(out), "seed %d: %+v", seed, out)

		seen := map[int64]bool{}
		for _, r := range out {
			assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
			seen[r.ID] = true
		}
	}
}

func TestRebuild_AfterDeleteKeepsRelativeOrder(t *testing.T) {
	rows := threeRows()
	remaining := []Row{rows[0], rows[2]}

	out := Rebuild(remaining)

	want := []Row{{ID: 1, OrderIndex: 0}, {ID: 3, OrderIndex: 1}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("rebuild mismatch (-want +got):\n%s", diff)
	}
}

func TestRebuild_DuplicatesBreakTiesByID(t *testing.T) {
	out := Rebuild([]Row{{ID: 9, OrderIndex: 3}, {ID: 4, OrderIndex: 3}, {ID: 7, OrderIndex: -1}})
	assert.Equal(t, []Row{{ID: 7, OrderIndex: 0}, {ID: 4, OrderIndex: 1}, {ID: 9, OrderIndex: 2}}, out)
}

func TestNext(t *testing.T) {
	assert.Equal(t, 0, Next(nil))
	assert.Equal(t, 8, Next([]Row{{OrderIndex: 2}, {OrderIndex: 7}, {OrderIndex: 0}}))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" UP ")
	require.NoError(t, err)
	assert.Equal(t, Up, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func randomRows(n int, seed int64) []Row {
	r := rand.New(rand.NewSource(seed))
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{ID: int64(i + 1), OrderIndex: r.Intn(5) - 1}
	}
	return rows
}
