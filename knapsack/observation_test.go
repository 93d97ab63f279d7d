package knapsack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableObservationHashDeterministic(t *testing.T) {
	u := newUnboundedFixture([]int{5, 10}, []int{1, 2}, 20)
	a := u.Reset()
	b := u.encode()
	assert.Equal(t, a.Hash(), b.Hash())

	u.Step(0)
	c := u.encode()
	assert.NotEqual(t, a.Hash(), c.Hash(), "hash reflects the container weight")
}

func TestTableObservationActions(t *testing.T) {
	u := newUnboundedFixture([]int{5, 10, 15}, []int{1, 2, 3}, 20)
	obs := u.Reset()
	assert.Equal(t, []int{0, 1, 2}, obs.Actions())
}

func TestTableObservationJSON(t *testing.T) {
	u := newUnboundedFixture([]int{5, 10}, []int{1, 2}, 20)
	bs, err := json.Marshal(u.Reset())
	require.NoError(t, err)

	var decoded map[string][][]int
	require.NoError(t, json.Unmarshal(bs, &decoded))
	assert.Equal(t, [][]int{{5, 10, 20}, {1, 2, 0}}, decoded["state"])
}

func TestMaskedObservationJSON(t *testing.T) {
	b := newBoundedFixture([]int{5, 10}, []int{1, 2}, []int{2, 0}, 20, true)
	bs, err := json.Marshal(b.Reset())
	require.NoError(t, err)

	var decoded struct {
		ActionMask   []int   `json:"action_mask"`
		AvailActions []int   `json:"avail_actions"`
		State        [][]int `json:"state"`
	}
	require.NoError(t, json.Unmarshal(bs, &decoded))
	assert.Equal(t, []int{1, 0}, decoded.ActionMask)
	assert.Equal(t, []int{1, 1}, decoded.AvailActions)
	assert.Equal(t, [][]int{{5, 10, 20}, {1, 2, 0}, {2, 0, 0}}, decoded.State)
}

func TestOfferObservationJSON(t *testing.T) {
	o := newOnlineFixture([]int{5, 10}, []int{1, 2}, []int{3, 3}, 100, 50)
	bs, err := json.Marshal(o.encode())
	require.NoError(t, err)

	var decoded []int
	require.NoError(t, json.Unmarshal(bs, &decoded))
	require.Len(t, decoded, 4)
	item := o.CurrentItem()
	assert.Equal(t, []int{0, item, o.catalog.Weights[item], o.catalog.Values[item]}, decoded)
}
