package knapsack

import (
	"encoding/json"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// TableObservation is the full-catalog table encoding: one column per
// item plus a trailing column holding the container state. Two rows
// (weights, values) for the unbounded variant, three (plus limits) for
// the bounded variant with the mask disabled.
type TableObservation struct {
	State *mat.Dense
}

func (o *TableObservation) Hash() string {
	return hashDense(o.State)
}

// Actions lists every item index. Admissibility is not filtered here:
// the table mirrors the policy's full action space.
func (o *TableObservation) Actions() []int {
	_, cols := o.State.Dims()
	return itemIndices(cols - 1)
}

func (o *TableObservation) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"state": denseToInts(o.State),
	})
}

// MaskedObservation wraps the bounded table with an action mask and a
// constant all-ones availability vector.
type MaskedObservation struct {
	ActionMask   *mat.VecDense
	AvailActions *mat.VecDense
	State        *mat.Dense
}

func (o *MaskedObservation) Hash() string {
	var b strings.Builder
	b.WriteString(hashVec(o.ActionMask))
	b.WriteString("|")
	b.WriteString(hashDense(o.State))
	return b.String()
}

// Actions lists the items that can still be drawn from the catalog
// (remaining limit non-zero), mirroring the bounded sampler.
func (o *MaskedObservation) Actions() []int {
	n := o.ActionMask.Len()
	avail := make([]int, 0, n)
	for i := 0; i < n; i++ {
		// limits row of the state table
		if o.State.At(2, i) != 0 {
			avail = append(avail, i)
		}
	}
	return avail
}

// MaskedActions lists the items the mask currently admits: remaining
// limit and a weight that still fits.
func (o *MaskedObservation) MaskedActions() []int {
	n := o.ActionMask.Len()
	admissible := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if o.ActionMask.AtVec(i) == 1 {
			admissible = append(admissible, i)
		}
	}
	return admissible
}

func (o *MaskedObservation) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"action_mask":   vecToInts(o.ActionMask),
		"avail_actions": vecToInts(o.AvailActions),
		"state":         denseToInts(o.State),
	})
}

// OfferObservation is the online variant's single-offer encoding:
// [current_weight, current_item, weight[current_item], value[current_item]]
type OfferObservation struct {
	Vec *mat.VecDense
}

func (o *OfferObservation) Hash() string {
	return hashVec(o.Vec)
}

// Actions are reject (0) and accept (1)
func (o *OfferObservation) Actions() []int {
	return []int{RejectItem, AcceptItem}
}

func (o *OfferObservation) MarshalJSON() ([]byte, error) {
	return json.Marshal(vecToInts(o.Vec))
}

func hashDense(m *mat.Dense) string {
	rows, cols := m.Dims()
	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(";")
		}
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(",")
			}
			b.WriteString(strconv.Itoa(int(m.At(i, j))))
		}
	}
	return b.String()
}

func hashVec(v *mat.VecDense) string {
	var b strings.Builder
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Itoa(int(v.AtVec(i))))
	}
	return b.String()
}

func denseToInts(m *mat.Dense) [][]int {
	rows, cols := m.Dims()
	out := make([][]int, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = int(m.At(i, j))
		}
	}
	return out
}

func vecToInts(v *mat.VecDense) []int {
	out := make([]int, v.Len())
	for i := range out {
		out[i] = int(v.AtVec(i))
	}
	return out
}

func itemIndices(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}
