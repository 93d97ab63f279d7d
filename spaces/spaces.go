// Package spaces declares the shapes and bounds of environment actions
// and observations.
package spaces

// Space describes the layout of an action or observation
type Space interface {
	isSpace()
}

// Discrete is a finite action set {0, ..., N-1}
type Discrete struct {
	N int
}

func (Discrete) isSpace() {}

// Contains reports whether the action lies in the set
func (d Discrete) Contains(action int) bool {
	return action >= 0 && action < d.N
}

// Box is a bounded numeric tensor of the given shape. Both bounds are
// inclusive.
type Box struct {
	Low   float64
	High  float64
	Shape []int
}

func (Box) isSpace() {}

// Size is the total number of elements described by the shape
func (b Box) Size() int {
	size := 1
	for _, d := range b.Shape {
		size *= d
	}
	return size
}

// Contains reports whether every value lies within the bounds
func (b Box) Contains(values []float64) bool {
	if len(values) != b.Size() {
		return false
	}
	for _, v := range values {
		if v < b.Low || v > b.High {
			return false
		}
	}
	return true
}

// Dict is a space of named sub-spaces
type Dict map[string]Space

func (Dict) isSpace() {}
