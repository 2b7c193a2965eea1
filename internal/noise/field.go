// Package noise provides deterministic coherent noise fields. The transition
// effect samples one per hex cell to desynchronize neighboring cells.
package noise

import (
	"errors"
	"fmt"
	"sort"
)

// Field is a continuous, deterministic scalar function of the plane with
// values roughly in [-1, 1]. Implementations must be safe for concurrent use.
type Field interface {
	Eval2(x, y float64) float64
}

// Func adapts a plain function to Field.
type Func func(x, y float64) float64

// Eval2 calls f.
func (f Func) Eval2(x, y float64) float64 { return f(x, y) }

// Constant returns a field that is v everywhere.
func Constant(v float64) Field {
	return Func(func(float64, float64) float64 { return v })
}

// Kind names a registered noise backend.
type Kind string

// Factory builds a field for the given seed.
type Factory func(seed int64) Field

// ErrUnknownKind is returned by New for unregistered kinds.
var ErrUnknownKind = errors.New("noise: unknown kind")

var factories = map[Kind]Factory{}

// Register adds a backend under the provided kind.
func Register(kind Kind, f Factory) {
	if kind == "" || f == nil {
		return
	}
	factories[kind] = f
}

// New builds a field of the requested kind.
func New(kind Kind, seed int64) (Field, error) {
	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownKind, kind, Kinds())
	}
	return f(seed), nil
}

// Kinds lists the registered backends in sorted order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// KindFlat disables per-cell jitter entirely.
const KindFlat Kind = "flat"

func init() {
	Register(KindFlat, func(int64) Field { return Constant(0) })
}
