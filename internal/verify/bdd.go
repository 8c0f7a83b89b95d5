package verify

import (
	"math/big"

	"github.com/dalzilio/rudd"
	"github.com/pkg/errors"

	"github.com/pborges/logicloom/internal/qm"
)

// Equivalent reports whether the sum of products formed by cover denotes
// exactly the function whose on-set is minterms, and how many assignments
// the cover satisfies.
func Equivalent(minterms, cover []qm.Term) (bool, *big.Int, error) {
	if len(minterms) == 0 {
		return false, nil, errors.New("no minterms to compare against")
	}
	width := minterms[0].Len()
	b, err := rudd.New(width)
	if err != nil {
		return false, nil, errors.Wrap(err, "allocating BDD")
	}
	product := func(t qm.Term) rudd.Node {
		var lits []rudd.Node
		for i, c := range t.Pattern() {
			switch c {
			case qm.One:
				lits = append(lits, b.Ithvar(i))
			case qm.Zero:
				lits = append(lits, b.NIthvar(i))
			}
		}
		return b.And(lits...)
	}
	sum := func(ts []qm.Term) rudd.Node {
		nodes := make([]rudd.Node, len(ts))
		for i, t := range ts {
			nodes[i] = product(t)
		}
		return b.Or(nodes...)
	}
	f := sum(cover)
	return b.Equal(sum(minterms), f), b.Satcount(f), nil
}
