package tablediff

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
	lcs "github.com/yudai/golcs"
)

// EditScripter computes an ordered, non-overlapping set of deltas that
// transform the from rows into the to rows. An empty result means the two
// sequences are equal
type EditScripter interface {
	EditScript(from, to []Row) []*Delta
}

// EditScripterFunc adapts a function to the EditScripter interface
type EditScripterFunc func(from, to []Row) []*Delta

// EditScript calls f(from, to)
func (f EditScripterFunc) EditScript(from, to []Row) []*Delta {
	return f(from, to)
}

// LCS builds a minimal edit script from the longest common subsequence of
// both row sequences. It's the default EditScripter. Time & space are
// proportional to len(from) * len(to)
var LCS EditScripter = EditScripterFunc(lcsEditScript)

func lcsEditScript(from, to []Row) []*Delta {
	left := make([]interface{}, len(from))
	for i, r := range from {
		left[i] = r
	}
	right := make([]interface{}, len(to))
	for i, r := range to {
		right[i] = r
	}

	pairs := lcs.New(left, right).IndexPairs()
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].Left < pairs[b].Left })
	// a sentinel pair just past the end of both sequences flushes trailing gaps
	pairs = append(pairs, lcs.IndexPair{Left: len(from), Right: len(to)})

	var deltas []*Delta
	i, j := 0, 0
	for _, p := range pairs {
		if p.Left > i || p.Right > j {
			deltas = append(deltas, newDelta(from, to, i, p.Left, j, p.Right))
		}
		i, j = p.Left+1, p.Right+1
	}
	return deltas
}

// SequenceMatcher builds an edit script from python-difflib style opcodes.
// Scripts are not guaranteed to be minimal, but tend to keep long runs of
// matching rows together. Automatic junk detection is disabled so repeated
// rows are never ignored
var SequenceMatcher EditScripter = EditScripterFunc(sequenceMatcherEditScript)

func sequenceMatcherEditScript(from, to []Row) []*Delta {
	a := make([]string, len(from))
	for i, r := range from {
		a[i] = r.key()
	}
	b := make([]string, len(to))
	for i, r := range to {
		b[i] = r.key()
	}

	var deltas []*Delta
	m := difflib.NewMatcherWithJunk(a, b, false, nil)
	for _, op := range m.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		deltas = append(deltas, newDelta(from, to, op.I1, op.I2, op.J1, op.J2))
	}
	return deltas
}
