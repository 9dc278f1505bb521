package report

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type bucket struct {
	key    string
	amount decimal.Decimal
}

// sumBuckets sums amounts per zero-padded date key.
// Keys sort lexically in chronological order.
type sumBuckets map[string]decimal.Decimal

func newSumBuckets() sumBuckets {
	return make(sumBuckets)
}

func (m sumBuckets) add(key string, amount decimal.Decimal) {
	if cur, ok := m[key]; ok {
		m[key] = cur.Add(amount)
		return
	}
	m[key] = amount
}

func (m sumBuckets) sorted() []bucket {
	out := make([]bucket, 0, len(m))
	for k, v := range m {
		out = append(out, bucket{key: k, amount: v})
	}
	slices.SortFunc(out, func(a, b bucket) int {
		return strings.Compare(a.key, b.key)
	})
	return out
}

func (m sumBuckets) get(key string) decimal.Decimal {
	if v, ok := m[key]; ok {
		return v
	}
	return decimal.Zero
}
