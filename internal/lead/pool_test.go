package lead

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadconsole/internal/roster"
)

var seller = roster.User{ID: "rafael-teste", Name: "Rafael Teste", Tier: roster.TierStandard}

func testPool() []Lead {
	return []Lead{
		{Name: "L1", ReleasedAmount: dec("100.00")},
		{Name: "L2", ReleasedAmount: dec("50.00")},
		{Name: "L3", ReleasedAmount: dec("25.00")},
	}
}

func TestDistribute_TakesPrefix(t *testing.T) {
	pool := testPool()

	d := Distribute(pool, 2, seller)

	assert.Equal(t, pool[:2], d.Taken)
	assert.Equal(t, pool[2:], d.Remaining)
	assert.True(t, dec("150.00").Equal(d.Total), "total %s", d.Total)
	assert.Equal(t, 2, d.Count())
	assert.Equal(t, seller, d.Recipient)
}

func TestDistribute_LengthsAndTotal(t *testing.T) {
	pools := map[string][]Lead{
		"empty": nil,
		"one":   {{Name: "A", ReleasedAmount: dec("10.10")}},
		"many": {
			{Name: "A", ReleasedAmount: dec("0.10")},
			{Name: "B", ReleasedAmount: dec("0.20")},
			{Name: "C", ReleasedAmount: dec("0")},
			{Name: "D", ReleasedAmount: dec("1234.56")},
			{Name: "E", ReleasedAmount: dec("7")},
		},
	}
	for name, pool := range pools {
		for _, k := range []int{-1, 0, 1, 2, 3, 5, 10} {
			t.Run(fmt.Sprintf("%s/k=%d", name, k), func(t *testing.T) {
				d := Distribute(pool, k, seller)

				want := min(max(k, 0), len(pool))
				assert.Len(t, d.Taken, want)
				assert.Len(t, d.Remaining, len(pool)-want)

				sum := decimal.Zero
				for _, l := range pool[:want] {
					sum = sum.Add(l.ReleasedAmount)
				}
				assert.True(t, sum.Equal(d.Total), "total %s, want %s", d.Total, sum)
			})
		}
	}
}

func TestDistribute_DoesNotMutateInput(t *testing.T) {
	pool := testPool()
	d := Distribute(pool, 1, seller)
	d.Taken[0].Name = "changed"
	d.Remaining[0].Name = "changed"

	assert.Equal(t, testPool(), pool)
}

func TestPool_Distribute(t *testing.T) {
	p := NewPool(testPool())

	next, d, err := p.Distribute(2, seller)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len(), "the receiver is a value and stays intact")
	assert.Equal(t, 1, next.Len())
	assert.Equal(t, "L3", next.Leads()[0].Name)
	assert.True(t, dec("150").Equal(d.Total))

	next, d, err = next.Distribute(10, seller)
	require.NoError(t, err)
	assert.Equal(t, 0, next.Len())
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, 10, d.Requested)
}

func TestPool_DistributePreconditions(t *testing.T) {
	full := NewPool(testPool())

	got, _, err := full.Distribute(1, roster.User{})
	assert.ErrorIs(t, err, ErrNoRecipient)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, full, got)

	var empty Pool
	got, _, err = empty.Distribute(1, seller)
	assert.ErrorIs(t, err, ErrEmptyPool)
	assert.Equal(t, 0, got.Len())
}

func TestPool_TotalAndCopies(t *testing.T) {
	src := testPool()
	p := NewPool(src)
	src[0].Name = "changed"

	assert.Equal(t, "L1", p.Leads()[0].Name)
	assert.True(t, dec("175").Equal(p.Total()))

	leads := p.Leads()
	leads[1].Name = "changed"
	assert.Equal(t, "L2", p.Leads()[1].Name)
}
