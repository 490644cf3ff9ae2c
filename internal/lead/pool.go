package lead

import (
	"slices"

	"github.com/shopspring/decimal"

	"leadconsole/internal/roster"
)

// Distribution is the outcome of assigning a prefix of the pool to a seller.
// It is shown once and discarded; only the shrunken pool survives.
type Distribution struct {
	Recipient roster.User
	Requested int
	Taken     []Lead
	Remaining []Lead
	Total     decimal.Decimal
}

// Count is the number of leads actually handed out, which is less than
// Requested when the pool ran short.
func (d Distribution) Count() int { return len(d.Taken) }

// Distribute takes the first count leads of pool for recipient.
// count is bounded to [0, len(pool)]. The input slice is never modified.
func Distribute(pool []Lead, count int, recipient roster.User) Distribution {
	n := min(max(count, 0), len(pool))
	taken := slices.Clone(pool[:n])
	return Distribution{
		Recipient: recipient,
		Requested: count,
		Taken:     taken,
		Remaining: slices.Clone(pool[n:]),
		Total:     Sum(taken),
	}
}

// Pool is an ordered, immutable batch of leads awaiting distribution.
// The zero value is an empty pool.
type Pool struct {
	leads []Lead
}

// NewPool returns a pool holding a copy of leads. Importing a file replaces
// the current pool with NewPool(parsed).
func NewPool(leads []Lead) Pool {
	return Pool{leads: slices.Clone(leads)}
}

// Len returns the number of leads in the pool.
func (p Pool) Len() int { return len(p.leads) }

// Leads returns a copy of the pool in order.
func (p Pool) Leads() []Lead { return slices.Clone(p.leads) }

// Total returns the sum of every lead's released amount.
func (p Pool) Total() decimal.Decimal { return Sum(p.leads) }

// Distribute checks the caller preconditions and hands the first count leads
// to recipient. On error the returned pool is p itself.
func (p Pool) Distribute(count int, recipient roster.User) (Pool, Distribution, error) {
	if recipient.ID == "" {
		return p, Distribution{}, ErrNoRecipient
	}
	if len(p.leads) == 0 {
		return p, Distribution{}, ErrEmptyPool
	}
	d := Distribute(p.leads, count, recipient)
	return Pool{leads: d.Remaining}, d, nil
}
