// Package billing answers whether a task or expense counts as billable work.
package billing

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/de-tools/work-atlas/pkg/models/domain"
)

// FlagSource supplies the full flag set; called once at startup and again on
// explicit reload.
type FlagSource interface {
	ListFlags(ctx context.Context) ([]domain.BillingFlag, error)
}

type flagKey struct {
	category    domain.FlagCategory
	subcategory domain.FlagSubcategory
	value       string
}

// Index is a read-only lookup from (category, subcategory, value) to a
// non-billable flag. The flag set is published as an immutable snapshot
// behind an atomic pointer: Load builds a fresh map and swaps the reference,
// so concurrent readers never observe a partially-populated index. Until the
// first load completes, lookups run against an empty snapshot and fail open.
type Index struct {
	snapshot atomic.Pointer[map[flagKey]bool]
}

func NewIndex() *Index {
	idx := &Index{}
	empty := map[flagKey]bool{}
	idx.snapshot.Store(&empty)
	return idx
}

// Load builds a new snapshot from flags and publishes it.
func (i *Index) Load(flags []domain.BillingFlag) {
	next := make(map[flagKey]bool, len(flags))
	for _, f := range flags {
		next[flagKey{f.Category, f.Subcategory, f.ItemValue}] = f.NonBillable
	}
	i.snapshot.Store(&next)
}

// LoadFrom fetches the current flag set and swaps it in.
func (i *Index) LoadFrom(ctx context.Context, source FlagSource) error {
	flags, err := source.ListFlags(ctx)
	if err != nil {
		return fmt.Errorf("list billing flags: %w", err)
	}
	i.Load(flags)
	return nil
}

// Billable reports whether the given dimension value is billable. Unknown
// values are billable: a newly introduced client/project/phase must not
// silently hide billable work before its flag row exists.
func (i *Index) Billable(category domain.FlagCategory, subcategory domain.FlagSubcategory, value string) bool {
	snapshot := *i.snapshot.Load()
	nonBillable, ok := snapshot[flagKey{category, subcategory, value}]
	if !ok {
		return true
	}
	return !nonBillable
}
