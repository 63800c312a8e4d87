package slot

import (
	"time"

	"github.com/google/uuid"

	"homecare-scheduler/internal/domain"
)

type loadKey struct {
	professionalID uuid.UUID
	date           string
}

// BatchLoad counts active assignments per professional and date during one bulk call.
// It is a floor under the store count: each lookup keeps the higher of the two, and
// Record adds the batch's own successes. Not safe for concurrent use.
type BatchLoad struct {
	counts map[loadKey]int
}

// NewBatchLoad returns an empty BatchLoad.
func NewBatchLoad() *BatchLoad {
	return &BatchLoad{counts: make(map[loadKey]int)}
}

func keyOf(professionalID uuid.UUID, date time.Time) loadKey {
	return loadKey{professionalID: professionalID, date: domain.FormatDate(date)}
}

// Count returns the known count for the pair and whether the pair was seen.
func (b *BatchLoad) Count(professionalID uuid.UUID, date time.Time) (int, bool) {
	if b == nil {
		return 0, false
	}
	n, ok := b.counts[keyOf(professionalID, date)]
	return n, ok
}

// observe merges a fresh store count into the batch and returns the effective count.
func (b *BatchLoad) observe(professionalID uuid.UUID, date time.Time, stored int) int {
	if b == nil {
		return stored
	}
	k := keyOf(professionalID, date)
	if n, ok := b.counts[k]; ok && n > stored {
		return n
	}
	b.counts[k] = stored
	return stored
}

// Record registers one successful assignment created in this batch.
func (b *BatchLoad) Record(professionalID uuid.UUID, date time.Time) {
	if b == nil {
		return
	}
	b.counts[keyOf(professionalID, date)]++
}
