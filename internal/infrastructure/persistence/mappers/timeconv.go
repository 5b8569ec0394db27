// Package mappers converts between domain entities and persistence models.
// Models store timestamps as unix milliseconds; domain entities carry
// time.Time in UTC.
package mappers

import "time"

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func millisPtrToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := millisToTime(*ms)
	return &t
}

func timePtrToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
