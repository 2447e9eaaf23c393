package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
)

// ErrHistoryIsEmpty is returned when restoring an order without any state record.
var ErrHistoryIsEmpty = errors.New("order history must contain at least one state record")

// StateRecord is one immutable entry of an order's transition log.
type StateRecord struct {
	state State
	time  time.Time
}

func NewStateRecord(state State, at time.Time) (StateRecord, error) {
	if err := state.Validate(); err != nil {
		return StateRecord{}, err
	}
	if at.IsZero() {
		return StateRecord{}, errs.NewValueIsRequiredError("state time")
	}
	return StateRecord{state: state, time: at}, nil
}

func (r StateRecord) State() State { return r.state }

func (r StateRecord) Time() time.Time { return r.time }

// History is the append-only transition log of one order, oldest first.
type History struct {
	records []StateRecord
}

// NewHistory restores a log from records already ordered by time.
func NewHistory(records ...StateRecord) (History, error) {
	h := History{}
	for _, r := range records {
		next, err := h.Append(r)
		if err != nil {
			return History{}, err
		}
		h = next
	}
	return h, nil
}

// Append returns a new History with r at the end. Records must not go back in time.
func (h History) Append(r StateRecord) (History, error) {
	if err := r.state.Validate(); err != nil {
		return h, err
	}
	if last, ok := h.Current(); ok && r.time.Before(last.time) {
		return h, errs.NewValueIsInvalidErrorWithCause(
			"state time",
			fmt.Errorf("%s is before the last record at %s", r.time.Format(time.RFC3339Nano), last.time.Format(time.RFC3339Nano)),
		)
	}
	records := make([]StateRecord, len(h.records), len(h.records)+1)
	copy(records, h.records)
	return History{records: append(records, r)}, nil
}

// Current is the most recent record; it defines the state of the order.
func (h History) Current() (StateRecord, bool) {
	if len(h.records) == 0 {
		return StateRecord{}, false
	}
	return h.records[len(h.records)-1], true
}

func (h History) Records() []StateRecord {
	return append([]StateRecord(nil), h.records...)
}

func (h History) Len() int {
	return len(h.records)
}
