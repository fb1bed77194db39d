package entities

import "slices"

// jobCardTransitions lists the next statuses a card may move to under the
// strict transition policy. Staying on the current status is always allowed.
var jobCardTransitions = map[JobCardStatus][]JobCardStatus{
	JobCardStatusCreated:        {JobCardStatusInspection},
	JobCardStatusInspection:     {JobCardStatusEstimateSent},
	JobCardStatusEstimateSent:   {JobCardStatusApproved, JobCardStatusInspection},
	JobCardStatusApproved:       {JobCardStatusPartsOrdered},
	JobCardStatusPartsOrdered:   {JobCardStatusWorkInProgress},
	JobCardStatusWorkInProgress: {JobCardStatusReady},
	JobCardStatusReady:          {JobCardStatusDelivered},
	JobCardStatusDelivered:      {},
}

// CanTransitionTo reports whether the strict transition table allows moving
// from s to next.
func (s JobCardStatus) CanTransitionTo(next JobCardStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	return slices.Contains(jobCardTransitions[s], next)
}
