package interfaces

import "github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"

// IJobCardEvents receives job-card lifecycle notifications for
// instrumentation. Implementations must not block.
type IJobCardEvents interface {
	JobCardCreated(card entities.JobCard)
	StatusUpdated(from, to entities.JobCardStatus)
	PartItemsDropped(count int)
}
