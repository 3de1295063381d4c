package request

import (
	"cleanlyquote/internal/domain/entities"

	"github.com/samber/lo"
)

type ScheduleRequest struct {
	ScheduledDate string  `json:"scheduledDate"`
	ScheduledTime *string `json:"scheduledTime"`
	Recurring     string  `json:"recurring"`
	AssignedTo    *string `json:"assignedTo"`
}

func (r ScheduleRequest) ToSchedule() entities.Schedule {
	return entities.Schedule{
		Date:       r.ScheduledDate,
		Time:       blankToNil(r.ScheduledTime),
		Recurring:  lo.Ternary(r.Recurring == "", entities.RecurringNone, r.Recurring),
		AssignedTo: blankToNil(r.AssignedTo),
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required,quote_status"`
}

type ScheduleRangeQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}
