package tasks

import (
	"github.com/hibiken/asynq"
)

// TypeCompletionSweep marks accepted reservations with a past date as
// completed.
const TypeCompletionSweep = "reservation:complete_sweep"

func NewCompletionSweepTask() *asynq.Task {
	return asynq.NewTask(TypeCompletionSweep, nil)
}
