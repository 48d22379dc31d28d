package models

// StepType identifies one unit of action within a workflow.
type StepType string

const (
	StepManualTask   StepType = "manual_task"
	StepSendEmail    StepType = "send_email"
	StepSendSMS      StepType = "send_sms"
	StepWait         StepType = "wait"
	StepConditional  StepType = "conditional"
	StepUpdateMember StepType = "update_member"
	StepCreateNote   StepType = "create_note"
	StepWebhook      StepType = "webhook"
)

// StepTypes lists every known step type in display order.
var StepTypes = []StepType{
	StepManualTask,
	StepSendEmail,
	StepSendSMS,
	StepWait,
	StepConditional,
	StepUpdateMember,
	StepCreateNote,
	StepWebhook,
}

// WorkflowStep is one action in a workflow. Order values form a
// contiguous ascending sequence starting at 1 within a workflow; the
// builder renumbers after every reorder.
type WorkflowStep struct {
	ID       string         `json:"id"`
	Type     StepType       `json:"type"  validate:"required,oneof=manual_task send_email send_sms wait conditional update_member create_note webhook"`
	Name     string         `json:"name"  validate:"required"`
	Order    int            `json:"order" validate:"gte=1"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
