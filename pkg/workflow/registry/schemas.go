package registry

import "github.com/flockhq/flock/pkg/models"

// Default carries the built-in step types the backend understands.
var Default = NewRegistry()

func init() {
	for _, def := range builtinSteps() {
		Default.Register(def)
	}
}

func builtinSteps() []*StepDefinition {
	return []*StepDefinition{
		{
			Type:        models.StepManualTask,
			Name:        "Manual Task",
			Description: "Assign a task to a leader or volunteer",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"instructions": map[string]any{"type": "string"},
					"assignee_id":  map[string]any{"type": "string"},
					"due_in_days":  map[string]any{"type": "integer", "minimum": 0},
				},
				"required": []any{"instructions"},
			},
		},
		{
			Type:        models.StepSendEmail,
			Name:        "Send Email",
			Description: "Send an email to the matched member",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"subject": map[string]any{"type": "string", "minLength": 1},
					"body":    map[string]any{"type": "string"},
				},
				"required": []any{"subject", "body"},
			},
		},
		{
			Type:        models.StepSendSMS,
			Name:        "Send SMS",
			Description: "Send a text message to the matched member",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"message": map[string]any{"type": "string", "minLength": 1, "maxLength": 160},
				},
				"required": []any{"message"},
			},
		},
		{
			Type:        models.StepWait,
			Name:        "Wait",
			Description: "Pause the workflow before the next step",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"days": map[string]any{"type": "integer", "minimum": 1},
				},
				"required": []any{"days"},
			},
		},
		{
			Type:        models.StepConditional,
			Name:        "Conditional",
			Description: "Branch on a member field",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"field":    map[string]any{"type": "string"},
					"operator": map[string]any{"type": "string", "enum": []any{"eq", "neq", "gt", "lt", "contains"}},
					"value":    map[string]any{},
				},
				"required": []any{"field", "operator"},
			},
		},
		{
			Type:        models.StepUpdateMember,
			Name:        "Update Member",
			Description: "Set a field on the matched member",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"field": map[string]any{"type": "string"},
					"value": map[string]any{},
				},
				"required": []any{"field"},
			},
		},
		{
			Type:        models.StepCreateNote,
			Name:        "Create Note",
			Description: "Attach a note to the matched member",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{"type": "string", "minLength": 1},
				},
				"required": []any{"text"},
			},
		},
		{
			Type:        models.StepWebhook,
			Name:        "Webhook",
			Description: "POST the match payload to an external URL",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"url":    map[string]any{"type": "string", "format": "uri"},
					"method": map[string]any{"type": "string", "enum": []any{"POST", "PUT"}},
				},
				"required": []any{"url"},
			},
		},
	}
}
