// Package web provides the dev API server's HTTP handlers. The routes
// and response shapes mirror the hosted backend's REST contract.
package web

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/flockhq/flock/pkg/models"
	"github.com/flockhq/flock/pkg/services"
)

type APIHandlers struct {
	workflowService *services.Workflow
	sessionService  *services.Session
	rosterService   *services.Roster
	validator       *validator.Validate
}

func NewAPIHandlers(
	workflowService *services.Workflow,
	sessionService *services.Session,
	rosterService *services.Roster,
	validator *validator.Validate,
) *APIHandlers {
	return &APIHandlers{
		workflowService: workflowService,
		sessionService:  sessionService,
		rosterService:   rosterService,
		validator:       validator,
	}
}

// Register mounts every route on the app.
func (h *APIHandlers) Register(app *fiber.App) {
	app.Get("/workflows", h.GetWorkflows)
	app.Post("/workflows", h.CreateWorkflow)
	app.Get("/workflows/:id", h.GetWorkflow)
	app.Put("/workflows/:id", h.UpdateWorkflow)
	app.Delete("/workflows/:id", h.DeleteWorkflow)
	app.Patch("/workflows/:id/status", h.TransitionWorkflow)

	app.Get("/sessions", h.GetSessions)
	app.Post("/sessions", h.CreateSession)
	app.Get("/sessions/:id", h.GetSession)
	app.Get("/sessions/:id/attendance", h.GetAttendance)
	app.Post("/sessions/:id/attendance", h.MarkAttendance)

	app.Get("/members", h.GetMembers)
	app.Post("/members", h.CreateMember)
	app.Get("/members/:id", h.GetMember)

	app.Get("/followups", h.GetFollowUps)
	app.Post("/followups", h.CreateFollowUp)
	app.Patch("/followups/:id/assignee", h.AssignFollowUp)

	app.Get("/assignees", h.GetAssignees)
	app.Get("/reference", h.GetReference)
}

func (h *APIHandlers) GetWorkflows(c fiber.Ctx) error {
	workflows, err := h.workflowService.List(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(workflows))
}

func (h *APIHandlers) GetWorkflow(c fiber.Ctx) error {
	workflow, err := h.workflowService.FetchByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(workflow))
}

func (h *APIHandlers) CreateWorkflow(c fiber.Ctx) error {
	var req CreateWorkflowRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.workflowService.Create(c.Context(), req.workflow())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(envelope(created))
}

func (h *APIHandlers) UpdateWorkflow(c fiber.Ctx) error {
	var req CreateWorkflowRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.workflowService.Update(c.Context(), c.Params("id"), req.workflow())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(updated))
}

func (h *APIHandlers) DeleteWorkflow(c fiber.Ctx) error {
	if err := h.workflowService.Delete(c.Context(), c.Params("id")); err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) TransitionWorkflow(c fiber.Ctx) error {
	var req TransitionRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if req.Status == "" {
		return badRequest(c, "Target status is required")
	}

	workflow, err := h.workflowService.Transition(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(workflow))
}

func (h *APIHandlers) GetSessions(c fiber.Ctx) error {
	sessions, err := h.sessionService.List(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(sessions))
}

func (h *APIHandlers) GetSession(c fiber.Ctx) error {
	session, err := h.sessionService.FetchByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(session))
}

func (h *APIHandlers) CreateSession(c fiber.Ctx) error {
	var req CreateSessionRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.sessionService.Create(c.Context(), &models.Session{
		Title:           req.Title,
		GroupID:         req.GroupID,
		StartsAt:        req.StartsAt,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(envelope(created))
}

func (h *APIHandlers) GetAttendance(c fiber.Ctx) error {
	records, err := h.sessionService.Attendance(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(records))
}

func (h *APIHandlers) MarkAttendance(c fiber.Ctx) error {
	var req MarkAttendanceRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	record, err := h.sessionService.MarkAttendance(c.Context(), c.Params("id"), req.MemberID, req.Status)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(envelope(record))
}

func (h *APIHandlers) GetMembers(c fiber.Ctx) error {
	members, err := h.rosterService.Members(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(members))
}

func (h *APIHandlers) GetMember(c fiber.Ctx) error {
	member, err := h.rosterService.MemberByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(member))
}

func (h *APIHandlers) CreateMember(c fiber.Ctx) error {
	var req CreateMemberRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.rosterService.SaveMember(c.Context(), &models.Member{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    req.Status,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(envelope(created))
}

func (h *APIHandlers) GetFollowUps(c fiber.Ctx) error {
	followUps, err := h.rosterService.FollowUps(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(followUps))
}

func (h *APIHandlers) CreateFollowUp(c fiber.Ctx) error {
	var req CreateFollowUpRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.rosterService.CreateFollowUp(c.Context(), &models.FollowUp{
		MemberID:   req.MemberID,
		AssigneeID: req.AssigneeID,
		Reason:     req.Reason,
		DueDate:    req.DueDate,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(envelope(created))
}

func (h *APIHandlers) AssignFollowUp(c fiber.Ctx) error {
	var req AssignFollowUpRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	followUp, err := h.rosterService.AssignFollowUp(c.Context(), c.Params("id"), req.AssigneeID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(followUp))
}

func (h *APIHandlers) GetAssignees(c fiber.Ctx) error {
	assignees, err := h.rosterService.Assignees(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(envelope(assignees))
}

func (h *APIHandlers) GetReference(c fiber.Ctx) error {
	return c.JSON(envelope(h.rosterService.Reference()))
}
