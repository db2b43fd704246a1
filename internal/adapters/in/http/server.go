package http

import (
	"errors"
	"net/http"
	"strconv"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/domain/validation"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the command and query handlers over HTTP.
// It binds request bodies, translates domain errors to status codes and
// keeps no state of its own.
type Server struct {
	// Command handlers
	createAccountHandler       commands.CreateAccountCommandHandler
	updateAccountHandler       commands.UpdateAccountCommandHandler
	createParcelHandler        commands.CreateParcelCommandHandler
	updateParcelHandler        commands.UpdateParcelCommandHandler
	deleteParcelHandler        commands.DeleteParcelCommandHandler
	assignParcelHandler        commands.AssignParcelCommandHandler
	markParcelDeliveredHandler commands.MarkParcelDeliveredCommandHandler
	cancelParcelHandler        commands.CancelParcelCommandHandler
	setAccountActiveHandler    commands.SetAccountActiveCommandHandler

	// Query handlers
	getParcelsHandler      queries.GetParcelsQueryHandler
	getTransportersHandler queries.GetTransportersQueryHandler
}

// NewServer creates an HTTP server wired to the given handlers.
func NewServer(
	createAccountHandler commands.CreateAccountCommandHandler,
	updateAccountHandler commands.UpdateAccountCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	updateParcelHandler commands.UpdateParcelCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	assignParcelHandler commands.AssignParcelCommandHandler,
	markParcelDeliveredHandler commands.MarkParcelDeliveredCommandHandler,
	cancelParcelHandler commands.CancelParcelCommandHandler,
	setAccountActiveHandler commands.SetAccountActiveCommandHandler,
	getParcelsHandler queries.GetParcelsQueryHandler,
	getTransportersHandler queries.GetTransportersQueryHandler,
) *Server {
	return &Server{
		createAccountHandler:       createAccountHandler,
		updateAccountHandler:       updateAccountHandler,
		createParcelHandler:        createParcelHandler,
		updateParcelHandler:        updateParcelHandler,
		deleteParcelHandler:        deleteParcelHandler,
		assignParcelHandler:        assignParcelHandler,
		markParcelDeliveredHandler: markParcelDeliveredHandler,
		cancelParcelHandler:        cancelParcelHandler,
		setAccountActiveHandler:    setAccountActiveHandler,
		getParcelsHandler:          getParcelsHandler,
		getTransportersHandler:     getTransportersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/accounts", s.CreateAccount)
	api.PUT("/accounts/:id", s.UpdateAccount)
	api.PATCH("/accounts/:id/active", s.SetAccountActive)
	api.POST("/parcels", s.CreateParcel)
	api.PUT("/parcels/:id", s.UpdateParcel)
	api.DELETE("/parcels/:id", s.DeleteParcel)
	api.POST("/parcels/assign", s.AssignParcel)
	api.POST("/parcels/:id/assign", s.AssignSpecificParcel)
	api.POST("/parcels/:id/deliver", s.MarkParcelDelivered)
	api.POST("/parcels/:id/cancel", s.CancelParcel)
	api.GET("/parcels", s.GetParcels)
	api.GET("/transporters", s.GetTransporters)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(ctx echo.Context) error {
	var body CreateAccountRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewCreateAccountCommand(accountID, body.Login, body.Password, body.Role, body.Specialty)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: accountID.String()})
}

// UpdateAccount handles PUT /api/v1/accounts/:id. Only credentials can
// change; role and specialty are fixed at creation.
func (s *Server) UpdateAccount(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid account id")
	}

	var body UpdateAccountRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateAccountCommand(accountID, body.Login, body.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetAccountActive handles PATCH /api/v1/accounts/:id/active.
func (s *Server) SetAccountActive(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid account id")
	}

	var body SetAccountActiveRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if body.Active == nil {
		return badRequest(ctx, "active is required")
	}

	cmd, err := commands.NewSetAccountActiveCommand(accountID, *body.Active)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setAccountActiveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body CreateParcelRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		body.Kind,
		body.Weight,
		body.DestinationAddress,
		body.HandlingInstructions,
		body.MinTemperature,
		body.MaxTemperature,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: parcelID.String()})
}

// UpdateParcel handles PUT /api/v1/parcels/:id. Only pending parcels can be
// edited and the kind is immutable; a parcel already in delivery responds
// with a conflict.
func (s *Server) UpdateParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	var body UpdateParcelRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateParcelCommand(
		parcelID,
		body.Weight,
		body.DestinationAddress,
		body.HandlingInstructions,
		body.MinTemperature,
		body.MaxTemperature,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteParcel handles DELETE /api/v1/parcels/:id.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignParcel handles POST /api/v1/parcels/assign. It picks the oldest
// pending parcel. An empty queue or no eligible transporter is a normal
// outcome, reported as assigned=false.
func (s *Server) AssignParcel(ctx echo.Context) error {
	cmd := commands.NewAssignParcelCommand()

	err := s.assignParcelHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, AssignParcelResponse{Assigned: true})
	case errors.Is(err, commands.ErrNoParcelFound):
		return ctx.JSON(http.StatusOK, AssignParcelResponse{Assigned: false, Reason: "no pending parcel"})
	case errors.Is(err, services.ErrNoEligibleTransporter):
		return ctx.JSON(http.StatusOK, AssignParcelResponse{Assigned: false, Reason: "no eligible transporter"})
	default:
		return writeError(ctx, err)
	}
}

// AssignSpecificParcel handles POST /api/v1/parcels/:id/assign. Unlike the
// queue-driven variant, an unknown parcel id is a 404.
func (s *Server) AssignSpecificParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	cmd, err := commands.NewAssignParcelCommandForParcel(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	err = s.assignParcelHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, AssignParcelResponse{Assigned: true})
	case errors.Is(err, services.ErrNoEligibleTransporter):
		return ctx.JSON(http.StatusOK, AssignParcelResponse{Assigned: false, Reason: "no eligible transporter"})
	default:
		return writeError(ctx, err)
	}
}

// MarkParcelDelivered handles POST /api/v1/parcels/:id/deliver.
func (s *Server) MarkParcelDelivered(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	cmd, err := commands.NewMarkParcelDeliveredCommand(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markParcelDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelParcel handles POST /api/v1/parcels/:id/cancel.
func (s *Server) CancelParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid parcel id")
	}

	cmd, err := commands.NewCancelParcelCommand(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetParcels handles GET /api/v1/parcels with optional kind, status and
// address filters plus limit/offset paging.
func (s *Server) GetParcels(ctx echo.Context) error {
	limit, err := pagingParam(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "invalid limit")
	}
	offset, err := pagingParam(ctx, "offset")
	if err != nil {
		return badRequest(ctx, "invalid offset")
	}

	query, err := queries.NewGetParcelsQuery(
		ctx.QueryParam("kind"),
		ctx.QueryParam("status"),
		ctx.QueryParam("address"),
		limit,
		offset,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	parcels, err := s.getParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Parcel, len(parcels))
	for i, p := range parcels {
		response[i] = Parcel{
			ID:                   p.ID.String(),
			Kind:                 p.Kind,
			Weight:               p.Weight,
			DestinationAddress:   p.DestinationAddress,
			Status:               p.Status,
			HandlingInstructions: p.HandlingInstructions,
			MinTemperature:       p.MinTemperature,
			MaxTemperature:       p.MaxTemperature,
			CreatedAt:            p.CreatedAt,
		}
		if p.TransporterID != nil {
			transporterID := p.TransporterID.String()
			response[i].TransporterID = &transporterID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTransporters handles GET /api/v1/transporters with optional specialty
// and status filters plus limit/offset paging.
func (s *Server) GetTransporters(ctx echo.Context) error {
	limit, err := pagingParam(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "invalid limit")
	}
	offset, err := pagingParam(ctx, "offset")
	if err != nil {
		return badRequest(ctx, "invalid offset")
	}

	query, err := queries.NewGetTransportersQuery(
		ctx.QueryParam("specialty"),
		ctx.QueryParam("status"),
		limit,
		offset,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	transporters, err := s.getTransportersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Transporter, len(transporters))
	for i, t := range transporters {
		response[i] = Transporter{
			ID:        t.ID.String(),
			Login:     t.Login,
			Specialty: t.Specialty,
			Status:    t.Status,
			Active:    t.Active,
			CreatedAt: t.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// pagingParam reads a non-negative integer query parameter; absence means zero.
func pagingParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors to HTTP responses. Validation failures carry
// the full violation list so the client sees every broken rule at once.
func writeError(ctx echo.Context, err error) error {
	var violations validation.Violations
	if errors.As(err, &violations) {
		response := Error{
			Code:       http.StatusBadRequest,
			Message:    "validation failed",
			Violations: make([]ViolationDetail, len(violations)),
		}
		for i, v := range violations {
			response.Violations[i] = ViolationDetail{Field: v.Field, Rule: v.Rule, Value: v.Value}
		}
		return ctx.JSON(http.StatusBadRequest, response)
	}

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: err.Error()})
	case errors.Is(err, errs.ErrPersistenceUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "storage temporarily unavailable",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}
