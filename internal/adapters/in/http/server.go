// Package http exposes the dispatch API over REST. Handlers translate JSON
// requests into commands and queries; all business rules live below the
// application layer.
package http

import (
	"net/http"

	"kurirkan/internal/core/application/usecases/commands"
	"kurirkan/internal/core/application/usecases/queries"
	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/core/domain/model/settings"
	"kurirkan/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the server exposes.
type Handlers struct {
	RegisterCustomer     commands.RegisterCustomerCommandHandler
	LoginCustomer        commands.LoginCustomerCommandHandler
	LoginDriver          commands.LoginDriverCommandHandler
	CreateOrder          commands.CreateOrderCommandHandler
	AssignOrder          commands.AssignOrderCommandHandler
	AdvanceOrderStatus   commands.AdvanceOrderStatusCommandHandler
	AddDriver            commands.AddDriverCommandHandler
	UpdateDriver         commands.UpdateDriverCommandHandler
	DeleteDriver         commands.DeleteDriverCommandHandler
	SetDriverDuty        commands.SetDriverDutyCommandHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler
	UpdateSettings       commands.UpdateSettingsCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetPendingQueue   queries.GetPendingQueueQueryHandler
	GetAllDrivers     queries.GetAllDriversQueryHandler
	GetNotifications  queries.GetNotificationsQueryHandler
	GetSettings       queries.GetSettingsQueryHandler
}

// Server wires the REST routes to the application layer.
type Server struct {
	handlers Handlers
	issuer   auth.TokenIssuer
}

// NewServer creates an HTTP server facade over the given handlers.
func NewServer(handlers Handlers, issuer auth.TokenIssuer) *Server {
	return &Server{handlers: handlers, issuer: issuer}
}

// RegisterRoutes attaches every route to the echo instance. Public routes
// cover registration and login; everything else requires a bearer token,
// and administration additionally requires the admin flag.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")
	api.POST("/customers/register", s.handleRegisterCustomer)
	api.POST("/customers/login", s.handleLoginCustomer)
	api.POST("/drivers/login", s.handleLoginDriver)

	authed := api.Group("", s.authMiddleware)
	authed.POST("/orders", s.handleCreateOrder)
	authed.GET("/orders", s.handleGetMyOrders)
	authed.GET("/orders/:id", s.handleGetOrder)
	authed.PUT("/orders/:id/status", s.handleAdvanceOrderStatus)
	authed.GET("/notifications", s.handleGetNotifications)
	authed.PUT("/notifications/:id/read", s.handleMarkNotificationRead)
	authed.PUT("/drivers/:id/duty", s.handleSetDriverDuty)

	admin := authed.Group("", s.requireAdmin)
	admin.GET("/queue", s.handleGetPendingQueue)
	admin.POST("/orders/:id/assign", s.handleAssignOrder)
	admin.GET("/drivers", s.handleGetAllDrivers)
	admin.POST("/drivers", s.handleAddDriver)
	admin.PUT("/drivers/:id", s.handleUpdateDriver)
	admin.DELETE("/drivers/:id", s.handleDeleteDriver)
	admin.GET("/settings", s.handleGetSettings)
	admin.PUT("/settings", s.handleUpdateSettings)
}

func (s *Server) handleRegisterCustomer(ctx echo.Context) error {
	var req registerCustomerRequest
	if ok, respErr := bindAndValidate(ctx, &req); !ok {
		return respErr
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, req.Phone, req.Name, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: customerID.String()})
}

func (s *Server) handleLoginCustomer(ctx echo.Context) error {
	var req loginCustomerRequest
	if ok, respErr := bindAndValidate(ctx, &req); !ok {
		return respErr
	}

	cmd, err := commands.NewLoginCustomerCommand(req.Phone, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.LoginCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponseFromCustomer(result))
}

func (s *Server) handleLoginDriver(ctx echo.Context) error {
	var req loginDriverRequest
	if ok, respErr := bindAndValidate(ctx, &req); !ok {
		return respErr
	}

	cmd, err := commands.NewLoginDriverCommand(req.Username, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.LoginDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponseFromDriver(result))
}

func (s *Server) handleCreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if ok, respErr := bindAndValidate(ctx, &req); !ok {
		return respErr
	}

	customerID, err := kernel.UUIDFromString(currentClaims(ctx).UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	serviceType, err := order.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, serviceType,
		req.PickupAddress, req.DeliveryAddress,
		order.Details{
			ItemDescription: req.ItemDescription,
			ItemWeight:      req.ItemWeight,
			ItemValue:       req.ItemValue,
			Distance:        req.Distance,
			Notes:           req.Notes,
			PaymentMethod:   req.PaymentMethod,
			Price:           req.Price,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

func (s *Server) handleGetMyOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(currentClaims(ctx).UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponseFromQuery(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) handleGetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(o))
}

func (s *Server) handleAdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req advanceOrderStatusRequest
	if ok, respErr := bindAndValidate(ctx, &req); !ok {
		return respErr
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, next, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetNotifications(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(currentClaims(ctx).UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	unreadOnly := ctx.QueryParam("unread") == "true"
	query, err := queries.NewGetNotificationsQuery(userID, unreadOnly)
	if err != nil {
		return respondError(ctx, err)
	}

	feed, err := s.handlers.GetNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]notificationResponse, 0, len(feed))
	for _, n := range feed {
		response = append(response, notificationResponseFromQuery(n))
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) handleMarkNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid notification id")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// handleSetDriverDuty lets a driver toggle their own availability; admins
// may toggle anyone's.
func (s *Server) handleSetDriverDuty(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid driver id")
	}

	claims := currentClaims(ctx)
	if !claims.IsAdmin && claims.UserID != driverID.String() {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "cannot change another driver's duty status",
		})
	}

	var req setDriverDutyRequest
	if ok, respErr := bindAndValidate(ctx, &req); !ok {
		return respErr
	}

	status, err := driver.DutyStatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetDriverDutyCommand(driverID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.SetDriverDuty.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetPendingQueue(ctx echo.Context) error {
	entries, err := s.handlers.GetPendingQueue.Handle(ctx.Request().Context(), queries.NewGetPendingQueueQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]queueEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, queueEntryResponse{
			OrderID:       entry.OrderID.String(),
			OrderNumber:   entry.OrderNumber,
			CustomerName:  entry.CustomerName,
			ServiceType:   entry.ServiceType,
			PickupAddress: entry.PickupAddress,
			Priority:      entry.Priority,
			AddedAt:       entry.AddedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) handleAssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req assignOrderRequest
	if ok, respErr := bindAndValidate(ctx, &req); !ok {
		return respErr
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetAllDrivers(ctx echo.Context) error {
	drivers, err := s.handlers.GetAllDrivers.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]driverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, driverResponseFromQuery(d))
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) handleAddDriver(ctx echo.Context) error {
	var req addDriverRequest
	if ok, respErr := bindAndValidate(ctx, &req); !ok {
		return respErr
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewAddDriverCommand(driverID, req.Name, req.Phone, req.Username, req.Password, req.IsAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: driverID.String()})
}

func (s *Server) handleUpdateDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid driver id")
	}

	var req updateDriverRequest
	if ok, respErr := bindAndValidate(ctx, &req); !ok {
		return respErr
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, req.Name, req.Phone, req.Rating, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleDeleteDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid driver id")
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetSettings(ctx echo.Context) error {
	current, err := s.handlers.GetSettings.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, settingsResponseFromDomain(current))
}

func (s *Server) handleUpdateSettings(ctx echo.Context) error {
	var req updateSettingsRequest
	if ok, respErr := bindAndValidate(ctx, &req); !ok {
		return respErr
	}

	cmd, err := commands.NewUpdateSettingsCommand(settings.AppSettings{
		OrderTimeoutMinutes: req.OrderTimeoutMinutes,
		QueueCheckMinutes:   req.QueueCheckMinutes,
		AutoCleanupDays:     req.AutoCleanupDays,
		OperatingHours: settings.OperatingHours{
			Start: req.OperatingHoursStart,
			End:   req.OperatingHoursEnd,
		},
	})
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateSettings.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bindAndValidate decodes and validates the request body. On failure the
// 400 response is already written and ok is false.
func bindAndValidate(ctx echo.Context, req interface{}) (ok bool, err error) {
	if bindErr := ctx.Bind(req); bindErr != nil {
		return false, respondBadRequest(ctx, "invalid request body")
	}
	if validateErr := ctx.Validate(req); validateErr != nil {
		return false, respondBadRequest(ctx, "invalid request: "+validateErr.Error())
	}
	return true, nil
}
