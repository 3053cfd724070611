package http

import (
	"net/http"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler      commands.RegisterUserCommandHandler
	loginUserHandler         commands.LoginUserCommandHandler
	createInstallerHandler   commands.CreateInstallerCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	assignInstallerHandler   commands.AssignInstallerCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	addCommentHandler        commands.AddCommentCommandHandler

	// Query handlers
	authenticateUserHandler queries.AuthenticateUserQueryHandler
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getMyOrdersHandler      queries.GetMyOrdersQueryHandler
	getOrderCommentsHandler queries.GetOrderCommentsQueryHandler
	getOrderHistoryHandler  queries.GetOrderHistoryQueryHandler
	getAllInstallersHandler queries.GetAllInstallersQueryHandler
	getAllUsersHandler      queries.GetAllUsersQueryHandler
	getProfileHandler       queries.GetProfileQueryHandler

	policy *services.AccessPolicy
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	loginUserHandler commands.LoginUserCommandHandler,
	createInstallerHandler commands.CreateInstallerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	assignInstallerHandler commands.AssignInstallerCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	addCommentHandler commands.AddCommentCommandHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getMyOrdersHandler queries.GetMyOrdersQueryHandler,
	getOrderCommentsHandler queries.GetOrderCommentsQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getAllInstallersHandler queries.GetAllInstallersQueryHandler,
	getAllUsersHandler queries.GetAllUsersQueryHandler,
	getProfileHandler queries.GetProfileQueryHandler,
	policy *services.AccessPolicy,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		loginUserHandler:         loginUserHandler,
		createInstallerHandler:   createInstallerHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		assignInstallerHandler:   assignInstallerHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		addCommentHandler:        addCommentHandler,
		authenticateUserHandler:  authenticateUserHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getMyOrdersHandler:       getMyOrdersHandler,
		getOrderCommentsHandler:  getOrderCommentsHandler,
		getOrderHistoryHandler:   getOrderHistoryHandler,
		getAllInstallersHandler:  getAllInstallersHandler,
		getAllUsersHandler:       getAllUsersHandler,
		getProfileHandler:        getProfileHandler,
		policy:                   policy,
	}
}

// RegisterRoutes mounts all API routes on the Echo instance.
// Registration and login are public; everything else sits behind the auth
// middleware, with role-gated routes additionally behind the access policy.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	authed := api.Group("", AuthMiddleware(s.authenticateUserHandler))

	authed.GET("/users", s.ListUsers, RequireOperation(s.policy, services.OpListUsers))
	authed.GET("/users/me", s.GetProfile, RequireOperation(s.policy, services.OpGetProfile))

	authed.GET("/installers", s.ListInstallers, RequireOperation(s.policy, services.OpListInstallers))
	authed.POST("/installers", s.CreateInstaller, RequireOperation(s.policy, services.OpCreateInstaller))

	authed.GET("/orders", s.ListOrders, RequireOperation(s.policy, services.OpListOrders))
	authed.POST("/orders", s.CreateOrder, RequireOperation(s.policy, services.OpCreateOrder))
	authed.GET("/orders/my", s.ListMyOrders, RequireOperation(s.policy, services.OpListMyOrders))
	authed.PUT("/orders/:order_id", s.UpdateOrder, RequireOperation(s.policy, services.OpUpdateOrder))
	authed.POST("/orders/:order_id/assign_installer", s.AssignInstaller,
		RequireOperation(s.policy, services.OpAssignInstaller))
	authed.POST("/orders/:order_id/change_status", s.ChangeStatus,
		RequireOperation(s.policy, services.OpChangeStatus))
	authed.POST("/orders/:order_id/comments", s.AddComment, RequireOperation(s.policy, services.OpAddComment))
	authed.GET("/orders/:order_id/comments", s.ListComments, RequireOperation(s.policy, services.OpListComments))
	authed.GET("/orders/:order_id/history", s.ListHistory, RequireOperation(s.policy, services.OpListHistory))
}

// Register handles POST /api/v1/auth/register - creates an account and
// returns its first session token.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(req.Username, req.Password, role)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	token, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, tokenResponse{Token: token})
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues a
// fresh session token.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewLoginUserCommand(req.Username, req.Password)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	token, err := s.loginUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokenResponse{Token: token})
}

// ListUsers handles GET /api/v1/users - lists all accounts.
func (s *Server) ListUsers(ctx echo.Context) error {
	users, err := s.getAllUsersHandler.Handle(ctx.Request().Context(), queries.NewGetAllUsersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]userResponse, 0, len(users))
	for _, user := range users {
		response = append(response, userFromReadModel(user))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProfile handles GET /api/v1/users/me - returns the caller's own account.
func (s *Server) GetProfile(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "not authenticated")
	}

	query, err := queries.NewGetProfileQuery(identity.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := profileResponse{User: userFromReadModel(profile.User)}
	if profile.Installer != nil {
		installer := installerFromReadModel(*profile.Installer)
		response.Installer = &installer
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListInstallers handles GET /api/v1/installers - lists the installer directory.
func (s *Server) ListInstallers(ctx echo.Context) error {
	installers, err := s.getAllInstallersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllInstallersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]installerResponse, 0, len(installers))
	for _, profile := range installers {
		response = append(response, installerFromReadModel(profile))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateInstaller handles POST /api/v1/installers - adds an installer profile.
func (s *Server) CreateInstaller(ctx echo.Context) error {
	var req createInstallerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	var userID *kernel.UUID
	if req.UserID != nil {
		parsed, err := kernel.UUIDFromString(*req.UserID)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		userID = &parsed
	}

	cmd, err := commands.NewCreateInstallerCommand(req.Name, req.ContactInfo, userID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	profile, err := s.createInstallerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, installerFromDomain(profile))
}

// ListOrders handles GET /api/v1/orders - lists every order with comments.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, model := range orders {
		response = append(response, orderFromReadModel(model))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListMyOrders handles GET /api/v1/orders/my - lists orders assigned to the
// caller's installer profile.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "not authenticated")
	}

	query, err := queries.NewGetMyOrdersQuery(identity.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getMyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, model := range orders {
		response = append(response, orderFromReadModel(model))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens a new work order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "not authenticated")
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.Address, req.AccountNumber, req.ContactDetails, identity.UserID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// UpdateOrder handles PUT /api/v1/orders/:order_id - partially updates order
// details. Omitted fields stay unchanged.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "not authenticated")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, req.Address, req.AccountNumber, req.ContactDetails, identity.UserID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// AssignInstaller handles POST /api/v1/orders/:order_id/assign_installer -
// puts an installer on the order.
func (s *Server) AssignInstaller(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "not authenticated")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req assignInstallerRequest
	if err = ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	installerID, err := kernel.UUIDFromString(req.InstallerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewAssignInstallerCommand(orderID, installerID, identity.UserID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	updated, err := s.assignInstallerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// ChangeStatus handles POST /api/v1/orders/:order_id/change_status - moves
// the order to a new status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "not authenticated")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, identity.UserID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// AddComment handles POST /api/v1/orders/:order_id/comments - attaches a
// note to the order.
func (s *Server) AddComment(ctx echo.Context) error {
	identity, ok := identityFrom(ctx)
	if !ok {
		return respondErrorCode(ctx, http.StatusUnauthorized, "not authenticated")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req addCommentRequest
	if err = ctx.Bind(&req); err != nil {
		return respondErrorCode(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewAddCommentCommand(orderID, req.Text, identity.UserID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	comment, err := s.addCommentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, commentFromDomain(comment))
}

// ListComments handles GET /api/v1/orders/:order_id/comments - lists the
// order's comments, oldest first.
func (s *Server) ListComments(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrderCommentsQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	comments, err := s.getOrderCommentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, commentFromReadModel(comment))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListHistory handles GET /api/v1/orders/:order_id/history - lists the
// order's audit trail, oldest first.
func (s *Server) ListHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]historyEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, historyFromReadModel(entry))
	}

	return ctx.JSON(http.StatusOK, response)
}
