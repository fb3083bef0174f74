package http

import (
	"log/slog"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const (
	// SessionHeader carries the session id of every order request.
	SessionHeader = "X-Session-ID"

	sessionQueryParam = "sessionId"
)

// Server handles HTTP requests by coordinating the application use cases.
type Server struct {
	// Command handlers
	addMenuHandler         commands.AddMenuCommandHandler
	adjustQuantityHandler  commands.AdjustQuantityCommandHandler
	changeComboTypeHandler commands.ChangeComboTypeCommandHandler
	cancelLineHandler      commands.CancelLineCommandHandler

	// Query handlers
	getMenusHandler queries.GetMenusQueryHandler
	getOrderHandler queries.GetOrderQueryHandler

	contexts ports.OrderContextProvider
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addMenuHandler commands.AddMenuCommandHandler,
	adjustQuantityHandler commands.AdjustQuantityCommandHandler,
	changeComboTypeHandler commands.ChangeComboTypeCommandHandler,
	cancelLineHandler commands.CancelLineCommandHandler,
	getMenusHandler queries.GetMenusQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	contexts ports.OrderContextProvider,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		addMenuHandler:         addMenuHandler,
		adjustQuantityHandler:  adjustQuantityHandler,
		changeComboTypeHandler: changeComboTypeHandler,
		cancelLineHandler:      cancelLineHandler,
		getMenusHandler:        getMenusHandler,
		getOrderHandler:        getOrderHandler,
		contexts:               contexts,
		logger:                 logger.With("component", "http"),
	}
}

// GetMenus handles GET /api/v1/menus - lists the catalog.
func (s *Server) GetMenus(c echo.Context) error {
	menus, err := s.getMenusHandler.Handle(c.Request().Context(), queries.NewGetMenusQuery())
	if err != nil {
		return err
	}

	response := make([]Menu, len(menus))
	for i, m := range menus {
		response[i] = newMenu(m)
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/order - returns the lines and totals of the session.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(sessionID(c))
	if err != nil {
		return err
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOrder(resp))
}

// AddMenu handles POST /api/v1/order/lines - adds a menu to the order.
func (s *Server) AddMenu(c echo.Context) error {
	var body NewLine
	if err := c.Bind(&body); err != nil {
		return err
	}

	menuID, err := kernel.UUIDFromGoogle(body.MenuID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddMenuCommand(sessionID(c), menuID, order.ComboTypeOf(body.Combo))
	if err != nil {
		return err
	}

	line, err := s.addMenuHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOrderLine(queries.NewOrderLineResponse(line)))
}

// AdjustQuantity handles POST /api/v1/order/lines/{lineId}/quantity.
func (s *Server) AdjustQuantity(c echo.Context) error {
	lineID, err := bindLineID(c)
	if err != nil {
		return err
	}

	var body QuantityAdjustment
	if err = c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewAdjustQuantityCommand(sessionID(c), lineID, body.Delta)
	if err != nil {
		return err
	}

	line, applied, err := s.adjustQuantityHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AdjustedLine{
		Line:    newOrderLine(queries.NewOrderLineResponse(line)),
		Applied: applied,
	})
}

// ChangeComboType handles PUT /api/v1/order/lines/{lineId}/combo.
func (s *Server) ChangeComboType(c echo.Context) error {
	lineID, err := bindLineID(c)
	if err != nil {
		return err
	}

	var body ComboChoice
	if err = c.Bind(&body); err != nil {
		return err
	}

	comboType, err := order.ParseComboType(body.Type)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeComboTypeCommand(sessionID(c), lineID, comboType)
	if err != nil {
		return err
	}

	line, err := s.changeComboTypeHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOrderLine(queries.NewOrderLineResponse(line)))
}

// CancelLine handles DELETE /api/v1/order/lines/{lineId}.
func (s *Server) CancelLine(c echo.Context) error {
	lineID, err := bindLineID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelLineCommand(sessionID(c), &lineID)
	if err != nil {
		return err
	}

	if err = s.cancelLineHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func sessionID(c echo.Context) string {
	return c.Request().Header.Get(SessionHeader)
}

func bindLineID(c echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "lineId", c.Param("lineId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("lineId", err)
	}
	return kernel.UUIDFromGoogle(id)
}
