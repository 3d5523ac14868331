package http

import (
	"errors"
	"net/http"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Tenant scope and acting user arrive as headers set by the gateway.
const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderUserID   = "X-User-ID"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	approveHandler        commands.ApproveShipmentCommandHandler
	assignCourierHandler  commands.AssignCourierCommandHandler
	updateStatusHandler   commands.UpdateShipmentStatusCommandHandler
	cancelHandler         commands.CancelShipmentCommandHandler
	createSettlement      commands.CreateSettlementCommandHandler
	confirmPayoutHandler  commands.ConfirmPayoutCommandHandler

	// Query handlers
	merchantBalanceHandler queries.GetMerchantBalanceQueryHandler
	calculatePriceHandler  queries.CalculatePriceQueryHandler
	shipmentHistoryHandler queries.GetShipmentHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	approveHandler commands.ApproveShipmentCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler,
	cancelHandler commands.CancelShipmentCommandHandler,
	createSettlement commands.CreateSettlementCommandHandler,
	confirmPayoutHandler commands.ConfirmPayoutCommandHandler,
	merchantBalanceHandler queries.GetMerchantBalanceQueryHandler,
	calculatePriceHandler queries.CalculatePriceQueryHandler,
	shipmentHistoryHandler queries.GetShipmentHistoryQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:  createShipmentHandler,
		approveHandler:         approveHandler,
		assignCourierHandler:   assignCourierHandler,
		updateStatusHandler:    updateStatusHandler,
		cancelHandler:          cancelHandler,
		createSettlement:       createSettlement,
		confirmPayoutHandler:   confirmPayoutHandler,
		merchantBalanceHandler: merchantBalanceHandler,
		calculatePriceHandler:  calculatePriceHandler,
		shipmentHistoryHandler: shipmentHistoryHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/:id/approve", s.ApproveShipment)
	api.POST("/shipments/:id/assign", s.AssignCourier)
	api.POST("/shipments/:id/status", s.UpdateShipmentStatus)
	api.POST("/shipments/:id/cancel", s.CancelShipment)
	api.GET("/shipments/:id/history", s.GetShipmentHistory)

	api.POST("/settlements", s.CreateSettlement)
	api.POST("/settlements/:id/confirm", s.ConfirmPayout)
	api.GET("/merchants/:id/balance", s.GetMerchantBalance)

	api.GET("/pricing/quote", s.CalculatePrice)
}

// Error is the JSON body returned for any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	BranchID       string  `json:"branch_id"`
	MerchantID     string  `json:"merchant_id"`
	RecipientName  string  `json:"recipient_name"`
	RecipientPhone string  `json:"recipient_phone"`
	RecipientAddr  string  `json:"recipient_address"`
	RecipientZone  string  `json:"recipient_zone"`
	WeightKg       float64 `json:"weight_kg"`
	CODAmountCents int64   `json:"cod_amount_cents"`
	Notes          string  `json:"notes"`
}

// CreateShipmentResponse returns the identifier of the created shipment.
type CreateShipmentResponse struct {
	ID string `json:"id"`
}

// AssignCourierRequest is the body of POST /api/v1/shipments/:id/assign.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// UpdateStatusRequest is the body of POST /api/v1/shipments/:id/status.
// CODCollectedCents must be present when the target status is DELIVERED
// and the shipment carries a COD amount.
type UpdateStatusRequest struct {
	Status            string `json:"status"`
	Note              string `json:"note"`
	CODCollectedCents *int64 `json:"cod_collected_cents"`
}

// CancelShipmentRequest is the body of POST /api/v1/shipments/:id/cancel.
type CancelShipmentRequest struct {
	Note string `json:"note"`
}

// CreateSettlementRequest is the body of POST /api/v1/settlements.
type CreateSettlementRequest struct {
	MerchantID string `json:"merchant_id"`
	Note       string `json:"note"`
}

// CreateSettlementResponse returns the identifier of the created settlement.
type CreateSettlementResponse struct {
	ID string `json:"id"`
}

// ConfirmPayoutRequest is the body of POST /api/v1/settlements/:id/confirm.
type ConfirmPayoutRequest struct {
	Note string `json:"note"`
}

// MerchantBalanceResponse is the body of GET /api/v1/merchants/:id/balance.
type MerchantBalanceResponse struct {
	UnsettledCents       int64 `json:"unsettled_cents"`
	PendingCents         int64 `json:"pending_cents"`
	SettledCents         int64 `json:"settled_cents"`
	PendingRecordCount   int64 `json:"pending_record_count"`
	HasPendingSettlement bool  `json:"has_pending_settlement"`
}

// PriceQuoteResponse is the body of GET /api/v1/pricing/quote.
type PriceQuoteResponse struct {
	Found      bool   `json:"found"`
	PriceCents int64  `json:"price_cents,omitempty"`
	RuleID     string `json:"rule_id,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// HistoryEntry is one audit-trail row in GET /api/v1/shipments/:id/history.
type HistoryEntry struct {
	Status     string `json:"status"`
	ActorID    string `json:"actor_id"`
	Note       string `json:"note,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	tenantID, actorID, err := scopeFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req CreateShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("body"))
	}

	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	weight, err := kernel.NewWeight(req.WeightKg)
	if err != nil {
		return errorJSON(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, tenantID, branchID, merchantID,
		commands.RecipientInput{
			Name:    req.RecipientName,
			Phone:   req.RecipientPhone,
			Address: req.RecipientAddr,
			Zone:    req.RecipientZone,
		},
		weight,
		kernel.MoneyFromCents(req.CODAmountCents),
		req.Notes,
		actorID,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateShipmentResponse{ID: shipmentID.String()})
}

// ApproveShipment handles POST /api/v1/shipments/:id/approve.
func (s *Server) ApproveShipment(ctx echo.Context) error {
	tenantID, actorID, err := scopeFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewApproveShipmentCommand(tenantID, shipmentID, actorID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.approveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/shipments/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	tenantID, actorID, err := scopeFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("body"))
	}
	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(tenantID, shipmentID, courierID, actorID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShipmentStatus handles POST /api/v1/shipments/:id/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	tenantID, actorID, err := scopeFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("body"))
	}

	target, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var codCollected *kernel.Money
	if req.CODCollectedCents != nil {
		collected := kernel.MoneyFromCents(*req.CODCollectedCents)
		codCollected = &collected
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(
		tenantID, shipmentID, target, actorID, req.Note, codCollected)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(ctx echo.Context) error {
	tenantID, actorID, err := scopeFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req CancelShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewCancelShipmentCommand(tenantID, shipmentID, actorID, req.Note)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentHistory handles GET /api/v1/shipments/:id/history.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	tenantID, _, err := scopeFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetShipmentHistoryQuery(tenantID, shipmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	entries, err := s.shipmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]HistoryEntry, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntry{
			Status:     entry.Status,
			ActorID:    entry.ActorID.String(),
			Note:       entry.Note,
			OccurredAt: entry.OccurredAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateSettlement handles POST /api/v1/settlements.
func (s *Server) CreateSettlement(ctx echo.Context) error {
	tenantID, _, err := scopeFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req CreateSettlementRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("body"))
	}
	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	settlementID := kernel.NewUUID()
	cmd, err := commands.NewCreateSettlementCommand(settlementID, tenantID, merchantID, req.Note)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createSettlement.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateSettlementResponse{ID: settlementID.String()})
}

// ConfirmPayout handles POST /api/v1/settlements/:id/confirm.
func (s *Server) ConfirmPayout(ctx echo.Context) error {
	tenantID, actorID, err := scopeFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	settlementID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req ConfirmPayoutRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewConfirmPayoutCommand(tenantID, settlementID, actorID, req.Note)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.confirmPayoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMerchantBalance handles GET /api/v1/merchants/:id/balance.
func (s *Server) GetMerchantBalance(ctx echo.Context) error {
	tenantID, _, err := scopeFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	merchantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetMerchantBalanceQuery(tenantID, merchantID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	balance, err := s.merchantBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MerchantBalanceResponse{
		UnsettledCents:       balance.UnsettledTotal.Cents(),
		PendingCents:         balance.PendingTotal.Cents(),
		SettledCents:         balance.SettledTotal.Cents(),
		PendingRecordCount:   balance.PendingRecordCount,
		HasPendingSettlement: balance.HasPendingSettlement,
	})
}

// CalculatePrice handles GET /api/v1/pricing/quote.
// Query parameters: merchant_id, zone, weight_kg.
func (s *Server) CalculatePrice(ctx echo.Context) error {
	tenantID, _, err := scopeFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}
	merchantID, err := kernel.UUIDFromString(ctx.QueryParam("merchant_id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var weightKg float64
	if err = echo.QueryParamsBinder(ctx).Float64("weight_kg", &weightKg).BindError(); err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidError("weight_kg"))
	}
	weight, err := kernel.NewWeight(weightKg)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewCalculatePriceQuery(tenantID, merchantID, ctx.QueryParam("zone"), weight)
	if err != nil {
		return errorJSON(ctx, err)
	}

	quote, err := s.calculatePriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := PriceQuoteResponse{Found: quote.Found}
	if quote.Found {
		response.PriceCents = quote.Price.Cents()
		response.RuleID = quote.RuleID.String()
	} else {
		response.Reason = quote.Reason
	}

	return ctx.JSON(http.StatusOK, response)
}

// scopeFromHeaders extracts the tenant and acting user from request headers.
func scopeFromHeaders(ctx echo.Context) (tenantID, actorID kernel.UUID, err error) {
	rawTenant := ctx.Request().Header.Get(HeaderTenantID)
	if rawTenant == "" {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsRequiredError(HeaderTenantID)
	}
	tenantID, err = kernel.UUIDFromString(rawTenant)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	rawUser := ctx.Request().Header.Get(HeaderUserID)
	if rawUser == "" {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsRequiredError(HeaderUserID)
	}
	actorID, err = kernel.UUIDFromString(rawUser)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return tenantID, actorID, nil
}

// errorJSON maps domain and application errors onto HTTP status codes.
func errorJSON(ctx echo.Context, err error) error {
	code := statusCode(err)
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrBusinessRuleViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
