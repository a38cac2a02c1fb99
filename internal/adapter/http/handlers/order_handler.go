package handlers

import (
	request "concert_tickets/internal/adapter/http/dto/request"
	response "concert_tickets/internal/adapter/http/dto/response"
	"concert_tickets/internal/domain/entities"
	"concert_tickets/internal/usecase"
	"concert_tickets/pkg"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART", "Invalid cart", http.StatusBadRequest)
)

// OrderHandler handles the storefront checkout endpoints.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create a PayPal order for the cart
// @Description  Prices the cart server-side and forwards the order to PayPal. The provider body and status are relayed unchanged.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateOrderRequest  true  "Cart"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] invalid payload request_id=%s err=%v", requestID(c), err)
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := payload.ResolveCart()
	if err != nil {
		log.Printf("[order][handler] invalid cart request_id=%s err=%v", requestID(c), err)
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create start request_id=%s premium=%d standard=%d student=%d tickets=%d total=%q",
		requestID(c), cart.PremiumQuantity, cart.StandardQuantity, cart.StudentQuantity, cart.TicketCount(), cart.TotalPrice)

	resp, err := h.usecase.CreateOrder(c.Request.Context(), cart)
	if err != nil {
		log.Printf("[order][handler] create failed request_id=%s err=%v", requestID(c), err)
		appErr := mapOrderError(err, "CREATE_ORDER_FAILED", "Failed to create order.")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	summary := response.SummarizeOrder(resp.Body)
	log.Printf("[order][handler] create done request_id=%s order_id=%s status=%s provider_status=%d", requestID(c), summary.ID, summary.Status, resp.StatusCode)

	writeProviderResponse(c, resp)
}

// CaptureOrder godoc
// @Summary      Capture payment for an order
// @Description  Finalizes a previously approved PayPal order. The provider body and status are relayed unchanged.
// @Tags         orders
// @Produce      json
// @Param        orderID  path      string  true  "PayPal order id"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /api/orders/{orderID}/capture [post]
func (h *OrderHandler) CaptureOrder(c *gin.Context) {
	orderID := c.Param("orderID")
	log.Printf("[order][handler] capture start request_id=%s order_id=%s", requestID(c), orderID)

	resp, err := h.usecase.CaptureOrder(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[order][handler] capture failed request_id=%s order_id=%s err=%v", requestID(c), orderID, err)
		appErr := mapOrderError(err, "CAPTURE_ORDER_FAILED", "Failed to capture order.")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	summary := response.SummarizeOrder(resp.Body)
	log.Printf("[order][handler] capture done request_id=%s order_id=%s status=%s provider_status=%d", requestID(c), orderID, summary.Status, resp.StatusCode)

	writeProviderResponse(c, resp)
}

func writeProviderResponse(c *gin.Context, resp entities.ProviderResponse) {
	c.Data(resp.StatusCode, "application/json; charset=utf-8", resp.Body)
}

// mapOrderError turns caller mistakes into 400s; anything else is reported
// with the operation's generic message.
func mapOrderError(err error, code, message string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCart):
		return errInvalidCartPayload
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	default:
		return pkg.NewDomainError(code, message, err, http.StatusInternalServerError)
	}
}
