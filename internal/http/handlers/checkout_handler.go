package handlers

import (
	"errors"

	"skuchat/internal/domain"
	applog "skuchat/internal/log"
	"skuchat/internal/repos"
	"skuchat/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Orders   *repos.OrderRepo
}

func checkoutSummary(cv services.CartView) fiber.Map {
	tax := cv.SubtotalCents.Percent(services.TaxBasisPoints)
	return fiber.Map{
		"Cart":     cv,
		"Subtotal": cv.SubtotalCents.String(),
		"Tax":      tax.String(),
		"Total":    (cv.SubtotalCents + tax).String(),
	}
}

func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "checkout.load", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Could not load your cart",
		})
	}
	if cv.Empty() {
		return c.Redirect("/cart")
	}
	return render(c, "checkout", checkoutSummary(cv))
}

// Pay submits the payment form to the checkout pipeline. Validation
// errors re-render the form with field messages; a processor failure
// re-renders with a retry prompt and the CVV blanked for re-entry.
func (h *CheckoutHandler) Pay(c *fiber.Ctx) error {
	sid := ensureSID(c)
	details := domain.PaymentDetails{
		CardName:   c.FormValue("cardName"),
		CardNumber: c.FormValue("cardNumber"),
		Expiry:     c.FormValue("expiryDate"),
		CVV:        c.FormValue("cvv"),
	}
	cardName := details.CardName // kept for form re-fill; card number and CVV are not echoed back

	order, err := h.Checkout.Submit(c.UserContext(), sid, details)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			return c.Redirect("/cart")
		case errors.Is(err, services.ErrChargeInFlight):
			applog.Security(c, "checkout.double_submit", nil)
			return c.Status(fiber.StatusConflict).SendString("A payment is already being processed for your cart.")
		case errors.As(err, &verr):
			applog.Security(c, "validation.fail", map[string]any{"fields": verr.Fields})
			cv, lerr := h.Cart.View(sid)
			if lerr != nil {
				return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
					"Message": "Could not load your cart",
				})
			}
			data := checkoutSummary(cv)
			data["Errors"] = verr.Fields
			data["CardName"] = cardName
			return c.Status(fiber.StatusBadRequest).Render("checkout", data)
		default:
			applog.Error(c, "checkout.charge.fail", err, nil)
			cv, lerr := h.Cart.View(sid)
			if lerr != nil {
				return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
					"Message": "Could not load your cart",
				})
			}
			data := checkoutSummary(cv)
			data["Err"] = "Payment could not be processed. Please try again."
			data["CardName"] = cardName
			return c.Status(fiber.StatusBadGateway).Render("checkout", data)
		}
	}

	applog.Audit(c, "checkout.succeeded", map[string]any{
		"order_id": order.ID,
		"total":    order.TotalCents,
	})
	return c.Redirect("/order/" + order.ID)
}

// OrderView shows the write-once receipt. Only the session that placed
// the order can see it.
func (h *CheckoutHandler) OrderView(c *fiber.Ctx) error {
	sid := ensureSID(c)
	oid := c.Params("id")
	o, err := h.Orders.Get(oid)
	if err != nil || o.SessionID != sid {
		if err == nil {
			applog.Security(c, "access.denied.order", map[string]any{"order_id": oid})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	return render(c, "order", fiber.Map{"Order": o})
}
