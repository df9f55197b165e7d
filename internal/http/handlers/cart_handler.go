package handlers

import (
	applog "skuchat/internal/log"
	"skuchat/internal/services"
	"skuchat/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "cart.view", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Could not load your cart",
		})
	}
	return render(c, "cart", fiber.Map{"Cart": cv})
}

// Add puts one more unit of a product in the cart (the add-to-cart
// button always means +1, however many times it is pressed).
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	if err := h.Cart.Add(sid, productID); err != nil {
		applog.Error(c, "cart.add", err, map[string]any{"product_id": productID})
		return c.Status(fiber.StatusBadRequest).SendString("Could not add this item")
	}
	return c.Redirect("/cart")
}

// Update sets an absolute quantity. The +/- stepper posts the current
// quantity plus or minus one; zero or less removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	if err := h.Cart.SetQuantity(sid, productID, qty); err != nil {
		applog.Error(c, "cart.update", err, map[string]any{"product_id": productID})
		return c.Status(fiber.StatusInternalServerError).SendString("Could not update your cart")
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	if err := h.Cart.Remove(sid, productID); err != nil {
		applog.Error(c, "cart.remove", err, map[string]any{"product_id": productID})
		return c.Status(fiber.StatusInternalServerError).SendString("Could not update your cart")
	}
	return c.Redirect("/cart")
}
