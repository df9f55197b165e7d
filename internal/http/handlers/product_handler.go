package handlers

import (
	"strings"

	applog "skuchat/internal/log"
	"skuchat/internal/services"
	"skuchat/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Cart    *services.CartService
}

// Home renders the storefront: the full catalog, or the matches for an
// optional ?q= search.
func (h *ProductHandler) Home(c *fiber.Ctx) error {
	sid := ensureSID(c)

	rawQ := c.Query("q")
	q := ""
	if strings.TrimSpace(rawQ) != "" {
		var ok bool
		q, ok = validate.Q(rawQ)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q"})
			return c.Status(fiber.StatusBadRequest).Render("index", fiber.Map{
				"Q": "", "Products": []any{}, "Err": "Enter a valid keyword (letters/numbers only)",
			})
		}
	}

	products, err := h.Catalog.Lookup(q)
	if err != nil {
		applog.Error(c, "catalog.lookup", err, map[string]any{"q": q})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Could not load products. Please retry.",
		})
	}

	cv, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "cart.view", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Something went wrong. Please try again.",
		})
	}

	return render(c, "index", fiber.Map{
		"Q":        q,
		"Products": products,
		"Count":    len(products),
		"Cart":     cv,
	})
}
