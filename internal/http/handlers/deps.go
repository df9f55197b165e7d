package handlers

import (
	"net/http"
	"time"

	"skuchat/internal/config"
	"skuchat/internal/repos"
	"skuchat/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	ChatHandler     *ChatHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	processor := &services.SimulatedProcessor{Delay: cfg.ChargeDelay, Refusals: services.ApproveAll{}}
	checkoutSvc := services.NewCheckoutService(cartSvc, orderRepo, processor, cfg.ChargeTimeout)
	chatSvc := services.NewChatService(cfg.ChatURL, &http.Client{Timeout: 10 * time.Second})

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, Cart: cartSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		CheckoutHandler: &CheckoutHandler{Cart: cartSvc, Checkout: checkoutSvc, Orders: orderRepo},
		ChatHandler:     &ChatHandler{Chat: chatSvc},
	}
}
