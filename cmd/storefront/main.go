package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fernandoemejia/ecommerce-frontend/internal/api"
	"github.com/fernandoemejia/ecommerce-frontend/internal/cart"
	"github.com/fernandoemejia/ecommerce-frontend/internal/catalog"
	"github.com/fernandoemejia/ecommerce-frontend/internal/checkout"
	"github.com/fernandoemejia/ecommerce-frontend/internal/config"
	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
	"github.com/fernandoemejia/ecommerce-frontend/internal/notify"
	"github.com/fernandoemejia/ecommerce-frontend/internal/session"
	"github.com/fernandoemejia/ecommerce-frontend/internal/store"
)

// Demo walkthrough of the storefront client: sign in, browse, fill the
// cart, check out, show the outcome.
func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	var sessions *session.Holder
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	}, logger)

	var mirror store.Store
	if cfg.RedisAddr != "" {
		mirror = store.NewRedis(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
		}), "storefront")
	} else {
		mirror = store.NewFile(cfg.StateFile)
	}

	sessions = session.NewHolder(api.NewAuthClient(client), mirror, logger)
	carts := cart.NewHolder(api.NewCartClient(client), logger)
	products := catalog.NewService(api.NewCatalogClient(client))
	notifications := notify.NewQueue()
	sequencer := checkout.NewSequencer(
		api.NewOrdersClient(client), api.NewPaymentsClient(client), notifications, logger)

	sessions.Hydrate(ctx)
	if !sessions.Authenticated() {
		email := getEnv("DEMO_EMAIL", "demo@example.com")
		password := getEnv("DEMO_PASSWORD", "password123")
		user, err := sessions.Login(ctx, domain.LoginRequest{Email: email, Password: password})
		if err != nil {
			logger.Fatal("login failed", zap.Error(err))
		}
		fmt.Printf("signed in as %s (%s)\n", user.Username, user.Email)
	} else {
		fmt.Printf("restored session for %s\n", sessions.CurrentUser().Email)
	}

	page, err := products.Products(ctx, 0, 0)
	if err != nil {
		logger.Fatal("list products failed", zap.Error(err))
	}
	fmt.Printf("catalog: %d products across %d pages\n", page.TotalElements, page.TotalPages)
	for _, p := range page.Content {
		fmt.Printf("  #%d %-24s $%.2f stock=%d\n", p.ID, p.Name, p.EffectivePrice, p.StockQuantity)
	}

	var picked *domain.Product
	for i := range page.Content {
		if page.Content[i].InStock {
			picked = &page.Content[i]
			break
		}
	}
	if picked == nil {
		fmt.Println("nothing in stock, stopping here")
		return
	}

	if _, err := carts.AddItem(ctx, picked.ID, 1); err != nil {
		logger.Fatal("add to cart failed", zap.Error(err))
	}
	fmt.Printf("cart: %d item(s), total $%.2f\n", carts.ItemCount(), carts.Total())

	address := sessions.CurrentUser().Address
	if address == "" {
		address = "1 Demo Street"
	}
	result, err := sequencer.PlaceOrder(ctx, checkout.Request{
		ShippingAddress: address,
		PaymentMethod:   domain.PaymentMethodCreditCard,
	})
	if err != nil {
		logger.Fatal("checkout rejected", zap.Error(err))
	}

	if result.OrderPlaced() {
		carts.Reset()
		fmt.Printf("order %s -> %s\n", result.Order.OrderNumber, result.Outcome)
	}
	for _, n := range notifications.Notifications() {
		fmt.Printf("[%s] %s\n", n.Kind, n.Message)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
