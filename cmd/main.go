package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/example/parfumgate/config"
	"github.com/example/parfumgate/internal/admin"
	"github.com/example/parfumgate/internal/cart"
	"github.com/example/parfumgate/internal/catalog"
	"github.com/example/parfumgate/internal/checkout"
	"github.com/example/parfumgate/internal/favorites"
	"github.com/example/parfumgate/internal/order"
	"github.com/example/parfumgate/internal/recommend"
	"github.com/example/parfumgate/internal/support"
	"github.com/example/parfumgate/internal/upstream"
	"github.com/example/parfumgate/pkg/httpserver"
	"github.com/example/parfumgate/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger("debug", &logger.MainLogHook{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	env, err := config.GetEnvironment()
	if err != nil {
		log.Fatalf(err.Error())
	}

	catalogLog := logger.NewLogger(env.LogLvl, &catalog.CatalogLogHook{})
	cartLog := logger.NewLogger(env.LogLvl, &cart.CartLogHook{})
	orderLog := logger.NewLogger(env.LogLvl, &order.OrderLogHook{})
	checkoutLog := logger.NewLogger(env.LogLvl, &checkout.CheckoutLogHook{})
	recommendLog := logger.NewLogger(env.LogLvl, &recommend.RecommendLogHook{})
	favoritesLog := logger.NewLogger(env.LogLvl, &favorites.FavoritesLogHook{})
	supportLog := logger.NewLogger(env.LogLvl, &support.SupportLogHook{})
	adminLog := logger.NewLogger(env.LogLvl, &admin.AdminLogHook{})

	catalogAdapter := catalog.NewCatalogAdapter(catalogLog, upstream.NewClient(catalogLog, env.ApiBaseURL))
	cartAdapter := cart.NewCartAdapter(cartLog, upstream.NewClient(cartLog, env.ApiBaseURL))
	orderAdapter := order.NewOrderAdapter(orderLog, upstream.NewClient(orderLog, env.ApiBaseURL))
	avisAdapter := order.NewAvisAdapter(orderLog, upstream.NewClient(orderLog, env.ApiBaseURL))
	recommendAdapter := recommend.NewRecommendAdapter(recommendLog, upstream.NewClient(recommendLog, env.ApiBaseURL))
	favoritesAdapter := favorites.NewFavoritesAdapter(favoritesLog, upstream.NewClient(favoritesLog, env.ApiBaseURL))
	supportAdapter := support.NewSupportAdapter(supportLog, upstream.NewClient(supportLog, env.ApiBaseURL))
	adminAdapter := admin.NewAdminAdapter(adminLog, upstream.NewClient(adminLog, env.ApiBaseURL))

	catalogService := catalog.NewService(catalogAdapter, env.ImageBaseURL, catalogLog)
	cartService := cart.NewService(cartAdapter, cartLog)
	orderService := order.NewService(orderAdapter, avisAdapter, orderLog)
	recommendService := recommend.NewService(recommendAdapter, catalogService, recommendLog)
	favoritesService := favorites.NewService(favoritesAdapter, env.ImageBaseURL, favoritesLog)
	supportService := support.NewService(supportAdapter, supportLog)
	adminService := admin.NewService(adminAdapter, adminLog)

	gateway := checkout.NewSimulatedGateway(
		cfg.Payment.SuccessRate,
		time.Duration(cfg.Payment.DelayMs)*time.Millisecond,
		checkoutLog,
	)
	checkoutService := checkout.NewService(checkout.NewSessionStore(), cartAdapter, orderAdapter, gateway, checkoutLog)

	router := gin.New()

	corsConfig := cors.DefaultConfig()
	if env.AdminOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{env.AdminOrigin}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	catalog.NewHandler(catalogService, catalogLog).Register(router)
	cart.NewHandler(cartService, cartLog).Register(router)
	order.NewHandler(orderService, orderLog).Register(router)
	checkout.NewHandler(checkoutService, checkoutLog).Register(router)
	recommend.NewHandler(recommendService, recommendLog).Register(router)
	favorites.NewHandler(favoritesService, favoritesLog).Register(router)
	support.NewHandler(supportService, supportLog).Register(router)
	admin.NewHandler(adminService, adminLog).Register(router)

	server := new(httpserver.Server)

	go func() {
		if err := server.Run(cfg.Server.Port, router); err != nil {
			log.Fatalf("Failed running server %v", err)
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	oscall := <-interrupt
	log.Infof("Shutdown server, %s", oscall)

	if err := server.Shutdown(context.Background()); err != nil {
		log.Errorf("Error occured on server shutting down: %v", err)
	}
}
