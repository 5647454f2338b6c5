package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/auth"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/config"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/database"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/handlers"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/middleware"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/payment"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/repository"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/routes"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.App.Env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()
	sugar.Infof("starting prime-property-plus-server in %s environment on port %d", cfg.App.Env, cfg.App.Port)

	db, mongoClient, err := database.Connect(cfg.Mongo.URI, cfg.Mongo.Database, cfg.ConnectTimeout, sugar)
	if err != nil {
		sugar.Fatal(err)
	}

	userRepo := repository.NewMongoUserRepo(db, "users")
	propertyRepo := repository.NewMongoPropertyRepo(db, "properties")
	reviewRepo := repository.NewMongoReviewRepo(db, "reviews")
	wishListRepo := repository.NewMongoWishListRepo(db, "wishList")
	purchaseRepo := repository.NewMongoPurchaseRepo(db, "boughtProperties")

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL)
	stripeClient := payment.NewStripeClient(cfg.Stripe.SecretKey)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.App.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.App.WriteTimeout) * time.Second,
	})
	app.Use(cors.New())
	app.Use(middleware.Recovery(logger))
	app.Use(middleware.RequestLogger(logger))

	routes.Register(app, routes.Deps{
		Tokens:   tokens,
		Users:    userRepo,
		Auth:     handlers.NewAuthHandler(tokens, logger),
		User:     handlers.NewUserHandler(userRepo, logger),
		Property: handlers.NewPropertyHandler(propertyRepo, logger),
		Review:   handlers.NewReviewHandler(reviewRepo, logger),
		WishList: handlers.NewWishListHandler(wishListRepo, logger),
		Purchase: handlers.NewPurchaseHandler(purchaseRepo, logger),
		Payment:  handlers.NewPaymentHandler(stripeClient, logger),
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		sugar.Infof("server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			sugar.Fatalf("server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	sugar.Info("shutdown requested")

	shutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutCtx); err != nil {
		sugar.Errorf("server shutdown error: %v", err)
	}
	if err := mongoClient.Disconnect(shutCtx); err != nil {
		sugar.Errorf("mongodb disconnect error: %v", err)
	}
	sugar.Info("shutdown complete")
}
