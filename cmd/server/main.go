package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	authhandler "lawpoint/internal/auth/handler"
	"lawpoint/internal/auth/password"
	authservice "lawpoint/internal/auth/service"
	"lawpoint/internal/auth/store"
	"lawpoint/internal/auth/store/user"
	"lawpoint/internal/directory"
	dirhandler "lawpoint/internal/directory/handler"
	"lawpoint/internal/health"
	httpapi "lawpoint/internal/http"
	jwttoken "lawpoint/internal/jwt_token"
	"lawpoint/internal/platform/config"
	"lawpoint/internal/platform/httpserver"
	"lawpoint/internal/platform/logger"
	"lawpoint/internal/platform/metrics"
	"lawpoint/internal/platform/mongodb"
	"lawpoint/internal/storage"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in internal services packages.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	// A failed connection is not fatal: the service degrades to the
	// in-memory fallback and keeps answering, ephemerally.
	var client *mongo.Client
	client, err = mongodb.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Warn("mongodb unreachable, starting with in-memory storage (data will be lost on restart)",
			"error", err,
		)
		client = nil
	} else {
		log.Info("connected to mongodb")
	}

	conn := storage.NewConnectivity(client != nil, log, func(connected bool) {
		m.SetFallbackActive(!connected)
	})

	var users store.UserStore = user.NewMemory()
	var lawyers directory.LawyerStore = directory.NewMemoryStore()
	if client != nil {
		db := client.Database("lawpoint")

		mongoUsers := user.NewMongo(db)
		indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mongoUsers.EnsureIndexes(indexCtx); err != nil {
			log.Warn("could not ensure user indexes", "error", err)
		}
		cancel()

		users = store.NewDual(mongoUsers, user.NewMemory(), conn)
		lawyers = directory.NewDualStore(directory.NewMongoStore(db), directory.NewMemoryStore(), conn)
	}

	tokens := jwttoken.NewService(cfg.JWTSigningKey, cfg.TokenTTL)
	verifier := jwttoken.NewServiceAdapter(tokens)
	hasher := password.NewHasher(cfg.BcryptCost)

	auth := authservice.New(users, hasher, tokens, log, m)
	roster := directory.NewService(lawyers, log, m)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:    log,
		Metrics:   m,
		Auth:      authhandler.New(auth, log, verifier),
		Directory: dirhandler.New(roster, log, verifier),
		Health:    health.New(conn),
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting lawpoint", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			log.Error("mongodb disconnect failed", "error", err)
		}
	}
}
