package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"tukrent/internal/cache"
	intconfig "tukrent/internal/config"
	intdb "tukrent/internal/db"
	router "tukrent/internal/http"
	"tukrent/internal/http/handlers"
	"tukrent/internal/notify"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	dbc := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(dbc); err != nil {
		log.Fatalf("schema migration failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: env.RedisAddr})
	defer rdb.Close()
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// Cache is an optimization; the API stays up without Redis.
		log.Printf("warning: redis unavailable at %s: %v", env.RedisAddr, err)
		handlers.SetCache(nil)
	} else {
		handlers.SetCache(cache.New(rdb, 10*time.Minute))
	}

	if env.NotifyBaseURL != "" {
		handlers.SetNotifier(notify.NewClient(env.NotifyBaseURL))
	} else {
		log.Printf("warning: NOTIFY_BASE_URL not set, notifications disabled")
	}

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
