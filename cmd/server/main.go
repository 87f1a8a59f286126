package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"postshare/pkg/config"
	"postshare/pkg/logger"
	"postshare/pkg/post"
	"postshare/pkg/ratelimit"
	"postshare/pkg/server"
	"postshare/pkg/sessions"
)

func main() {
	seedCount := flag.Int("seed", 0, "insert this many fake posts before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("main:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalln("main:", err)
	}

	zlog := logger.Run(cfg.LogLevel)
	defer zlog.Sync()

	if cfg.JWTSecret == "" {
		zlog.Warn("main: JWT_SECRET is empty, every authenticated route will answer 401")
	}

	mongoCtx, mongoCtxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer mongoCtxCancel()
	mongoOpts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(5 * time.Second).
		SetSocketTimeout(45 * time.Second)
	mongoClient, err := mongo.Connect(mongoCtx, mongoOpts)
	if err != nil {
		zlog.Fatalw("main: can't connect to MongoDB", "error", err)
	}
	if err := mongoClient.Ping(mongoCtx, readpref.Primary()); err != nil {
		zlog.Fatalw("main: unable to reach MongoDB", "error", err)
	}
	zlog.Info("main: connected to MongoDB")

	postsDB := mongoClient.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
	postsRepo := post.NewPostRepo(postsDB)
	if err := postsRepo.EnsureIndexes(mongoCtx); err != nil {
		zlog.Warnw("main: indexes not ensured", "error", err)
	}

	if *seedCount > 0 {
		if err := seed(mongoCtx, postsRepo, *seedCount); err != nil {
			zlog.Errorw("main: seeding failed", "error", err)
		}
	}

	var (
		store      ratelimit.Store = ratelimit.NewMemoryStore()
		redisStore *ratelimit.RedisStore
	)
	if cfg.RedisURL != "" {
		redisStore = ratelimit.NewRedisStore(ratelimit.NewRedisPool(cfg.RedisURL))
		if err := redisStore.Ping(mongoCtx); err != nil {
			zlog.Fatalw("main: can't connect to Redis", "error", err)
		}
		store = redisStore
		zlog.Info("main: rate limit counters kept in Redis")
	}

	limiter := ratelimit.New(store, cfg.RateLimitMax, cfg.RateLimitWindow)
	zlog.Infof("main: rate limit is %d requests per %s per address", limiter.Max(), limiter.Window())

	handler := server.NewRouter(server.Deps{
		Posts:   postsRepo,
		Tokens:  sessions.NewSessionManager(cfg.JWTSecret),
		Limiter: limiter,
		Logger:  zlog,
		Ping: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
		CORSOrigins: cfg.CORSOrigins,
		Started:     time.Now(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Infof("main: serving at http://localhost%s/", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("main: listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	zlog.Info("main: shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("main: server forced to shutdown", "error", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		zlog.Errorw("main: failed disconnecting from MongoDB", "error", err)
	} else {
		zlog.Info("main: MongoDB connection closed")
	}
	if redisStore != nil {
		if err := redisStore.Close(); err != nil {
			zlog.Errorw("main: failed closing Redis pool", "error", err)
		}
	}
}
