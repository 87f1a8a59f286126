// Package server wires handlers and middleware into the HTTP router.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	. "postshare/pkg/common"
	"postshare/pkg/middleware"
	"postshare/pkg/post"
)

type Deps struct {
	Posts       post.IPostRepo
	Tokens      middleware.ITokenVerifier
	Limiter     middleware.ILimiter
	Logger      *zap.SugaredLogger
	Ping        func(context.Context) error
	CORSOrigins []string
	Started     time.Time
}

func NewRouter(d Deps) http.Handler {
	if d.Started.IsZero() {
		d.Started = time.Now()
	}
	if d.Logger == nil {
		d.Logger = zap.S()
	}

	postHandler := post.NewPostHandler(d.Posts)
	auth := middleware.NewAuthMiddleware(d.Tokens)
	limiter := middleware.NewRateLimitMiddleware(d.Limiter, "posts")
	health := &healthHandler{ping: d.Ping, started: d.Started}

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteErr(w, NotFound("Route not found"))
	})
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteErr(w, MethodNotAllowed())
	})

	r := mux.NewRouter()
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notAllowed

	r.HandleFunc("/", health.Info).Methods("GET")
	r.HandleFunc("/health", health.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	protected := func(h http.HandlerFunc) http.Handler {
		return auth.Authenticate(h)
	}
	validated := func(h http.HandlerFunc) http.Handler {
		return auth.Authenticate(post.ValidatePost(h))
	}

	// Posts
	posts := r.PathPrefix("/posts").Subrouter()
	posts.Use(limiter.Middleware)
	// mux skips middleware on misses, so unknown paths and methods under
	// /posts are counted here.
	posts.NotFoundHandler = limiter.Middleware(notFound)
	posts.MethodNotAllowedHandler = limiter.Middleware(notAllowed)
	posts.HandleFunc("", postHandler.List).Methods("GET")
	posts.HandleFunc("/", postHandler.List).Methods("GET")
	posts.Handle("", validated(postHandler.Add)).Methods("POST")
	posts.Handle("/", validated(postHandler.Add)).Methods("POST")
	posts.HandleFunc("/{post_id}", postHandler.Get).Methods("GET")
	posts.Handle("/{post_id}", validated(postHandler.Update)).Methods("PATCH")
	posts.Handle("/{post_id}", protected(postHandler.Delete)).Methods("DELETE")
	posts.Handle("/{post_id}/likePost", protected(postHandler.Like)).Methods("PATCH")

	logMiddleware := middleware.NewLoggingMiddleware(d.Logger)
	r.Use(logMiddleware.SetupTracing)
	r.Use(logMiddleware.SetupLogging)
	r.Use(logMiddleware.AccessLog)
	r.Use(middleware.Recover)
	r.Use(middleware.Metrics)
	r.Use(middleware.LimitBody)

	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", middleware.RequestIdHeader}),
		handlers.ExposedHeaders([]string{middleware.RequestIdHeader, "Retry-After"}),
	)

	return cors(middleware.SecurityHeaders(r))
}
