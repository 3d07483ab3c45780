package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"smartclub/api/internal/service"
	"smartclub/api/internal/service/auth"
)

type Handler struct {
	router *chi.Mux

	authSvc     *auth.Service
	checkoutSvc *service.CheckoutService
	catalogSvc  *service.CatalogService
	orderSvc    *service.OrderService
}

func NewHandler(authSvc *auth.Service, checkoutSvc *service.CheckoutService, catalogSvc *service.CatalogService, orderSvc *service.OrderService) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	h := &Handler{
		router:      router,
		authSvc:     authSvc,
		checkoutSvc: checkoutSvc,
		catalogSvc:  catalogSvc,
		orderSvc:    orderSvc,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)
	})

	h.router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
	})

	h.router.Get("/products", h.ListProducts)

	h.router.Route("/orders", func(r chi.Router) {
		r.Use(h.authenticate)
		r.Get("/my", h.MyOrders)
		r.Post("/checkout", h.Checkout)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
