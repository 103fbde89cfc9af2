package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrm8/hrm8-backend/internal/middleware"
	"github.com/hrm8/hrm8-backend/internal/models"
	"github.com/hrm8/hrm8-backend/internal/service"
	"golang.org/x/time/rate"
)

type Handler struct {
	userService       service.UserService
	withdrawalService service.WithdrawalService
	commissionService service.CommissionService
	secretKey         string
}

func NewHandler(userService service.UserService, withdrawalService service.WithdrawalService, commissionService service.CommissionService, secretKey string) *Handler {
	return &Handler{
		userService:       userService,
		withdrawalService: withdrawalService,
		commissionService: commissionService,
		secretKey:         secretKey,
	}
}

func NewRouter(handler *Handler, secretKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())

	limiter := middleware.NewUserRateLimiter(rate.Limit(10), 20)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "invalid URL format")
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handler.Register)
			r.Post("/login", handler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))
			r.Use(middleware.RateLimitMiddleware(limiter))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleConsultant, models.RoleSalesAgent, models.RoleConsultant360))
				r.Get("/withdrawals/balance", handler.GetBalance)
				r.Get("/withdrawals", handler.GetWithdrawals)
				r.Post("/withdrawals", handler.SubmitWithdrawal)
				r.Post("/withdrawals/{id}/cancel", handler.CancelWithdrawal)
				r.Get("/commissions", handler.GetCommissions)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleAdmin))
				r.Get("/withdrawals", handler.AdminListWithdrawals)
				r.Post("/withdrawals/{id}/approve", handler.ApproveWithdrawal)
				r.Post("/withdrawals/{id}/reject", handler.RejectWithdrawal)
				r.Post("/withdrawals/{id}/process-payment", handler.ProcessWithdrawalPayment)
				r.Post("/commissions", handler.CreateCommission)
			})
		})
	})

	return r
}
