package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/config"
	domainRepo "github.com/janipakwan/pakwan-api/internal/domain/repository"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/handler"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/middleware"
	"github.com/janipakwan/pakwan-api/pkg/apperror"
	"github.com/janipakwan/pakwan-api/pkg/session"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Order     *handler.OrderHandler
	Customer  *handler.CustomerHandler
	Menu      *handler.MenuHandler
	Expense   *handler.ExpenseHandler
	Party     *handler.PartyHandler
	Dashboard *handler.DashboardHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Sessions        *session.Manager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// sessionActions can be called without a session even when AUTH_REQUIRED is
// set; otherwise nobody could log in.
var sessionActions = []string{"login", "logout", "getSession"}

// Setup creates the Gin router and registers all routes. Every action rides on
// the single /api endpoint, dispatched by the action query parameter.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SessionMiddleware(deps.Sessions, deps.Cfg.Session.CookieName))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Google OAuth routes
	auth := router.Group("/auth")
	{
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}

	actions := actionTable(h)

	api := router.Group("/api")

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	api.Use(rateLimiter.Middleware())

	if deps.Cfg.App.AuthRequired {
		api.Use(middleware.RequireSession(sessionActions...))
	}

	api.Use(middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	}))

	api.Any("", func(c *gin.Context) {
		action := c.Query("action")
		if fn, ok := actions[action]; ok {
			fn(c)
			return
		}
		c.JSON(apperror.ErrInvalidAction.Code, gin.H{"error": apperror.ErrInvalidAction.Message})
	})

	return router
}

// actionTable maps every action name to its handler.
func actionTable(h *Handlers) map[string]gin.HandlerFunc {
	return map[string]gin.HandlerFunc{
		// Session
		"login":      h.Auth.Login,
		"logout":     h.Auth.Logout,
		"getSession": h.Auth.GetSession,

		// Customers and menu
		"getCustomers":       h.Customer.GetCustomers,
		"getCustomerHistory": h.Customer.GetCustomerHistory,
		"getMenuItems":       h.Menu.GetMenuItems,

		// Orders and payments
		"createOrder":       h.Order.CreateOrder,
		"addPayment":        h.Order.AddPayment,
		"getCustomerOrders": h.Order.GetCustomerOrders,
		"getPendingOrders":  h.Order.GetPendingOrders,
		"getOrderItems":     h.Order.GetOrderItems,
		"getOrderPayments":  h.Order.GetOrderPayments,

		// Expenses
		"getExpenses": h.Expense.GetExpenses,
		"addExpense":  h.Expense.AddExpense,

		// Supply parties
		"getSupplyParties":    h.Party.GetSupplyParties,
		"getPartyNames":       h.Party.GetPartyNames,
		"addSupplyBill":       h.Party.AddSupplyBill,
		"getPartyLedger":      h.Party.GetPartyLedger,
		"addPartyTransaction": h.Party.AddPartyTransaction,

		// Dashboard
		"getDashboardStats": h.Dashboard.GetDashboardStats,

		// Printer
		"printReceipt":     h.Printer.PrintReceipt,
		"getPrinterStatus": h.Printer.GetPrinterStatus,
	}
}
