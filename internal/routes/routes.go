package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naismart/naismart-backend/internal/handlers"
	"github.com/naismart/naismart-backend/internal/middleware"
	"github.com/naismart/naismart-backend/internal/services"
	"github.com/naismart/naismart-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store, sessions *services.SessionManager, notifier *services.Notifier, mpesa *services.MpesaService) {
	authHandler := handlers.NewAuthHandler(store, sessions, notifier)
	bookingHandler := handlers.NewBookingHandler(store, sessions, notifier)
	feedbackHandler := handlers.NewFeedbackHandler(store, notifier)
	paymentHandler := handlers.NewPaymentHandler(mpesa)
	healthHandler := handlers.NewHealthHandler("1.0.0")

	requireAuth := middleware.RequireAuth(sessions)

	app.Get("/health", healthHandler.Check)

	// Public marketing pages
	app.Get("/", handlers.PublicPage("index"))
	app.Get("/services", handlers.PublicPage("services"))
	app.Get("/staff", handlers.PublicPage("staff"))
	app.Get("/forums", handlers.PublicPage("forums"))
	app.Get("/gallery", handlers.PublicPage("gallery"))
	app.Get("/about", handlers.PublicPage("about"))
	app.Get("/contact", handlers.PublicPage("contact"))
	app.Get("/help", handlers.PublicPage("help"))

	// Account
	app.Get("/register", handlers.PublicPage("sign_up"))
	app.Post("/register", authHandler.Register)
	app.Get("/sign_in", handlers.PublicPage("sign_in"))
	app.Post("/sign_in", authHandler.SignIn)
	app.Get("/sign_out", authHandler.SignOut)

	// Password recovery
	app.Get("/pwd_reset", handlers.PublicPage("pwd_reset"))
	app.Post("/pwd_reset", authHandler.RequestPasswordReset)
	app.Post("/new_pwd", authHandler.ConfirmPasswordReset)

	// Booking: open to both signed-in customers and anonymous visitors
	app.Get("/book_now", handlers.PublicPage("book"))
	app.Post("/book_now", bookingHandler.BookNow)

	// Signed-in area
	app.Get("/priv_home", requireAuth, handlers.PrivatePage("home"))
	app.Get("/history", requireAuth, bookingHandler.History)
	app.Get("/virtual", requireAuth, handlers.PrivatePage("virtual"))
	app.Get("/pay", requireAuth, handlers.PrivatePage("pay"))
	app.Post("/pay", requireAuth, paymentHandler.ProcessPayment)
	app.Get("/pharmacy", requireAuth, handlers.PrivatePage("pharmacy"))

	// Feedback
	app.Post("/feedback", feedbackHandler.Submit)
}
