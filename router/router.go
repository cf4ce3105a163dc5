package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/controllers"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/middlewares"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/services"
)

// Services bundles the shared service instances the router wires into
// controllers.
type Services struct {
	Settings     *services.SettingsService
	Availability *services.AvailabilityService
	Reservations *services.ReservationService
	Orders       *services.OrderService
	Payments     *services.PaymentService
}

// NewServices builds the default service graph. publisher may be nil
// when no broker is configured; side effects then stay local.
func NewServices(db *gorm.DB, publisher services.QueuePublisher) *Services {
	settings := services.NewSettingsService(db)
	availability := services.NewAvailabilityService(db, settings)
	notifier := services.NewQueueNotifier(db, publisher)
	activity := services.NewActivityLogger(db, publisher)
	payments := services.NewPaymentService(db)

	return &Services{
		Settings:     settings,
		Availability: availability,
		Reservations: services.NewReservationService(db, availability, notifier, activity),
		Orders:       services.NewOrderService(db, payments, notifier, activity),
		Payments:     payments,
	}
}

func SetupRouter(db *gorm.DB, svc *Services) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	customerCtrl := controllers.NewCustomerController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	promoCtrl := controllers.NewPromoController(db)
	reviewCtrl := controllers.NewReviewController(db)
	reservationCtrl := controllers.NewReservationController(db, svc.Reservations, svc.Availability)
	orderCtrl := controllers.NewOrderController(db, svc.Orders)
	paymentCtrl := controllers.NewPaymentController(db, svc.Payments)
	adminCtrl := controllers.NewAdminController(db, svc.Settings)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Catalogue
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/by-category", menuCtrl.GetMenuByCategory)

	// Loyalty accounts
	r.POST("/customers", customerCtrl.CreateCustomer)
	r.GET("/customers/:customer_id/loyalty", customerCtrl.GetLoyaltyStatus)

	// Promo lookup before checkout
	r.GET("/promos/:code/validate", promoCtrl.ValidatePromo)

	// Reservations
	r.GET("/reservations/availability", reservationCtrl.CheckAvailability)
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.DELETE("/reservations/:code", reservationCtrl.CancelReservation)

	// Checkout
	r.POST("/orders/quote", orderCtrl.QuoteDiscount)
	r.POST("/orders", orderCtrl.FinalizeOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// Payment processor callback
	r.POST("/payments/callback", paymentCtrl.HandlePaymentCallback)

	// Reviews
	r.POST("/reviews", reviewCtrl.SubmitReview)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)

	// Staff dashboard WebSocket
	auth.GET("/events/ws", controllers.DashboardEventsHandler)

	staff := auth.Group("/")
	staff.Use(middlewares.RequireRoles(models.RoleStaff))
	{
		// RESERVATIONS
		staff.GET("/reservations", reservationCtrl.GetAllReservations)
		staff.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)

		// ORDERS
		staff.GET("/orders", orderCtrl.GetAllOrders)
		staff.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		staff.POST("/orders/:order_id/assign-rider", orderCtrl.AssignRider)

		// CUSTOMERS
		staff.GET("/customers", customerCtrl.GetAllCustomers)
		staff.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
		staff.PATCH("/customers/:customer_id", customerCtrl.UpdateCustomer)

		// MENUS
		staff.POST("/categories", categoryCtrl.CreateCategory)
		staff.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
		staff.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)
		staff.POST("/menus", menuCtrl.CreateMenu)
		staff.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
		staff.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
		staff.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

		// PAYMENTS / REVIEWS
		staff.GET("/payments", paymentCtrl.GetPayments)
		staff.GET("/reviews", reviewCtrl.GetAllReviews)
	}

	rider := auth.Group("/")
	rider.Use(middlewares.RequireRoles(models.RoleStaff, models.RoleRider))
	{
		rider.PATCH("/delivery/:order_id/status", orderCtrl.UpdateOrderStatus)
	}

	adminOnly := auth.Group("/")
	adminOnly.Use(middlewares.RequireRoles(models.RoleAdmin))
	{
		adminOnly.GET("/users", userCtrl.GetAllUsers)
		adminOnly.GET("/dashboard/stats", adminCtrl.GetDashboardStats)
		adminOnly.GET("/settings", adminCtrl.GetSettings)
		adminOnly.PATCH("/settings", adminCtrl.UpdateSettings)
		adminOnly.GET("/activity-logs", adminCtrl.GetActivityLogs)
		adminOnly.GET("/notifications", adminCtrl.GetNotifications)
		adminOnly.GET("/promos", promoCtrl.GetAllPromos)
		adminOnly.POST("/promos", promoCtrl.CreatePromo)
		adminOnly.PATCH("/promos/:promo_id", promoCtrl.UpdatePromo)
		adminOnly.DELETE("/promos/:promo_id", promoCtrl.DeletePromo)
	}

	return r
}
