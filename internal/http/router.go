package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "tukrent/internal/config"
	h "tukrent/internal/http/handlers"
	"tukrent/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	h.SetEnv(env)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		// Public site surface: quote, booking intake, reference data.
		api.POST("/quote", h.PublicQuote)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/locations", h.ListLocations)
		api.GET("/train-transfers", h.ListTrainTransfers)
		api.GET("/settings/contact", h.GetContactSettings)
		api.POST("/discounts/validate", h.ValidateDiscount)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)

		// Back office
		admin := api.Group("")
		admin.Use(middleware.RequireAdmin(env.JWTSecret))
		{
			admin.GET("/db-check", h.DBCheck)
			admin.GET("/routes", h.Routes)
			admin.GET("/auth/me", h.Me)

			bookings := admin.Group("/bookings")
			bookings.GET("", h.ListBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.PUT("/:id/assign", h.AssignBooking)
			bookings.PUT("/:id/onboard", h.MarkBookingOnboard)
			bookings.PUT("/:id/finish", h.MarkBookingFinished)
			bookings.PUT("/:id/payment-link", h.AttachBookingPaymentLink)
			bookings.PUT("/:id/paid", h.MarkBookingPaid)
			bookings.DELETE("/:id", h.DeleteBooking)
			bookings.GET("/:id/voucher", h.GetBookingVoucher)
			bookings.GET("/:id/invoice", h.GetBookingInvoice)
			bookings.POST("/:id/checkout", h.CreateBookingCheckout)

			tuktuks := admin.Group("/tuktuks")
			tuktuks.GET("", h.ListTukTuks)
			tuktuks.POST("", h.CreateTukTuk)
			tuktuks.PUT("/:id", h.UpdateTukTuk)
			tuktuks.DELETE("/:id", h.DeleteTukTuk)

			admin.POST("/locations", h.CreateLocation)
			admin.PUT("/locations/:id", h.UpdateLocation)
			admin.DELETE("/locations/:id", h.DeleteLocation)

			persons := admin.Group("/persons")
			persons.GET("", h.ListPersons)
			persons.POST("", h.CreatePerson)
			persons.PUT("/:id", h.UpdatePerson)
			persons.DELETE("/:id", h.DeletePerson)

			admin.POST("/train-transfers", h.CreateTrainTransfer)
			admin.PUT("/train-transfers/:id", h.UpdateTrainTransfer)
			admin.DELETE("/train-transfers/:id", h.DeleteTrainTransfer)

			discounts := admin.Group("/discounts")
			discounts.GET("", h.ListDiscounts)
			discounts.POST("", h.CreateDiscount)
			discounts.PUT("/:code", h.UpdateDiscount)
			discounts.DELETE("/:code", h.DeleteDiscount)

			admin.GET("/master-prices", h.GetMasterPrices)
			admin.PUT("/master-prices", h.SaveMasterPrices)

			admin.GET("/vehicle-status", h.ListVehicleStatus)
			admin.PUT("/vehicle-status/:category", h.SaveVehicleStatus)

			admin.PUT("/settings/contact", h.SaveContactSettings)
		}
	}

	h.SetRouter(r)
	return r
}
