package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/brtkwt/BestStoreAPI/internal/http/handlers"
	"github.com/brtkwt/BestStoreAPI/internal/http/middleware"
)

func BuildRouter(
	ah *handlers.AccountHandlers,
	ph *handlers.ProductHandlers,
	ch *handlers.ContactHandlers,
	crh *handlers.CartHandlers,
	uh *handlers.UserHandlers,
	jwtmw *middleware.AuthMW,
	cb middleware.CasbinMiddleware,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	acct := r.Group("/account")
	acct.POST("/register", ah.Register)
	acct.POST("/login", ah.Login)
	acct.POST("/forgot-password", ah.ForgotPassword)
	acct.POST("/reset-password", ah.ResetPassword)

	me := r.Group("/account").Use(jwtmw.WithJWT())
	me.GET("/profile", ah.Profile)
	me.PUT("/update-profile", ah.UpdateProfile)
	me.PUT("/update-password", ah.UpdatePassword)

	// /categories and /subjects sit at the top level because gin does not
	// allow a static segment next to the :id parameter
	r.GET("/categories", ph.Categories)
	r.GET("/products", ph.List)
	r.GET("/products/:id", ph.Get)

	padm := r.Group("/products").Use(jwtmw.WithJWT(), cb.Enforce())
	padm.POST("", ph.Create)
	padm.PUT("/:id", ph.Update)
	padm.DELETE("/:id", ph.Delete)

	r.GET("/subjects", ch.Subjects)
	r.POST("/contacts", ch.Create)

	cadm := r.Group("/contacts").Use(jwtmw.WithJWT(), cb.Enforce())
	cadm.GET("", ch.List)
	cadm.GET("/:id", ch.Get)
	cadm.DELETE("/:id", ch.Delete)

	r.GET("/cart", crh.Get)
	r.GET("/cart/payment-methods", crh.PaymentMethods)

	uadm := r.Group("/users").Use(jwtmw.WithJWT(), cb.Enforce())
	uadm.GET("", uh.List)
	uadm.GET("/:id", uh.Get)

	return r
}
