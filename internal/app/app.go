package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brtkwt/BestStoreAPI/internal/config"
	httpx "github.com/brtkwt/BestStoreAPI/internal/http"
	"github.com/brtkwt/BestStoreAPI/internal/http/handlers"
	"github.com/brtkwt/BestStoreAPI/internal/http/middleware"
	"github.com/brtkwt/BestStoreAPI/internal/infrastructure/repositories"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := seedSubjects(c); err != nil {
		return err
	}
	seedPolicies(c)

	accountH := handlers.NewAccountHandlers(c.AuthSvc)
	productH := handlers.NewProductHandlers(c.CatalogSvc)
	contactH := handlers.NewContactHandlers(c.ContactSvc)
	cartH := handlers.NewCartHandlers(c.CartSvc)
	userH := handlers.NewUserHandlers(c.UserRepo)

	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(accountH, productH, contactH, cartH, userH, jwtMW, casbinMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedSubjects inserts the default contact subjects on first start
func seedSubjects(c *Container) error {
	subjects, err := c.SubjectRepo.List(context.Background())
	if err != nil {
		return err
	}
	if len(subjects) > 0 {
		return nil
	}

	defaults := []string{"General Inquiry", "Order Status", "Refund Request", "Technical Support", "Other"}
	for _, name := range defaults {
		if err := c.DB.Create(&repositories.DBSubject{Name: name}).Error; err != nil {
			return err
		}
	}
	log.Println("subjects: seeded default contact subjects")
	return nil
}

// seedPolicies installs the default admin policies on first start
func seedPolicies(c *Container) {
	policies, _ := c.Casbin.E.GetPolicy()
	if len(policies) > 0 {
		return
	}

	c.Casbin.E.AddPolicy("role_admin", "/products", "POST")
	c.Casbin.E.AddPolicy("role_admin", "/products/:id", "(PUT|DELETE)")
	c.Casbin.E.AddPolicy("role_admin", "/contacts", "GET")
	c.Casbin.E.AddPolicy("role_admin", "/contacts/:id", "(GET|DELETE)")
	c.Casbin.E.AddPolicy("role_admin", "/users", "GET")
	c.Casbin.E.AddPolicy("role_admin", "/users/:id", "GET")
	_ = c.Casbin.E.SavePolicy()
	log.Println("casbin: seeded default policies")
}
