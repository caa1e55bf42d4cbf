package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/brtkwt/BestStoreAPI/domain"
	"github.com/brtkwt/BestStoreAPI/internal/config"
	"github.com/brtkwt/BestStoreAPI/internal/infrastructure/auth"
	"github.com/brtkwt/BestStoreAPI/internal/infrastructure/database"
	"github.com/brtkwt/BestStoreAPI/internal/infrastructure/notifications"
	"github.com/brtkwt/BestStoreAPI/internal/infrastructure/repositories"
	"github.com/brtkwt/BestStoreAPI/internal/infrastructure/storage"
	"github.com/brtkwt/BestStoreAPI/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	UserRepo    domain.UserRepository
	ResetRepo   domain.PasswordResetRepository
	ProductRepo domain.ProductRepository
	SubjectRepo domain.SubjectRepository
	ContactRepo domain.ContactRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	Storage         domain.FileStorage

	AuthSvc    domain.AuthService
	CatalogSvc domain.CatalogService
	ContactSvc domain.ContactService
	CartSvc    domain.CartService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return nil, err
	}
	c.DB = gdb

	c.Casbin, err = auth.NewCasbinService(gdb, cfg.CasbinModel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize casbin: %w", err)
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	c.RedisClient = rdb.Client

	c.Storage, err = newFileStorage(cfg)
	if err != nil {
		return nil, err
	}

	c.UserRepo = repositories.NewUserRepository(gdb)
	c.ResetRepo = repositories.NewPasswordResetRepository(c.RedisClient)
	c.ProductRepo = repositories.NewProductRepository(gdb)
	c.SubjectRepo = repositories.NewSubjectRepository(gdb)
	c.ContactRepo = repositories.NewContactRepository(gdb)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	c.NotificationSvc = notifications.NewSMTPService(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPFromName,
	)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.ResetRepo, c.PasswordSvc, c.TokenSvc, c.NotificationSvc)
	c.CatalogSvc = services.NewCatalogService(c.ProductRepo, c.Storage)
	c.ContactSvc = services.NewContactService(c.ContactRepo, c.SubjectRepo, c.NotificationSvc)
	c.CartSvc = services.NewCartService(c.ProductRepo)

	return c, nil
}

func newFileStorage(cfg *config.Config) (domain.FileStorage, error) {
	switch cfg.StorageDriver {
	case "s3":
		return storage.NewS3Storage(context.Background(), storage.S3Options{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return storage.NewLocalStorage(cfg.ImageDir)
	}
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
