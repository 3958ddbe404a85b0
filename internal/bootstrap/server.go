package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Domenick1991/mybooking/api"
	"github.com/Domenick1991/mybooking/config"
	"github.com/Domenick1991/mybooking/internal/service/account"
	"github.com/Domenick1991/mybooking/internal/service/booking"
	"github.com/Domenick1991/mybooking/internal/service/catalog"
	"github.com/Domenick1991/mybooking/internal/service/payment"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	catalogSvc catalog.CatalogUseCase,
	accountSvc account.AccountUseCase,
	reservationSvc booking.ReservationUseCase,
	paymentSvc payment.PaymentUseCase,
) error {
	engine := newEngine(cfg, catalogSvc, accountSvc, reservationSvc, paymentSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newEngine(
	cfg *config.Config,
	catalogSvc catalog.CatalogUseCase,
	accountSvc account.AccountUseCase,
	reservationSvc booking.ReservationUseCase,
	paymentSvc payment.PaymentUseCase,
) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	apiGroup := engine.Group("/api")
	api.NewCatalogHandler(catalogSvc).Register(apiGroup)
	api.NewUserHandler(accountSvc, reservationSvc).Register(apiGroup)
	api.NewReservationHandler(reservationSvc).Register(apiGroup)
	api.NewPaymentHandler(paymentSvc).Register(apiGroup)

	if cfg.HTTP.StaticDir != "" {
		engine.StaticFile("/", filepath.Join(cfg.HTTP.StaticDir, "index.html"))
		engine.NoRoute(staticOrNotFound(cfg.HTTP.StaticDir))
	}

	return engine
}

// staticOrNotFound serves front-end assets for any unmatched path.
func staticOrNotFound(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	}
}
