package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/site_ledger_service"
	"github.com/pdcgo/site_ledger_service/app_logging"
	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/configs"
	"github.com/pdcgo/site_ledger_service/db_connect"
	"github.com/pdcgo/site_ledger_service/gateway"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"gorm.io/gorm"
)

func NewConfig() (*configs.AppConfig, error) {
	cfg := configs.Load()
	return cfg, cfg.Validate()
}

func NewAuthorization(cfg *configs.AppConfig) authorization.Authorization {
	return authorization.NewJwtAuthorization(cfg.JwtSecret)
}

func NewDatabase(cfg *configs.AppConfig) (*gorm.DB, error) {
	return db_connect.NewDatabase("site_ledger_service", &cfg.Database)
}

func NewGinEngine(cfg *configs.AppConfig) *gin.Engine {
	return gateway.NewEngine(cfg.GinMode)
}

func withCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Referer, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "HEAD,PATCH,OPTIONS,GET,POST,PUT,DELETE")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type App struct {
	Run func() error
}

func NewApp(
	cfg *configs.AppConfig,
	engine *gin.Engine,
	ledgerRegister site_ledger_service.RegisterHandler,
	eventHandler site_ledger_service.EventHandler,
) *App {
	return &App{
		Run: func() error {
			ledgerRegister()
			stopEvents := eventHandler()
			defer stopEvents()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			listen := cfg.Addr()
			server := &http.Server{
				Addr: listen,
				// Use h2c so we can serve HTTP/2 without TLS.
				Handler: h2c.NewHandler(
					withCors(engine),
					&http2.Server{}),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				log.Println("listening on", listen)
				errc <- server.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Println("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	}
}

func main() {
	cfg := configs.Load()
	app_logging.SetDefault(cfg.LogLevel, cfg.LogFormat)

	app, err := InitializeApp()
	if err != nil {
		panic(err)
	}

	err = app.Run()
	if err != nil {
		panic(err)
	}
}
