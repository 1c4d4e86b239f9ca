package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mehedishopnil/rci-maria-server/internal/config"
	"github.com/mehedishopnil/rci-maria-server/internal/db"
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/bookings"
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/resorts"
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/users"
	"github.com/mehedishopnil/rci-maria-server/internal/middleware"
	"github.com/mehedishopnil/rci-maria-server/internal/store"
)

func newRouter(usersStore, resortsStore, bookingsStore store.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	// All origins allowed, matching the public deployment.
	r.Use(cors.Default())

	userH := users.New(usersStore)
	resortH := resorts.New(resortsStore)
	bookingH := bookings.New(bookingsStore)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "RCI resort booking server is running")
	})

	r.POST("/users", userH.Create)
	r.GET("/users", userH.GetByField("email"))
	r.GET("/all-users", userH.ListAll)
	r.PATCH("/update-user", userH.UpdateRole)
	r.PATCH("/update-user-info", userH.UpdateInfo)

	r.GET("/resorts", resortH.ListPaged)
	r.POST("/resorts", resortH.Create)
	r.GET("/all-resorts", resortH.ListAll)
	r.GET("/allResorts", resortH.ListCapped(30))

	r.POST("/bookings", bookingH.Create)
	r.GET("/bookings", bookingH.ListByField("email"))
	r.GET("/all-bookings", bookingH.ListAll)

	return r
}

func main() {
	cfg := config.Load()

	// A database that cannot be reached at startup is fatal; the process
	// exits nonzero instead of serving degraded traffic.
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	d, err := db.Open(connectCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := db.EnsureIndexes(connectCtx, d); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}
	cancel()

	gin.SetMode(gin.ReleaseMode)
	r := newRouter(
		store.NewMongo(d.Collection(db.Users)),
		store.NewMongo(d.Collection(db.Resorts)),
		store.NewMongo(d.Collection(db.Bookings)),
	)

	srv := &http.Server{Addr: cfg.Addr, Handler: r}

	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	stop, stopCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopCancel()
	<-stop.Done()

	log.Println("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if err := d.Close(shutdownCtx); err != nil {
		log.Printf("db close: %v", err)
	}
}
