package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	intconfig "bustms/internal/config"
	"bustms/internal/console"
	"bustms/internal/domain"
	router "bustms/internal/http"
	"bustms/internal/http/handlers"
	"bustms/internal/repositories"
	"bustms/internal/services"
	"bustms/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run())
}

func run() int {
	env := intconfig.LoadEnv()

	logOut, err := utils.SetupLogOutput(env.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
		return 1
	}
	defer logOut.Close()

	fleet := domain.NewFleet()
	booking := services.BookingService{Fleet: fleet}

	if env.JournalDSN != "" {
		db, err := intconfig.OpenJournalDB(env.JournalDSN)
		if err != nil {
			log.Printf("[JOURNAL] disabled: %v", err)
		} else {
			defer db.Close()
			booking.Journal = &repositories.JournalRepo{DB: db}
		}
	}
	if env.ReceiptDir != "" {
		booking.Receipts = services.DocsService{Dir: env.ReceiptDir}
		log.Printf("[DOCS] e-tickets written to %s", env.ReceiptDir)
	}

	var srv *http.Server
	if env.StatusAddr != "" {
		srv = startStatusServer(env, fleet)
	}

	menu := &console.Menu{
		Fleet:       fleet,
		Booking:     booking,
		In:          os.Stdin,
		Out:         os.Stdout,
		ClearScreen: isatty.IsTerminal(os.Stdout.Fd()),
	}

	var shutdownOnce sync.Once
	shutdown := func() {
		shutdownOnce.Do(func() { shutdownStatusServer(srv) })
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	// The menu blocks on stdin, so a signal stops the server and exits from here.
	menuDone := make(chan struct{})
	go func() {
		select {
		case sig := <-quit:
			log.Printf("received %s, shutting down", sig)
			shutdown()
			logOut.Close()
			os.Exit(130)
		case <-menuDone:
		}
	}()

	runErr := menu.Run(context.Background())
	close(menuDone)
	shutdown()

	if runErr != nil {
		log.Printf("menu stopped: %v", runErr)
		return 1
	}
	return 0
}

func shutdownStatusServer(srv *http.Server) {
	if srv == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("status server shutdown failed: %v", err)
	}
}

func startStatusServer(env intconfig.Env, fleet *domain.Fleet) *http.Server {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.NewRouter(env, handlers.Handlers{
		Fleet:   fleet,
		Reports: services.ReportsService{Fleet: fleet},
		Env:     env,
	})

	srv := &http.Server{
		Addr:              env.StatusAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Status server listening on %s", env.StatusAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("status server stopped: %v", err)
		}
	}()
	return srv
}
