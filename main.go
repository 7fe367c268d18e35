package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/clock"
	"github.com/Zachkp/folio/internal/portfolio"
)

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// newRouter wires every route onto a gin engine.
func newRouter(s *server) (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(s.visitorTrackingMiddleware())

	s.setupSiteRoutes(r)
	s.setupHeroRoutes(r)
	s.setupContactRoutes(r)
	s.setupAdminRoutes(r)
	return r, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	content, err := portfolio.Load(cfg.ContentPath)
	if err != nil {
		log.Fatalf("Failed to load portfolio content: %v", err)
	}

	st, err := openStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	to := cfg.ContactEmail
	if to == "" {
		to = content.Personal.Email
	}
	mailer := smtpMailer{cfg: cfg.SMTP, to: to}

	s, err := newServer(cfg, st, content, clock.Real(), mailer)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", s.adminToken)
	}
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")

	// Clean up old visitor data for privacy compliance (run in background)
	s.goBackground(s.cleanupOldVisitorData)

	r, err := newRouter(s)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Request contexts derive from ctx so open typewriter streams end on
	// shutdown instead of holding it up.
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		log.Printf("Serving %s's portfolio on :%s", content.Personal.Name, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	s.background.Wait()
}
