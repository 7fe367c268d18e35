package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/Zachkp/folio/internal/clock"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/typewriter"
)

// server carries everything the handlers share.
type server struct {
	cfg     Config
	store   *store
	content *portfolio.Portfolio
	clock   clock.Clock
	mailer  Mailer
	loc     *time.Location

	adminToken  string
	hashingSalt string

	// background tracks fire-and-forget work (visitor tracking,
	// privacy cleanup) so shutdown and tests can wait for it.
	background sync.WaitGroup
}

func newServer(cfg Config, st *store, content *portfolio.Portfolio, clk clock.Clock, mailer Mailer) (*server, error) {
	token, err := generateAdminToken()
	if err != nil {
		return nil, err
	}
	salt, err := generateAdminToken() // Use for IP hashing
	if err != nil {
		return nil, err
	}
	return &server{
		cfg:         cfg,
		store:       st,
		content:     content,
		clock:       clk,
		mailer:      mailer,
		loc:         cfg.location(),
		adminToken:  token,
		hashingSalt: salt,
	}, nil
}

func generateAdminToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Hash IP address for privacy compliance (consistent per IP)
func (s *server) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16] // Truncate for storage efficiency
}

// newEngine builds a hero typewriter over the configured roles. Each
// connection gets its own engine.
func (s *server) newEngine(observer func(typewriter.Snapshot)) *typewriter.Engine {
	cfg := s.cfg.Typewriter.engineConfig(s.content.Roles)
	return typewriter.New(cfg, typewriter.WithClock(s.clock), typewriter.WithObserver(observer))
}

func (s *server) goBackground(fn func()) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		fn()
	}()
}
