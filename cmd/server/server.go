// cmd/server/server.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tvidela/clubcancha/internal/api"
	"github.com/tvidela/clubcancha/internal/booking"
	"github.com/tvidela/clubcancha/internal/clock"
	"github.com/tvidela/clubcancha/internal/config"
	"github.com/tvidela/clubcancha/internal/db"
	"github.com/tvidela/clubcancha/internal/dues"
	"github.com/tvidela/clubcancha/internal/email"
	"github.com/tvidela/clubcancha/internal/members"
	"github.com/tvidela/clubcancha/internal/params"
	"github.com/tvidela/clubcancha/internal/payments"
)

// Members register with local numbers; normalization needs a default
// region.
const defaultPhoneRegion = "AR"

type app struct {
	clubID   int64
	clock    clock.Clock
	params   *params.Store
	engine   *dues.Engine
	handlers *api.Handlers
}

func newApp(ctx context.Context, cfg *config.Config, database *db.DB) (*app, error) {
	clubs, err := database.Queries.ListClubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing clubs: %w", err)
	}
	if len(clubs) == 0 {
		return nil, fmt.Errorf("no club configured; seed the database first")
	}
	clubID := clubs[0].ID

	clk := clock.New()
	paramStore := params.NewStore(database, clk)

	var sender email.EmailSender = email.NoopSender{}
	if cfg.Email.Enabled {
		sesClient, err := email.NewSESClient(ctx, cfg.Email)
		if err != nil {
			return nil, fmt.Errorf("error creating SES client: %w", err)
		}
		sender = sesClient
	}

	gateway := payments.NewClient(cfg.Payments)
	manager := booking.NewManager(database, paramStore, gateway, clk, sender, booking.ManagerConfig{
		ClubID:  clubID,
		BaseURL: cfg.App.BaseURL,
	})
	confirmer := payments.NewConfirmer(database, gateway, clk, sender, manager)
	engine := dues.NewEngine(database, paramStore, clk, sender, clubID)
	memberSvc := members.NewService(database, clk, clubID, defaultPhoneRegion)

	return &app{
		clubID:   clubID,
		clock:    clk,
		params:   paramStore,
		engine:   engine,
		handlers: api.NewHandlers(cfg, manager, confirmer, engine, memberSvc),
	}, nil
}

func newServer(cfg *config.Config, a *app) *http.Server {
	handler := api.ChainMiddleware(
		a.handlers.Routes(),
		api.WithLogging(log.Logger),
		api.WithRequestID,
		api.WithRecovery,
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
