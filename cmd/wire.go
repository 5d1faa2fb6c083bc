package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	renderbookings "github.com/bnema/biketaxi-cli/internal/adapters/render/bookings"
	"github.com/bnema/biketaxi-cli/internal/adapters/rideapi"
	"github.com/bnema/biketaxi-cli/internal/adapters/sessionstore"
	"github.com/bnema/biketaxi-cli/internal/application"
	"github.com/spf13/viper"
)

const (
	apiBaseURLKey     = "api.base_url"
	defaultAPIBaseURL = "http://localhost:4567"
)

type app struct {
	sessions *application.SessionService
	auth     *application.AuthForm
	bookings *application.BookingService
	renderer func(application.Outcome) (string, error)
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault(apiBaseURLKey, defaultAPIBaseURL)

	store, err := sessionstore.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	ride := &rideapi.Client{
		BaseURL:        envOrDefault("BT_API_BASE_URL", cfg.GetString(apiBaseURLKey)),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: 30 * time.Second,
	}

	sessions := application.NewSessionService(store, ride)

	return &app{
		sessions: sessions,
		auth:     application.NewAuthForm(sessions, ride),
		bookings: application.NewBookingService(sessions, ride),
		renderer: renderbookings.Render,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
