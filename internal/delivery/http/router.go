package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"alertroster/config"
	"alertroster/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router for the selected registry mode.
// Both modes share the /api/settings paths: the legacy settings variant serves
// the single record, the roster variant serves the recipient list. staticDir,
// when non-empty, is served at / for the front-end page.
func NewRouter(mode string, settings *controllers.SettingsController, roster *controllers.RosterController, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	switch mode {
	case config.ModeSettings:
		mux.HandleFunc("GET /api/settings", settings.GetSettings)
		mux.HandleFunc("POST /api/settings", settings.UpdateSettings)
	case config.ModeRoster:
		mux.HandleFunc("GET /api/settings", roster.ListRecipients)
		mux.HandleFunc("POST /api/settings", roster.AddRecipient)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Static front-end
	if staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	return mux
}
