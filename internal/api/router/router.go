package router

import (
	"net/http"

	"spinnergy/internal/api/handler"
	"spinnergy/internal/api/middleware"
	"spinnergy/internal/api/util"
	"spinnergy/internal/core/service"
	"spinnergy/internal/nutrition"
)

func NewRouter(
	accountService service.AccountService,
	sessionService service.SessionService,
	gameService service.GameService,
	leaderboardService service.LeaderboardService,
	nutritionClient *nutrition.Client,
	storageName string,
) http.Handler {
	// Initialize handlers
	authHandler := handler.NewAuthHandler(accountService, sessionService)
	gameHandler := handler.NewGameHandler(gameService, leaderboardService)
	nutritionHandler := handler.NewNutritionHandler(nutritionClient)
	energyHandler := handler.NewEnergyHandler()
	authMiddleware := middleware.NewAuthMiddleware(sessionService)

	// Create router
	mux := http.NewServeMux()

	// Public routes skip the auth link in the chain.
	public := func(h http.Handler) http.Handler {
		return middleware.CORSMiddleware(
			middleware.LoggingMiddleware(h),
		)
	}
	protected := func(h http.Handler) http.Handler {
		return middleware.CORSMiddleware(
			middleware.LoggingMiddleware(
				authMiddleware.Authenticate(h),
			),
		)
	}

	mux.Handle("/", public(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			util.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		util.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "Spinnergy server running",
		})
	})))

	mux.Handle("/health", public(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		util.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"storage": storageName,
		})
	})))

	mux.Handle("/api/auth/register", public(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			util.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		authHandler.Register(w, r)
	})))

	mux.Handle("/api/auth/login", public(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			util.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		authHandler.Login(w, r)
	})))

	mux.Handle("/api/auth/profile", protected(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			util.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		authHandler.Profile(w, r)
	})))

	mux.Handle("/api/game/spin", protected(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			util.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		gameHandler.Spin(w, r)
	})))

	mux.Handle("/api/game/leaderboard", public(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			util.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		gameHandler.Leaderboard(w, r)
	})))

	mux.Handle("/api/game/history", protected(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			util.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		gameHandler.History(w, r)
	})))

	mux.Handle("/api/nutrition", public(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			util.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		nutritionHandler.Lookup(w, r)
	})))

	mux.Handle("/api/simulate", public(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			util.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		energyHandler.Simulate(w, r)
	})))

	return mux
}
