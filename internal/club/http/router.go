package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/internal/club/store"
	"github.com/malliaquatic/clubd/pkg/httpx"
	"github.com/malliaquatic/clubd/pkg/jwtx"
	"github.com/malliaquatic/clubd/pkg/slogx"

	_ "github.com/malliaquatic/clubd/api/club" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	ConfigService    *service.ConfigService
	RaffleService    *service.RaffleService
	UserService      *service.UserService
	ExportService    *service.ExportService
	AssistantService *service.AssistantService
	Events           *service.EventBus
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerConfig()
	r.registerRaffle()
	r.registerUsers()
	r.registerAdmin()
	r.registerAssistant()
	r.registerEvents()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Malli Aquatic Club API
//	@version		0.1.0
//	@description	Backend for the club's daily raffle: member accounts, raffle entries with
//	@description	presence heartbeats, admin-run draws, the public config document and a live
//	@description	event stream. Admin access is PIN-based and verified server-side.
//
//	@contact.name	Malli Aquatic Club
//	@contact.url	https://github.com/malliaquatic/clubd
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn is the shared token verification middleware.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier)
}

// memberChain secures a member-facing route: token, tier, maintenance
// gate, then a per-DNI rate limit.
func (r *Router) memberChain(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		r.authn(),
		httpx.RequireTier("user"),
		MaintenanceMiddleware(r.ConfigService),
		httpx.RateLimitByDNI(limit),
	)
}

// adminChain secures an admin route. Admin tokens are re-checked against
// the adminAccessEnabled switch on every request; maintenance mode never
// applies, otherwise admins could not turn it off.
func (r *Router) adminChain(h http.Handler, minTier string, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		r.authn(),
		httpx.RequireTier(minTier),
		AdminGateMiddleware(r.AuthService),
		httpx.RateLimitByDNI(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints - strict rate limit by IP (brute force prevention)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// PIN elevation stays reachable during maintenance: it is the super
	// admin's escape hatch back into the panel.
	r.Mux.Handle("POST /v1/auth/admin/pin",
		httpx.Chain(http.HandlerFunc(h.HandleAdminPIN),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			r.authn(),
			httpx.RateLimitByDNI(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerConfig() {
	h := &ConfigHandler{ConfigService: r.ConfigService}

	// Public read: maintenance screens need the texts, so no gate here.
	// Tokens are optional; a valid admin session gets the winner included,
	// unless the admin gate has locked it out.
	r.Mux.Handle("GET /v1/config",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.OptionalAuthnMiddleware(r.verifier),
			AdminGateMiddleware(r.AuthService),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("PUT /v1/config",
		r.adminChain(http.HandlerFunc(h.HandlePut), "admin", httpx.ModerateLimit),
	)
}

func (r *Router) registerRaffle() {
	h := &RaffleHandler{RaffleService: r.RaffleService}

	r.Mux.Handle("POST /v1/raffle/join",
		r.memberChain(http.HandlerFunc(h.HandleJoin), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/raffle/heartbeat",
		r.memberChain(http.HandlerFunc(h.HandleHeartbeat), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/raffle/leave",
		r.memberChain(http.HandlerFunc(h.HandleLeave), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/raffle/participants",
		r.memberChain(http.HandlerFunc(h.HandleParticipants), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/raffle/status",
		r.memberChain(http.HandlerFunc(h.HandleStatus), httpx.LenientLimit))

	r.Mux.Handle("POST /v1/raffle/draw",
		r.adminChain(http.HandlerFunc(h.HandleDraw), "admin", httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/raffle/winner",
		r.adminChain(http.HandlerFunc(h.HandleClearWinner), "admin", httpx.ModerateLimit))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Account deletion works even during maintenance; members must always
	// be able to take their data out.
	r.Mux.Handle("DELETE /v1/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleUnregister),
			r.authn(),
			httpx.RequireTier("user"),
			httpx.RateLimitByDNI(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	users := &UsersHandler{UserService: r.UserService}
	raffle := &RaffleHandler{RaffleService: r.RaffleService}
	control := &ControlHandler{ConfigService: r.ConfigService}
	export := &ExportHandler{ExportService: r.ExportService}
	mfa := &MFAHandler{AuthService: r.AuthService}

	r.Mux.Handle("GET /v1/admin/users",
		r.adminChain(http.HandlerFunc(users.HandleList), "admin", httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/departures",
		r.adminChain(http.HandlerFunc(raffle.HandleDepartures), "admin", httpx.ModerateLimit))

	r.Mux.Handle("PUT /v1/admin/control",
		r.adminChain(http.HandlerFunc(control.HandleControl), "superadmin", httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/export",
		r.adminChain(http.HandlerFunc(export.HandleExport), "superadmin", httpx.ModerateLimit))

	r.Mux.Handle("POST /v1/admin/mfa/enroll",
		r.adminChain(http.HandlerFunc(mfa.HandleEnroll), "superadmin", httpx.ModerateLimit))
	// Strict limit on verify to stop TOTP code brute force.
	r.Mux.Handle("POST /v1/admin/mfa/verify",
		r.adminChain(http.HandlerFunc(mfa.HandleVerify), "superadmin", httpx.StrictLimit))
}

func (r *Router) registerAssistant() {
	h := &AssistantHandler{AssistantService: r.AssistantService}

	r.Mux.Handle("POST /v1/assistant/chat",
		r.memberChain(http.HandlerFunc(h.HandleChat), httpx.ModerateLimit))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{Events: r.Events}

	// The stream stays open during maintenance so clients hear the flip
	// back to active without polling.
	r.Mux.Handle("GET /v1/events",
		httpx.Chain(http.HandlerFunc(h.HandleStream),
			r.authn(),
			httpx.RateLimitByDNI(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
