package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/service"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/pkg/httpx"
	"github.com/tech2saini/portfolio/pkg/slogx"

	_ "github.com/tech2saini/portfolio/api/portfolio" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion  string
	startTime     time.Time
	secureCookies bool
	logger        *slog.Logger

	store             store.Store
	SessionManager    *service.SessionManager
	AuthService       *service.AuthService
	ResetService      *service.PasswordResetService
	ContentService    *service.ContentService
	ContactService    *service.ContactService
	NewsletterService *service.NewsletterService
}

func NewRouter(buildVersion string, secureCookies bool, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		secureCookies: secureCookies,
		store:         st,
		logger:        logger,
	}
	return r
}

func (r *Router) ApplyRoutes() {
	// Session resolution runs on every request; handlers opt into
	// enforcement with RequireSession.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		SessionMiddleware(r.SessionManager),
	}

	r.registerAuth()
	r.registerContent()
	r.registerContact()
	r.registerNewsletter()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Portfolio API
//	@version		0.1.0
//	@description	Backend for a personal portfolio site: session-cookie authentication with optional TOTP 2FA, and CRUD for skills, services, projects, experiences, blog posts, contact messages, and newsletter subscribers.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						portfolio_session
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	auth := &AuthHandler{
		Auth:          r.AuthService,
		Sessions:      r.SessionManager,
		SecureCookies: r.secureCookies,
	}
	resets := &PasswordResetHandler{Resets: r.ResetService}

	// Credential endpoints get the strict limit to slow brute force.
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(auth.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(auth.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/logout", http.HandlerFunc(auth.HandleLogout))
	r.Mux.Handle("GET /api/auth/user", http.HandlerFunc(auth.HandleCurrentUser))

	r.Mux.Handle("POST /api/auth/setup-2fa",
		RequireSession(http.HandlerFunc(auth.HandleSetupTwoFactor)))
	r.Mux.Handle("POST /api/auth/verify-2fa",
		httpx.Chain(RequireSession(http.HandlerFunc(auth.HandleVerifyTwoFactor)),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/disable-2fa",
		RequireSession(http.HandlerFunc(auth.HandleDisableTwoFactor)))
	r.Mux.Handle("POST /api/auth/change-password",
		httpx.Chain(RequireSession(http.HandlerFunc(auth.HandleChangePassword)),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/update-profile",
		RequireSession(http.HandlerFunc(auth.HandleUpdateProfile)))

	r.Mux.Handle("POST /api/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(resets.HandleForgotPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/reset-password",
		httpx.Chain(http.HandlerFunc(resets.HandleResetPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerContent() {
	content := &ContentHandler{Content: r.ContentService}

	r.Mux.Handle("GET /api/skills", http.HandlerFunc(content.HandleListSkills))
	r.Mux.Handle("POST /api/skills",
		RequireSession(http.HandlerFunc(content.HandleCreateSkill)))
	r.Mux.Handle("PUT /api/skills/{id}",
		RequireSession(http.HandlerFunc(content.HandleUpdateSkill)))
	r.Mux.Handle("DELETE /api/skills/{id}",
		RequireSession(http.HandlerFunc(content.HandleDeleteSkill)))

	r.Mux.Handle("GET /api/services", http.HandlerFunc(content.HandleListServices))
	r.Mux.Handle("POST /api/services",
		RequireSession(http.HandlerFunc(content.HandleCreateService)))
	r.Mux.Handle("PUT /api/services/{id}",
		RequireSession(http.HandlerFunc(content.HandleUpdateService)))
	r.Mux.Handle("DELETE /api/services/{id}",
		RequireSession(http.HandlerFunc(content.HandleDeleteService)))

	r.Mux.Handle("GET /api/projects", http.HandlerFunc(content.HandleListProjects))
	r.Mux.Handle("GET /api/projects/slug/{slug}", http.HandlerFunc(content.HandleGetProjectBySlug))
	r.Mux.Handle("GET /api/projects/{id}", http.HandlerFunc(content.HandleGetProject))
	r.Mux.Handle("POST /api/projects",
		RequireSession(http.HandlerFunc(content.HandleCreateProject)))
	r.Mux.Handle("PUT /api/projects/{id}",
		RequireSession(http.HandlerFunc(content.HandleUpdateProject)))
	r.Mux.Handle("DELETE /api/projects/{id}",
		RequireSession(http.HandlerFunc(content.HandleDeleteProject)))

	r.Mux.Handle("GET /api/experiences", http.HandlerFunc(content.HandleListExperiences))
	r.Mux.Handle("POST /api/experiences",
		RequireSession(http.HandlerFunc(content.HandleCreateExperience)))
	r.Mux.Handle("PUT /api/experiences/{id}",
		RequireSession(http.HandlerFunc(content.HandleUpdateExperience)))
	r.Mux.Handle("DELETE /api/experiences/{id}",
		RequireSession(http.HandlerFunc(content.HandleDeleteExperience)))

	r.Mux.Handle("GET /api/blog", http.HandlerFunc(content.HandleListBlogPosts))
	r.Mux.Handle("GET /api/blog/slug/{slug}", http.HandlerFunc(content.HandleGetBlogPostBySlug))
	r.Mux.Handle("GET /api/blog/{id}", http.HandlerFunc(content.HandleGetBlogPost))
	r.Mux.Handle("POST /api/blog",
		RequireSession(http.HandlerFunc(content.HandleCreateBlogPost)))
	r.Mux.Handle("PUT /api/blog/{id}",
		RequireSession(http.HandlerFunc(content.HandleUpdateBlogPost)))
	r.Mux.Handle("DELETE /api/blog/{id}",
		RequireSession(http.HandlerFunc(content.HandleDeleteBlogPost)))
}

func (r *Router) registerContact() {
	contact := &ContactHandler{Contact: r.ContactService}

	r.Mux.Handle("POST /api/contact",
		httpx.Chain(http.HandlerFunc(contact.HandleSubmit),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/contact",
		RequireSession(http.HandlerFunc(contact.HandleList)))
}

func (r *Router) registerNewsletter() {
	newsletter := &NewsletterHandler{Newsletter: r.NewsletterService}

	r.Mux.Handle("POST /api/newsletter/subscribe",
		httpx.Chain(http.HandlerFunc(newsletter.HandleSubscribe),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/newsletter/unsubscribe", http.HandlerFunc(newsletter.HandleUnsubscribe))
	r.Mux.Handle("GET /api/newsletter/subscribers",
		RequireSession(http.HandlerFunc(newsletter.HandleListSubscribers)))
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
