// Package httpx mounts the HTTP surface: auth, templates, trackers, entries,
// sharing, overlays, insights, reminders and share links.
package httpx

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"tracker-studio-api/internal/config"
	"tracker-studio-api/internal/esx"
	"tracker-studio-api/internal/httpx/auth"
	"tracker-studio-api/internal/httpx/entries"
	"tracker-studio-api/internal/httpx/groups"
	insightsapi "tracker-studio-api/internal/httpx/insights"
	"tracker-studio-api/internal/httpx/mw"
	"tracker-studio-api/internal/httpx/overlays"
	"tracker-studio-api/internal/httpx/reminders"
	"tracker-studio-api/internal/httpx/sharelinks"
	"tracker-studio-api/internal/httpx/shares"
	"tracker-studio-api/internal/httpx/templates"
	"tracker-studio-api/internal/httpx/trackers"
	"tracker-studio-api/internal/identity"
	"tracker-studio-api/internal/insights"
	"tracker-studio-api/internal/redisx"
	"tracker-studio-api/internal/reminder"
	"tracker-studio-api/internal/sharelink"
	"tracker-studio-api/internal/tracker"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	Cfg       *config.Config
	Accounts  identity.Store
	Groups    identity.GroupStore
	Trackers  *tracker.Service
	Insights  *insights.Service
	Reminders *reminder.Service
	Links     *sharelink.Service
	ES        *esx.Client
	RDB       *redisx.Client
}

// Register mounts all routes on the app.
func Register(app *fiber.App, d *Deps) {
	app.Get("/health", HealthHandler)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	parse := func(token string) (string, string, []string, string, error) {
		claims, err := auth.ParseAndValidate(d.Cfg, token)
		if err != nil {
			return "", "", nil, "", err
		}
		return claims.Subject, claims.Kind, claims.Roles, claims.DeviceID, nil
	}
	app.Use(mw.JWTMiddlewareDynamic(parse))

	api := app.Group("/api/v1")

	// auth: rate-limited, no login required
	authLimit := mw.RateLimitDefault(d.RDB, 60, 30)
	ag := api.Group("/auth", authLimit)
	ag.Post("/register", auth.RegisterHandler(d.Cfg, d.Accounts))
	ag.Post("/login", auth.LoginHandler(d.Cfg, d.Accounts))
	ag.Post("/refresh", auth.RefreshHandler(d.Cfg, d.Accounts))
	ag.Post("/logout", auth.LogoutHandler())
	ag.Get("/me", auth.MeHandler(d.Accounts))

	// share-link preview is public: the token is the authorization
	api.Get("/links/:token/preview", sharelinks.PreviewHandler(d.Links))

	v1 := api.Group("", mw.RequireUser())

	tg := v1.Group("/templates")
	tg.Get("", templates.ListHandler(d.Trackers))
	tg.Post("", templates.CreateHandler(d.Trackers))
	tg.Get("/:id", templates.GetHandler(d.Trackers))
	tg.Patch("/:id", templates.UpdateHandler(d.Trackers))
	tg.Delete("/:id", templates.ArchiveHandler(d.Trackers))
	tg.Post("/:id/duplicate", templates.DuplicateHandler(d.Trackers))
	tg.Post("/:id/promote", templates.PromoteHandler(d.Trackers))
	tg.Post("/:id/lock", templates.SetLockHandler(d.Trackers))
	tg.Post("/:id/links", sharelinks.CreateHandler(d.Links))
	tg.Get("/:id/links", sharelinks.ListHandler(d.Links))

	v1.Delete("/links/:id", sharelinks.RevokeHandler(d.Links))
	v1.Post("/links/:token/import", sharelinks.ImportHandler(d.Links))

	trg := v1.Group("/trackers")
	trg.Get("", trackers.ListHandler(d.Trackers))
	trg.Post("", trackers.CreateHandler(d.Trackers))
	trg.Put("/reorder", trackers.ReorderHandler(d.Trackers))
	trg.Get("/:id", trackers.GetHandler(d.Trackers))
	trg.Patch("/:id", trackers.UpdateHandler(d.Trackers))
	trg.Delete("/:id", trackers.ArchiveHandler(d.Trackers))
	trg.Get("/:id/permissions", trackers.PermissionsHandler(d.Trackers))
	trg.Post("/:id/entries", entries.CreateHandler(d.Trackers))
	trg.Get("/:id/entries", entries.ListHandler(d.Trackers))
	trg.Get("/:id/insights", insightsapi.SummaryHandler(d.Insights))

	v1.Get("/entries/:id", entries.GetHandler(d.Trackers))
	v1.Patch("/entries/:id", entries.UpdateHandler(d.Trackers))

	sg := v1.Group("/shares")
	sg.Post("/grants", shares.CreateGrantHandler(d.Trackers))
	sg.Get("/grants", shares.ListGrantsHandler(d.Trackers))
	sg.Delete("/grants/:id", shares.RevokeGrantHandler(d.Trackers))
	sg.Post("/observations", shares.CreateObservationHandler(d.Trackers))
	sg.Get("/observations", shares.ListObservationsHandler(d.Trackers))
	sg.Delete("/observations/:id", shares.RevokeObservationHandler(d.Trackers))

	og := v1.Group("/overlays")
	og.Post("/events", overlays.CreateEventHandler(d.Trackers))
	og.Get("/events", overlays.ListEventsHandler(d.Trackers))
	og.Delete("/events/:id", overlays.DeleteEventHandler(d.Trackers))
	og.Get("/interpretations/search", overlays.SearchInterpretationsHandler(d.ES))
	og.Post("/interpretations", overlays.CreateInterpretationHandler(d.Trackers, d.ES))
	og.Get("/interpretations", overlays.ListInterpretationsHandler(d.Trackers))
	og.Patch("/interpretations/:id", overlays.UpdateInterpretationHandler(d.Trackers, d.ES))
	og.Delete("/interpretations/:id", overlays.DeleteInterpretationHandler(d.Trackers, d.ES))

	rg := v1.Group("/reminders")
	rg.Post("", reminders.CreateHandler(d.Reminders))
	rg.Get("", reminders.ListHandler(d.Reminders))
	rg.Patch("/:id", reminders.UpdateHandler(d.Reminders))
	rg.Delete("/:id", reminders.DeleteHandler(d.Reminders))

	gg := v1.Group("/groups")
	gg.Post("", groups.CreateHandler(d.Groups))
	gg.Post("/:id/members/:user_id", groups.AddMemberHandler(d.Groups))
	gg.Delete("/:id/members/:user_id", groups.RemoveMemberHandler(d.Groups))
	gg.Get("/:id/members", groups.ListMembersHandler(d.Groups))
}
