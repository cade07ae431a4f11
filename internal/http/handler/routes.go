package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"gauzy/internal/service"
	"gauzy/internal/store"
)

// Deps are the collaborators the routes need.
type Deps struct {
	DB            *sql.DB
	Organizations service.OrganizationService
	Users         service.UserService
	TimeOff       service.TimeOffService
	Selection     service.SelectionService
	Sessions      *store.Registry
	Translator    Translator
	Log           logrus.FieldLogger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	tr := d.Translator

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	app.Get("/currencies", ListCurrencies(d.Organizations))

	orgs := app.Group("/organizations")
	orgs.Get("/", ListOrganizations(d.Organizations, tr))
	orgs.Post("/", CreateOrganization(d.Organizations, tr))
	orgs.Get("/:id", GetOrganization(d.Organizations, tr))
	orgs.Put("/:id", UpdateOrganization(d.Organizations, tr))
	orgs.Delete("/:id", DeleteOrganization(d.Organizations, tr))
	orgs.Post("/:id/image", UploadOrganizationImage(d.Organizations, tr))
	orgs.Get("/:id/users", ListOrganizationUsers(d.Users, tr))
	orgs.Get("/:id/users/export", ExportOrganizationUsers(d.Users, tr))
	orgs.Post("/:id/users", AddOrganizationUser(d.Users, tr))
	orgs.Get("/:id/invites", ListInvites(d.Users, tr))

	app.Put("/user-organizations/:id/inactive", SetUserInactive(d.Users, tr))
	app.Post("/invites", CreateInvites(d.Users, tr))

	app.Get("/time-off", ListTimeOff(d.TimeOff, tr))
	app.Post("/time-off", RequestTimeOff(d.TimeOff, tr))
	app.Post("/time-off/holidays", AddHolidays(d.TimeOff, tr))
	app.Get("/time-off/stream", StreamTimeOff(d.TimeOff, d.Sessions, d.Log))

	app.Get("/selection", GetSelection(d.Sessions))
	app.Put("/selection", PutSelection(d.Selection, d.Sessions, tr))

	app.Get("/header", GetHeader(d.Sessions, tr))
}
