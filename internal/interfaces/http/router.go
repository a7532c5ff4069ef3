package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/straydog-api/internal/application/analytics"
	"github.com/jhoicas/straydog-api/internal/application/auth"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/validation"
)

// RouterDeps dependencies of the API routes.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	DogReportUC    *usecase.DogReportUseCase
	AdoptionUC     *usecase.AdoptionUseCase
	DonationUC     *usecase.DonationUseCase
	VolunteerUC    *usecase.VolunteerUseCase
	TaskUC         *usecase.VolunteerTaskUseCase
	VaccinationUC  *usecase.VaccinationUseCase
	ForumUC        *usecase.ForumUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	Validator      *validation.Validator
	JWTSecret      string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	v := func(set validation.RuleSet) fiber.Handler { return Validate(deps.Validator, set) }
	authed := AuthMiddleware(deps.JWTSecret)
	user := LoadUser(deps.AuthUC)
	staff := RequireRole(entity.RoleAdmin, entity.RoleVolunteer)
	admin := RequireRole(entity.RoleAdmin)
	page := v(PaginationRules)
	id := v(IDRules)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", v(RegisterRules), authHandler.Register)
	authGroup.Post("/login", v(LoginRules), authHandler.Login)
	authGroup.Get("/me", authed, user, authHandler.Me)

	// Dog reports: reading is public
	reports := NewDogReportHandler(deps.DogReportUC)
	rg := api.Group("/dog-reports")
	rg.Get("/", page, reports.List)
	rg.Get("/:id", id, reports.Get)
	rg.Post("/", authed, v(CreateDogReportRules), reports.Create)
	rg.Put("/:id", authed, id, v(UpdateDogReportRules), reports.Update)
	rg.Delete("/:id", authed, staff, id, reports.Delete)
	rg.Patch("/:id/assign", authed, staff, id, v(AssignVolunteerRules), reports.Assign)
	rg.Post("/:id/notes", authed, user, id, v(ContentRules), reports.AddNote)

	// Adoptions
	adoptions := NewAdoptionHandler(deps.AdoptionUC)
	ag := api.Group("/adoptions")
	ag.Get("/", page, adoptions.List)
	ag.Get("/:id", id, adoptions.Get)
	ag.Post("/", authed, staff, v(CreateAdoptionDogRules), adoptions.Create)
	ag.Put("/:id", authed, staff, id, v(UpdateAdoptionDogRules), adoptions.Update)
	ag.Patch("/:id/status", authed, admin, id, v(AdoptionStatusRules), adoptions.UpdateStatus)
	ag.Delete("/:id", authed, admin, id, adoptions.Delete)

	// Donations: anyone may donate, a token only links the donor
	donations := NewDonationHandler(deps.DonationUC)
	dg := api.Group("/donations")
	dg.Post("/", OptionalAuth(deps.JWTSecret), v(CreateDonationRules), donations.Create)
	dg.Get("/", authed, admin, page, donations.List)
	dg.Get("/stats", authed, admin, donations.Stats)
	dg.Patch("/:id/status", authed, admin, id, v(DonationStatusRules), donations.UpdateStatus)
	dg.Get("/:id/receipt", authed, id, donations.Receipt)

	// Volunteers
	volunteers := NewVolunteerHandler(deps.VolunteerUC)
	vg := api.Group("/volunteers")
	vg.Get("/", page, volunteers.List)
	vg.Post("/register", authed, v(VolunteerRegistrationRules), volunteers.Register)
	vg.Get("/user/:userId", authed, v(UserIDRules), volunteers.GetByUser)
	vg.Get("/:id", id, volunteers.Get)
	vg.Patch("/:id/status", authed, admin, id, v(VolunteerStatusRules), volunteers.UpdateStatus)

	// Volunteer tasks: fixed paths before /:id
	tasks := NewVolunteerTaskHandler(deps.TaskUC)
	tg := api.Group("/volunteer-tasks", authed)
	tg.Get("/", page, tasks.List)
	tg.Get("/my-tasks", page, tasks.Mine)
	tg.Get("/volunteer/:volunteerId", v(VolunteerIDRules), page, tasks.ByVolunteer)
	tg.Get("/:id", id, tasks.Get)
	tg.Post("/", staff, v(CreateVolunteerTaskRules), tasks.Create)
	tg.Put("/:id", staff, id, v(UpdateVolunteerTaskRules), tasks.Update)
	tg.Patch("/:id/status", staff, id, v(TaskStatusRules), tasks.UpdateStatus)
	tg.Delete("/:id", admin, id, tasks.Delete)

	// Vaccinations: reading is public
	vaccinations := NewVaccinationHandler(deps.VaccinationUC)
	xg := api.Group("/vaccinations")
	xg.Get("/", page, vaccinations.List)
	xg.Get("/:id", id, vaccinations.Get)
	xg.Post("/", authed, staff, v(CreateVaccinationRules), vaccinations.Create)
	xg.Post("/:id/records", authed, staff, id, v(VaccinationRecordRules), vaccinations.AddRecord)
	xg.Delete("/:id", authed, admin, id, vaccinations.Delete)

	// Forum
	forum := NewForumHandler(deps.ForumUC)
	fg := api.Group("/forum")
	fg.Get("/", page, forum.List)
	fg.Get("/:id", id, forum.Get)
	fg.Post("/", authed, user, v(CreateForumPostRules), forum.Create)
	fg.Post("/:id/comments", authed, user, id, v(ContentRules), forum.Comment)

	// Notifications
	notifications := NewNotificationHandler(deps.NotificationUC)
	ng := api.Group("/notifications", authed)
	ng.Get("/", page, notifications.List)
	ng.Get("/unread-count", notifications.UnreadCount)
	ng.Patch("/read-all", notifications.MarkAllRead)
	ng.Patch("/:id/read", id, notifications.MarkRead)

	// Dashboard
	dashboard := NewDashboardHandler(deps.DashboardUC)
	db := api.Group("/dashboard", authed)
	db.Get("/stats", dashboard.Stats)
	db.Get("/activity", dashboard.Activity)
	db.Get("/charts/reports", dashboard.ReportChart)
}
