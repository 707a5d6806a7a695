package http

import (
	"log/slog"
	"os"

	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/handler/http/middleware"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Master    MasterHandler
	Roster    RosterHandler
	Leave     LeaveHandler
	Timesheet TimesheetHandler
	Analytics AnalyticsHandler
	Report    ReportHandler
	Export    ExportHandler
}

func NewRouter(JWTService jwt.Service, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "burgundy-roster"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(employee.PermissionEmployeeViewAll)).Get("/", h.Employee.List)
				r.With(middleware.RequirePermission(employee.PermissionEmployeeViewAll)).Get("/{id}", h.Employee.Get)
				r.With(middleware.RequirePermission(employee.PermissionLeaveViewAll)).Get("/{id}/leave-balance", h.Leave.GetBalance)
				r.With(middleware.RequirePermission(employee.PermissionReportsView)).Get("/{id}/history", h.Report.EmployeeHistory)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
					r.Post("/{id}/skills", h.Employee.AssignSkill)
					r.Delete("/{id}/skills/{skillID}", h.Employee.RemoveSkill)
					r.Post("/{id}/licenses", h.Employee.AssignLicense)
					r.Delete("/{id}/licenses/{licenseID}", h.Employee.RemoveLicense)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/skills", h.Master.ListSkills)
				r.Get("/skills/{id}", h.Master.GetSkill)
				r.Get("/areas", h.Master.ListAreas)
				r.Get("/areas/{id}", h.Master.GetArea)
				r.Get("/designations", h.Master.ListDesignations)
				r.Get("/designations/{id}", h.Master.GetDesignation)
				r.Get("/licenses", h.Master.ListLicenses)
				r.Get("/licenses/{id}", h.Master.GetLicense)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionMasterManage))
					r.Post("/skills", h.Master.CreateSkill)
					r.Put("/skills/{id}", h.Master.UpdateSkill)
					r.Delete("/skills/{id}", h.Master.DeleteSkill)
					r.Post("/areas", h.Master.CreateArea)
					r.Put("/areas/{id}", h.Master.UpdateArea)
					r.Delete("/areas/{id}", h.Master.DeleteArea)
					r.Post("/designations", h.Master.CreateDesignation)
					r.Put("/designations/{id}", h.Master.UpdateDesignation)
					r.Delete("/designations/{id}", h.Master.DeleteDesignation)
					r.Post("/licenses", h.Master.CreateLicense)
					r.Put("/licenses/{id}", h.Master.UpdateLicense)
					r.Delete("/licenses/{id}", h.Master.DeleteLicense)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Roster.ListShifts)
				r.Get("/{id}", h.Roster.GetShift)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionRosterManage))
					r.Post("/", h.Roster.CreateShift)
					r.Put("/{id}", h.Roster.UpdateShift)
					r.Delete("/{id}", h.Roster.DeleteShift)
				})
			})

			r.Route("/roster", func(r chi.Router) {
				r.With(middleware.RequirePermission(employee.PermissionRosterViewAll)).Get("/", h.Roster.ListEntries)
				r.Get("/{id}", h.Roster.GetEntry)
				r.With(middleware.RequirePermission(employee.PermissionRosterAccept)).Post("/{id}/accept", h.Roster.AcceptEntry)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionRosterManage))
					r.Post("/", h.Roster.CreateEntry)
					r.Delete("/{id}", h.Roster.DeleteEntry)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionRosterApprove))
					r.Post("/{id}/approve", h.Roster.ApproveEntry)
					r.Post("/{id}/reject", h.Roster.RejectEntry)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.With(middleware.RequirePermission(employee.PermissionLeaveCreate)).Post("/", h.Leave.Submit)
				r.With(middleware.RequirePermission(employee.PermissionLeaveViewAll)).Get("/", h.Leave.List)
				r.Get("/my", h.Leave.ListMy)
				r.Get("/my/balance", h.Leave.GetMyBalance)
				r.Get("/{id}", h.Leave.Get)
				r.Delete("/{id}", h.Leave.Delete)

				// approve, reject and authorise; permissions are staged
				// per action inside the workflow.
				r.With(middleware.RequirePermission(employee.PermissionLeaveApprove)).Post("/{id}/transition", h.Leave.Transition)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.With(middleware.RequirePermission(employee.PermissionTimesheetGenerate)).Post("/generate", h.Timesheet.Generate)
				r.With(middleware.RequirePermission(employee.PermissionTimesheetViewAll)).Get("/", h.Timesheet.List)
				r.Get("/my", h.Timesheet.ListMy)
				r.Get("/{id}", h.Timesheet.Get)
				r.With(middleware.RequirePermission(employee.PermissionTimesheetAccept)).Post("/{id}/accept", h.Timesheet.Accept)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionTimesheetApprove))
					r.Post("/{id}/approve", h.Timesheet.Approve)
					r.Post("/{id}/reject", h.Timesheet.Reject)
				})
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Use(middleware.RequirePermission(employee.PermissionAnalyticsView))
				r.Get("/dashboard", h.Analytics.Dashboard)
				r.Get("/skills", h.Analytics.SkillDistribution)
				r.Get("/leave-types", h.Analytics.LeaveTypeDistribution)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(employee.PermissionReportsView))
				r.Post("/employee-search", h.Report.EmployeeSearch)
				r.Get("/shift-acceptance", h.Report.ShiftAcceptance)
			})

			r.Route("/export", func(r chi.Router) {
				r.Use(middleware.RequirePermission(employee.PermissionExportRun))
				r.Get("/employees", h.Export.Employees)
				r.Get("/roster", h.Export.Roster)
				r.Get("/timesheets", h.Export.Timesheets)
				r.Get("/analytics", h.Export.AnalyticsSummary)
			})
		})
	})
	return r
}
