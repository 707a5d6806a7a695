package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/WNVissie/BurgundyRoster/internal/config"
	"github.com/WNVissie/BurgundyRoster/internal/fixtures"
	appHTTP "github.com/WNVissie/BurgundyRoster/internal/handler/http"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/jwt"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/oauth"
	"github.com/WNVissie/BurgundyRoster/internal/repository/postgresql"
	analyticsService "github.com/WNVissie/BurgundyRoster/internal/service/analytics"
	serviceAuth "github.com/WNVissie/BurgundyRoster/internal/service/auth"
	employeeService "github.com/WNVissie/BurgundyRoster/internal/service/employee"
	exportService "github.com/WNVissie/BurgundyRoster/internal/service/export"
	leaveService "github.com/WNVissie/BurgundyRoster/internal/service/leave"
	"github.com/WNVissie/BurgundyRoster/internal/service/master"
	reportService "github.com/WNVissie/BurgundyRoster/internal/service/report"
	rosterService "github.com/WNVissie/BurgundyRoster/internal/service/roster"
	timesheetService "github.com/WNVissie/BurgundyRoster/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	skillRepo := postgresql.NewSkillRepository(db)
	areaRepo := postgresql.NewAreaRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	licenseRepo := postgresql.NewLicenseRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	rosterEntryRepo := postgresql.NewRosterEntryRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	activityLogRepo := postgresql.NewActivityLogRepository(db)

	err = fixtures.SeedDefaults(context.Background(), fixtures.Repositories{
		Shifts:       shiftRepo,
		Skills:       skillRepo,
		Areas:        areaRepo,
		Designations: designationRepo,
		Licenses:     licenseRepo,
	})
	if err != nil {
		fmt.Println("Error seeding defaults:", err)
		return
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := serviceAuth.NewAuthService(db, employeeRepo, JWTService, JWTRepository, GoogleService, activityLogRepo)
	employeeSvc := employeeService.NewService(db, employeeRepo, activityLogRepo)
	masterSvc := master.NewMasterService(skillRepo, areaRepo, designationRepo, licenseRepo)
	rosterSvc := rosterService.NewService(db, shiftRepo, rosterEntryRepo, employeeRepo, activityLogRepo)
	leaveSvc := leaveService.NewService(db, leaveRequestRepo, employeeRepo, shiftRepo, rosterEntryRepo, activityLogRepo)
	timesheetSvc := timesheetService.NewService(db, timesheetRepo, rosterEntryRepo, activityLogRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo, activityLogRepo)
	reportSvc := reportService.NewReportService(reportRepo, employeeRepo)
	exportSvc := exportService.NewExportService(employeeRepo, rosterEntryRepo, timesheetRepo, analyticsSvc)

	handlers := appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Master:    appHTTP.NewMasterHandler(masterSvc),
		Roster:    appHTTP.NewRosterHandler(rosterSvc),
		Leave:     appHTTP.NewLeaveHandler(leaveSvc),
		Timesheet: appHTTP.NewTimesheetHandler(timesheetSvc),
		Analytics: appHTTP.NewAnalyticsHandler(analyticsSvc),
		Report:    appHTTP.NewReportHandler(reportSvc),
		Export:    appHTTP.NewExportHandler(exportSvc),
	}

	router := appHTTP.NewRouter(JWTService, cfg.App.FrontendURL, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
