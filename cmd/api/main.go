package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/retailops/timeclock-backend-go/internal/config"
	"github.com/retailops/timeclock-backend-go/internal/fixtures"
	appHTTP "github.com/retailops/timeclock-backend-go/internal/handler/http"
	"github.com/retailops/timeclock-backend-go/internal/pkg/database"
	"github.com/retailops/timeclock-backend-go/internal/repository/postgresql"
	dashboardService "github.com/retailops/timeclock-backend-go/internal/service/dashboard"
	employeeService "github.com/retailops/timeclock-backend-go/internal/service/employee"
	timeclockService "github.com/retailops/timeclock-backend-go/internal/service/timeclock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid TIMEZONE: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to apply schema: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	clockRecordRepo := postgresql.NewClockRecordRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	if err := fixtures.SeedDefaultEmployees(ctx, employeeRepo); err != nil {
		log.Fatal("Failed to seed employees: ", err)
	}

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, clockRecordRepo)
	timeclockSvc := timeclockService.NewTimeclockService(db, loc, clockRecordRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(loc, dashboardRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeclockHandler := appHTTP.NewTimeclockHandler(timeclockSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(cfg.App, employeeHandler, timeclockHandler, dashboardHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
