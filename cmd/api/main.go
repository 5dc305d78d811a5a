package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/hrms-lite/hrms-backend-go/internal/config"
	appHTTP "github.com/hrms-lite/hrms-backend-go/internal/handler/http"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-lite/hrms-backend-go/internal/service/attendance"
	dashboardService "github.com/hrms-lite/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/hrms-lite/hrms-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.Database.URL)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal("Error preparing schema: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, cfg.Attendance.PreserveID)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		employeeHandler,
		attendanceHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
