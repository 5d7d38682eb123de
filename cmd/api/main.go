package main

import (
	"fmt"
	"net/http"

	"github.com/mesai-app/mesai-backend-go/internal/config"
	appHTTP "github.com/mesai-app/mesai-backend-go/internal/handler/http"
	"github.com/mesai-app/mesai-backend-go/internal/pkg/database"
	"github.com/mesai-app/mesai-backend-go/internal/repository/postgresql"
	attendanceService "github.com/mesai-app/mesai-backend-go/internal/service/attendance"
	reportService "github.com/mesai-app/mesai-backend-go/internal/service/report"
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
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(cfg, attendanceHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
