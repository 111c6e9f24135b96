package main

import (
	"fmt"
	"net/http"

	"github.com/khanyisa-hr/workforce-backend-go/internal/config"
	appHTTP "github.com/khanyisa-hr/workforce-backend-go/internal/handler/http"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/database"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/sse"
	"github.com/khanyisa-hr/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/khanyisa-hr/workforce-backend-go/internal/service/attendance"
	authService "github.com/khanyisa-hr/workforce-backend-go/internal/service/auth"
	holidayService "github.com/khanyisa-hr/workforce-backend-go/internal/service/holiday"
	leaveService "github.com/khanyisa-hr/workforce-backend-go/internal/service/leave"
	overtimeService "github.com/khanyisa-hr/workforce-backend-go/internal/service/overtime"
	payrollService "github.com/khanyisa-hr/workforce-backend-go/internal/service/payroll"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRequestRepo := postgresql.NewOvertimeRequestRepository(db)
	terminalRepo := postgresql.NewTerminalRepository(db)

	hub := sse.NewHub()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	calendar := holidayService.NewCalendarService()
	wageService := payrollService.NewWageService(calendar, employeeRepo, branchRepo)
	ledgerService := attendanceService.NewLedgerService(attendanceRepo, employeeRepo, branchRepo, wageService, hub)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, calendar, hub,
		leaveService.WithTxRunner(postgresql.RunInTx(db)))
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRequestRepo, employeeRepo, hub,
		overtimeService.WithTxRunner(postgresql.RunInTx(db)))
	authSvc := authService.NewAuthService(terminalRepo, JWTService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(ledgerService)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(calendar)
	payrollHandler := appHTTP.NewPayrollHandler(wageService)
	eventsHandler := appHTTP.NewEventsHandler(hub)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		overtimeHandler,
		holidayHandler,
		payrollHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
