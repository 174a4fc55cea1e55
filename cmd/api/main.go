package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"tenclub.in/app/internal/config"
	"tenclub.in/app/internal/gateway/phonepe"
	apphttp "tenclub.in/app/internal/http"
	"tenclub.in/app/internal/mailer"
	"tenclub.in/app/internal/modules/availability"
	"tenclub.in/app/internal/modules/calls"
	"tenclub.in/app/internal/modules/feedback"
	"tenclub.in/app/internal/modules/payments"
	"tenclub.in/app/internal/modules/trials"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.FromEnv()

	// Database connection. The server boots without one; intake endpoints
	// answer 503 and the payment transaction log is disabled.
	var db *gorm.DB
	if cfg.DBDSN != "" {
		var err error
		db, err = gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
	} else {
		logger.Warn("DB_DSN not set, running without a datastore")
	}

	if !cfg.PhonePe.Configured() {
		logger.Warn("phonepe gateway not configured, payment endpoints will fail")
	}

	gateway := phonepe.NewClient(cfg.PhonePe)
	paymentSvc := payments.NewService(db, gateway, cfg.PhonePe, cfg.PublicBaseURL)
	paymentSvc.SetLogger(logger)

	availabilityClient := availability.NewClient(cfg.Availability)

	trialSvc := trials.NewService(db, availabilityClient)
	trialSvc.SetLogger(logger)
	if cfg.SMTP.Configured() {
		trialSvc.SetMailer(mailer.NewSMTPMailer(cfg.SMTP), cfg.MailFrom, cfg.MailFromName)
	}

	r := apphttp.NewRouter(logger, apphttp.Deps{
		Payments:     paymentSvc,
		Availability: availabilityClient,
		Trials:       trialSvc,
		Feedback:     feedback.NewService(db),
		Calls:        calls.NewService(db),
	})

	logger.Info("listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
