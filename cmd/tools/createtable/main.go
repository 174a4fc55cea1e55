package main

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS payment_transactions (
	  merchant_transaction_id VARCHAR(64) NOT NULL,
	  merchant_user_id VARCHAR(64) NOT NULL DEFAULT '',
	  amount_paise BIGINT NOT NULL,
	  mobile_number VARCHAR(32) NULL,
	  status VARCHAR(32) NOT NULL,
	  gateway_code VARCHAR(64) NULL,
	  raw_response JSON NULL,
	  resolved_at DATETIME(3) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (merchant_transaction_id),
	  KEY ix_payment_transactions_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS trial_requests (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  phone VARCHAR(32) NOT NULL,
	  location VARCHAR(255) NOT NULL,
	  location_slug VARCHAR(128) NOT NULL,
	  preferred_date VARCHAR(10) NOT NULL,
	  duration_nights INT NOT NULL DEFAULT 1,
	  guest_count INT NOT NULL,
	  special_requests TEXT NULL,
	  request_status VARCHAR(16) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_trial_requests_location_slug (location_slug)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS feedback (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  phone VARCHAR(32) NOT NULL,
	  feelings TEXT NOT NULL,
	  highlights TEXT NOT NULL,
	  stay_location VARCHAR(255) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS scheduled_calls (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  phone VARCHAR(32) NOT NULL,
	  email VARCHAR(255) NULL,
	  scheduled_date VARCHAR(10) NOT NULL,
	  scheduled_time VARCHAR(8) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✓ payment_transactions table created successfully")
	log.Println("✓ trial_requests table created successfully")
	log.Println("✓ feedback table created successfully")
	log.Println("✓ scheduled_calls table created successfully")
}
