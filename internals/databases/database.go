package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gympro_backend/internals/configs"
	attendanceModel "gympro_backend/internals/features/attendance/model"
	authModel "gympro_backend/internals/features/auth/model"
	classModel "gympro_backend/internals/features/classes/model"
	gymModel "gympro_backend/internals/features/gyms/model"
	notificationModel "gympro_backend/internals/features/notifications/model"
	paymentModel "gympro_backend/internals/features/payments/model"
	studentModel "gympro_backend/internals/features/students/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=gympro&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // safe behind PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync at startup. Unique indexes that enforce
// the per-gym invariants (member_id, card_number, class name) live on the
// model tags.
func Migrate() {
	err := DB.AutoMigrate(
		&gymModel.GymModel{},
		&authModel.GymAdminModel{},
		&studentModel.StudentModel{},
		&classModel.ClassModel{},
		&classModel.ScheduleModel{},
		&attendanceModel.AttendanceLogModel{},
		&paymentModel.PaymentModel{},
		&notificationModel.NotificationModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] auto migration failed: %v", err)
	}
	log.Println("[INFO] migrations applied.")
}

func WarmUpQueries() {
	// light queries so the pool is filled and ready before real traffic
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
		DB.Exec("SELECT 1")
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
