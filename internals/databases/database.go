package databases

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"semillero_backend/internals/configs"
	announcementModel "semillero_backend/internals/features/announcements/model"
	assignmentModel "semillero_backend/internals/features/assignments/model"
	courseModel "semillero_backend/internals/features/courses/model"
	enrollmentModel "semillero_backend/internals/features/enrollments/model"
	notificationModel "semillero_backend/internals/features/notifications/model"
	userModel "semillero_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := configs.DatabaseDSN()
	if dsn == "" {
		log.Fatal("❌ DATABASE_URL no está configurado")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // evita cache de prepared statements
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Falló la conexión a la base de datos: %v", err)
	}

	DB = db
	log.Println("✅ Base de datos conectada.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] No se pudo obtener el pool: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}

// MigrateAll crea el esquema de forma declarativa e idempotente al arrancar.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&enrollmentModel.EnrollmentModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.SubmissionModel{},
		&announcementModel.AnnouncementModel{},
		&notificationModel.NotificationModel{},
	)
}
