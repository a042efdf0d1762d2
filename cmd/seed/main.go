package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"labbooking/internal/database"
	"labbooking/internal/domain"
	"labbooking/internal/modules/auth"
	"labbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("LAB_DB_DSN")
	if dsn == "" {
		dsn = "lab.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("bcrypt failed:", err)
		}
		return string(h)
	}

	users := []domain.User{
		{
			Name:         "Nguyễn Văn A",
			Email:        "student@dnu.edu.vn",
			PasswordHash: hash("student123"),
			Role:         domain.RoleStudent,
			Department:   "Khoa Sinh học",
			Status:       domain.UserActive,
			StudentID:    "2024001234",
		},
		{
			Name:         "Trần Thị B",
			Email:        "admin@dnu.edu.vn",
			PasswordHash: hash("admin123"),
			Role:         domain.RoleAdmin,
			Department:   "Quản trị",
			Status:       domain.UserActive,
		},
		{
			Name:         "Lê Văn C",
			Email:        "student2@dnu.edu.vn",
			PasswordHash: hash(auth.DefaultPassword),
			Role:         domain.RoleStudent,
			Department:   "Khoa Vật lý",
			Status:       domain.UserActive,
			StudentID:    "2024001235",
		},
		{
			Name:         "Phạm Thị D",
			Email:        "student3@dnu.edu.vn",
			PasswordHash: hash(auth.DefaultPassword),
			Role:         domain.RoleStudent,
			Department:   "Khoa Hóa học",
			Status:       domain.UserActive,
			StudentID:    "2024001236",
		},
		{
			Name:         "Hoàng Văn E",
			Email:        "student4@dnu.edu.vn",
			PasswordHash: hash(auth.DefaultPassword),
			Role:         domain.RoleStudent,
			Department:   "Khoa Công nghệ thông tin",
			Status:       domain.UserActive,
			StudentID:    "2024001237",
		},
	}

	userRepo := repository.NewUserRepository(db)
	ctx := context.Background()
	for i := range users {
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			log.Fatal("user seed failed:", err)
		}
	}

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")

	type item struct {
		name, department, room, description string
		quantity, available                 int
	}
	items := []item{
		{"Máy ly tâm Centrifuge CF-15", "Khoa Sinh học", "Lab B101", "Máy ly tâm tốc độ cao cho tách protein và DNA", 2, 2},
		{"Máy PCR Thermal Cycler", "Khoa Sinh học", "Lab B102", "Máy khuếch đại DNA bằng phản ứng chuỗi polymerase", 1, 1},
		{"Tủ ấm CO2 Incubator", "Khoa Sinh học", "Lab B103", "Tủ ấm nuôi cấy tế bào với môi trường CO2", 1, 1},
		{"Kính hiển vi điện tử SEM-2000", "Khoa Vật lý", "Lab P205", "Kính hiển vi điện tử quét độ phân giải cao", 1, 1},
		{"Máy đo tính chất vật liệu UTM", "Khoa Vật lý", "Lab P206", "Máy kiểm tra độ bền kéo và nén vật liệu", 2, 2},
		{"Máy quang phổ Raman", "Khoa Vật lý", "Lab P207", "Máy phân tích cấu trúc phân tử bằng tán xạ Raman", 1, 1},
		{"Máy quang phổ UV-Vis", "Khoa Hóa học", "Lab C301", "Máy đo quang phổ tử ngoại-khả kiến", 2, 2},
		{"Máy sắc ký khí GC-MS", "Khoa Hóa học", "Lab C302", "Máy sắc ký khí kết hợp khối phổ", 1, 1},
		{"Máy chuẩn độ tự động", "Khoa Hóa học", "Lab C303", "Máy chuẩn độ acid-base tự động", 2, 2},
		{"Máy chủ GPU Tesla V100", "Khoa Công nghệ thông tin", "Lab IT401", "Máy chủ GPU cho machine learning và AI", 1, 1},
		{"Thiết bị mạng Cisco Router", "Khoa Công nghệ thông tin", "Lab IT402", "Router chuyên nghiệp cho thực hành mạng", 2, 2},
		{"Máy in 3D Ultimaker", "Khoa Công nghệ thông tin", "Lab IT403", "Máy in 3D độ chính xác cao", 1, 1},
	}

	equipmentRepo := repository.NewEquipmentRepository(db)
	equipment := make([]domain.Equipment, 0, len(items))
	for _, it := range items {
		e := domain.Equipment{
			Name:        it.name,
			Department:  it.department,
			Room:        it.room,
			Description: it.description,
			Quantity:    it.quantity,
			Available:   it.available,
		}
		e.DeriveStatus()
		if err := equipmentRepo.Create(ctx, &e); err != nil {
			log.Fatal("equipment seed failed:", err)
		}
		equipment = append(equipment, e)
	}

	// ================== BOOKINGS ==================
	// Both go through the reservation path so the registry counts stay
	// consistent with the ledger.
	log.Println("Creating bookings...")

	bookingRepo := repository.NewBookingRepository(db)

	demo := []domain.Booking{
		{
			EquipmentID:  equipment[0].ID,
			Date:         "2024-01-15",
			PickupTime:   "14:00",
			ReturnTime:   "16:00",
			StudentName:  "Nguyễn Văn A",
			StudentEmail: "student@dnu.edu.vn",
			Purpose:      "Thí nghiệm tách protein",
		},
		{
			EquipmentID:  equipment[3].ID,
			Date:         "2024-01-16",
			PickupTime:   "09:00",
			ReturnTime:   "11:00",
			StudentName:  "Lê Văn C",
			StudentEmail: "student2@dnu.edu.vn",
			Purpose:      "Quan sát cấu trúc vật liệu nano",
		},
	}
	for i := range demo {
		if err := bookingRepo.CreateReserving(ctx, &demo[i]); err != nil {
			log.Fatal("booking seed failed:", err)
		}
	}

	// The first demo booking ships pre-approved.
	if _, err := bookingRepo.UpdateStatus(ctx, demo[0].ID, domain.BookingPending, domain.BookingApproved); err != nil {
		log.Fatal("booking seed failed:", err)
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin:   admin@dnu.edu.vn / admin123")
	log.Println("Student: student@dnu.edu.vn / student123")
	log.Printf("Others:  student2..4@dnu.edu.vn / %s\n", auth.DefaultPassword)
}
