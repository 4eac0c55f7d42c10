package main

import (
	"context"
	"errors"
	"log"
	"os"

	"teamsync-be/internal/entity"
	"teamsync-be/internal/repository/contract"
	"teamsync-be/internal/repository/specification"
	"teamsync-be/internal/repository/unitofwork"
	"teamsync-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "teamsync123"

var demoStudents = []entity.User{
	{FullName: "Aarav Mehta", College: "Demo Institute of Technology", Email: "aarav@demo.teamsync", Roll: "DEMO-001",
		Skills: []string{"React", "TypeScript", "Tailwind"}, Domains: []string{"Web Development"}},
	{FullName: "Diya Sharma", College: "Demo Institute of Technology", Email: "diya@demo.teamsync", Roll: "DEMO-002",
		Skills: []string{"Go", "PostgreSQL", "Docker"}, Domains: []string{"Web Development", "Cloud"}},
	{FullName: "Kabir Rao", College: "Demo Institute of Technology", Email: "kabir@demo.teamsync", Roll: "DEMO-003",
		Skills: []string{"Figma", "UI Design"}, Domains: []string{"Design"}},
	{FullName: "Meera Iyer", College: "Demo Institute of Technology", Email: "meera@demo.teamsync", Roll: "DEMO-004",
		Skills: []string{"Python", "PyTorch", "Pandas"}, Domains: []string{"Machine Learning"}},
	{FullName: "Rohan Gupta", College: "Demo Institute of Technology", Email: "rohan@demo.teamsync", Roll: "DEMO-005",
		Skills: []string{"Selenium", "Jest", "Cypress"}, Domains: []string{"Testing", "Web Development"}},
	{FullName: "Sana Khan", College: "Demo Institute of Technology", Email: "sana@demo.teamsync", Roll: "DEMO-006",
		Skills: []string{"Kubernetes", "Terraform", "AWS"}, Domains: []string{"Cloud", "DevOps"}},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash demo password:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	users := uow.UserRepository()

	log.Println("Seeding demo students...")

	created := 0
	for _, s := range demoStudents {
		existing, err := users.FindOne(ctx, specification.ByEmailOrRoll{Email: s.Email, Roll: s.Roll})
		if err != nil {
			log.Fatalf("Error: lookup %s failed: %v", s.Email, err)
		}
		if existing != nil {
			log.Printf("Skipped: %s already exists", s.Email)
			continue
		}

		student := s
		student.Id = uuid.New()
		student.PasswordHash = string(hash)
		if err := users.Create(ctx, &student); err != nil {
			if errors.Is(err, contract.ErrDuplicate) {
				log.Printf("Skipped: %s already exists", s.Email)
				continue
			}
			log.Fatalf("Error: create %s failed: %v", s.Email, err)
		}
		created++
		log.Printf("Created: %s (%s)", student.FullName, student.Email)
	}

	log.Printf("Seeding completed: %d created, password %q", created, demoPassword)
}
