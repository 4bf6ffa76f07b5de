package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"neobarber/internal/auth"
	"neobarber/internal/config"
	"neobarber/internal/db"
	"neobarber/internal/model"
	"neobarber/internal/repository"
	"neobarber/internal/service"
)

const (
	demoEmail    = "demo@neobarber.app"
	demoPassword = "demo1234"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Service{},
		&model.Client{},
		&model.Appointment{},
		&model.Task{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	clientRepo := repository.NewClientRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	if existing, err := userRepo.FindByEmail(ctx, demoEmail); err == nil && existing != nil {
		log.Printf("Demo barbershop already seeded (%s), nothing to do", demoEmail)
		return
	} else if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to check demo user: %v", err)
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, serviceRepo, jwtService)

	// Register creates the account plus its default service catalog.
	_, user, err := authService.Register(ctx, demoEmail, demoPassword, "Demo Owner", "NEOBARBER Demo")
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo barbershop %s", user.ID)

	clients := []*model.Client{
		{BarbershopID: user.ID, Name: "João Silva", Phone: "+55 11 91234-5678", Notes: "Prefere degradê baixo"},
		{BarbershopID: user.ID, Name: "Pedro Santos", Phone: "+55 11 99876-5432"},
		{BarbershopID: user.ID, Name: "Lucas Oliveira", Email: "lucas@example.com"},
	}
	for _, client := range clients {
		if err := clientRepo.Create(ctx, client); err != nil {
			log.Fatalf("Failed to create client %s: %v", client.Name, err)
		}
	}
	log.Printf("Created %d clients", len(clients))

	services, err := serviceRepo.List(ctx, user.ID)
	if err != nil || len(services) == 0 {
		log.Fatalf("Failed to load seeded services: %v", err)
	}

	appointments := []*model.Appointment{
		{
			BarbershopID: user.ID,
			ClientID:     clients[0].ID,
			ClientName:   clients[0].Name,
			ServiceID:    services[0].ID,
			ServiceName:  services[0].Name,
			Date:         "2025-01-10",
			Time:         "10:00",
			Price:        services[0].Price,
			BarberName:   "Demo Owner",
			Status:       model.AppointmentStatusConfirmed,
		},
		{
			BarbershopID: user.ID,
			ClientID:     clients[1].ID,
			ClientName:   clients[1].Name,
			ServiceID:    services[1].ID,
			ServiceName:  services[1].Name,
			Date:         "2025-01-10",
			Time:         "11:00",
			Price:        services[1].Price,
			Status:       model.AppointmentStatusConfirmed,
		},
	}
	for _, appointment := range appointments {
		if err := appointmentRepo.Create(ctx, appointment); err != nil {
			log.Fatalf("Failed to create appointment: %v", err)
		}
	}
	log.Printf("Created %d appointments", len(appointments))

	tasks := []*model.Task{
		{BarbershopID: user.ID, Title: "Comprar lâminas novas", Priority: model.TaskPriorityHigh},
		{BarbershopID: user.ID, Title: "Organizar agenda da semana", Priority: model.TaskPriorityNormal},
	}
	for _, task := range tasks {
		if err := taskRepo.Create(ctx, task); err != nil {
			log.Fatalf("Failed to create task: %v", err)
		}
	}
	log.Printf("Created %d tasks", len(tasks))

	log.Println("Seed completed")
}
