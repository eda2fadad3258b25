package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"makeupstudio/internal/database"
	"makeupstudio/internal/domain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "makeupstudio.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM review_invites")
	db.Exec("DELETE FROM appointment_items")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM blocked_slots")
	db.Exec("DELETE FROM complaints")
	db.Exec("DELETE FROM transport_costs")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM pages")
	db.Exec("DELETE FROM users")

	// ================== ADMIN ==================
	log.Println("Creating admin user...")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	adminHash, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@makeupstudio.pe",
		PasswordHash: string(adminHash),
		Name:         "Administradora",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@makeupstudio.pe")

	// ================== SERVICES ==================
	log.Println("Creating service catalog...")
	services := []domain.Service{
		{
			Name:        "Maquillaje Social - Estilo Natural",
			Description: "Maquillaje para eventos sociales con acabado natural y luminoso.",
			Price:       200,
			Duration:    90,
			Category:    domain.CategorySocial,
			IsActive:    true,
		},
		{
			Name:        "Maquillaje Social - Glam",
			Description: "Look intenso de noche con delineado marcado y pestañas postizas.",
			Price:       250,
			Duration:    100,
			Category:    domain.CategorySocial,
			IsActive:    true,
		},
		{
			Name:        "Maquillaje de Novia - Clásico",
			Description: "Incluye prueba previa, maquillaje de larga duración y retoque.",
			Price:       550,
			Duration:    150,
			Category:    domain.CategoryBridal,
			IsActive:    true,
		},
		{
			Name:        "Maquillaje de Novia - Premium",
			Description: "Prueba previa, aerógrafo, pestañas de seda y kit de retoque.",
			Price:       750,
			Duration:    180,
			Category:    domain.CategoryBridal,
			IsActive:    true,
		},
		{
			Name:        "Maquillaje para Piel Madura",
			Description: "Técnicas y productos específicos para pieles maduras.",
			Price:       230,
			Duration:    100,
			Category:    domain.CategoryMatureSkin,
			IsActive:    true,
		},
		{
			Name:        "Peinado Profesional",
			Description: "Ondas, recogidos o semirecogidos según la ocasión.",
			Price:       120,
			Duration:    60,
			Category:    domain.CategoryHairstyle,
			IsActive:    true,
		},
		{
			Name:        "Clase de Automaquillaje",
			Description: "Sesión personalizada para aprender a maquillarse.",
			Price:       180,
			Duration:    120,
			Category:    domain.CategoryOther,
			IsActive:    true,
		},
	}
	for i := range services {
		db.Create(&services[i])
	}
	log.Printf("Created %d services", len(services))

	// ================== TRANSPORT COSTS ==================
	log.Println("Creating transport cost table...")
	districts := []domain.TransportCost{
		{District: "Miraflores", Cost: 30, IsActive: true},
		{District: "San Isidro", Cost: 30, IsActive: true},
		{District: "Barranco", Cost: 35, IsActive: true},
		{District: "Surco", Cost: 40, IsActive: true},
		{District: "La Molina", Cost: 50, IsActive: true},
		{District: "San Borja", Cost: 35, IsActive: true},
		{District: "Jesús María", Cost: 30, IsActive: true},
		{District: "Lince", Cost: 30, IsActive: true},
		{District: "Magdalena", Cost: 35, IsActive: true},
		{District: "Pueblo Libre", Cost: 35, IsActive: true},
		{District: "San Miguel", Cost: 40, IsActive: true},
		{District: "Callao", Cost: 55, IsActive: false, Notes: "Coordinar previamente por la distancia"},
	}
	for i := range districts {
		db.Create(&districts[i])
	}
	log.Printf("Created %d districts", len(districts))

	// ================== PAGES ==================
	log.Println("Creating marketing pages...")
	pages := []domain.Page{
		{
			Slug:        "sobre-mi",
			Title:       "Sobre Mí",
			Body:        "Maquilladora profesional con más de 10 años de experiencia en novias y eventos sociales en Lima.",
			Published:   true,
		},
		{
			Slug:        "preguntas-frecuentes",
			Title:       "Preguntas Frecuentes",
			Body:        "¿Atienden a domicilio? Sí, el costo de movilidad depende del distrito. ¿Hacen prueba de novia? Sí, incluida en los paquetes de novia.",
			Published:   true,
		},
		{
			Slug:        "politicas",
			Title:       "Políticas de Reserva",
			Body:        "Las citas se confirman con un adelanto del 50%. Cancelaciones con menos de 48 horas no son reembolsables.",
			Published:   true,
		},
	}
	for i := range pages {
		db.Create(&pages[i])
	}
	log.Printf("Created %d pages", len(pages))

	log.Println("Seed completed")
}
