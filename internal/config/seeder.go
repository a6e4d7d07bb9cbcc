package config

import (
	"log"

	"frontdesk/internal/adapters/persistence/models"
	"frontdesk/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Demo accounts are only seeded in dev mode;
// production admins are created through a secure manual process.
func (s *Seeder) Run(cfg *Config) error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	if cfg.IsDev() {
		if err := s.seedDemoOwner(); err != nil {
			log.Printf("⚠️ Demo owner seeder skipped: %v", err)
		}
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds the default admin user if no admin exists
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Administrator",
		Email:    "admin@frontdesk.local",
		Password: hashedPassword,
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// seedDemoOwner seeds a demo operator account for local development
func (s *Seeder) seedDemoOwner() error {
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", "owner@frontdesk.local").Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash("owner123456")
	if err != nil {
		return err
	}

	owner := &models.User{
		Name:     "Demo Owner",
		Email:    "owner@frontdesk.local",
		Password: hashedPassword,
		Role:     models.RoleOwner,
		IsActive: true,
	}

	if err := s.db.Create(owner).Error; err != nil {
		return err
	}

	log.Printf("✅ Demo owner created: %s", owner.Email)
	return nil
}
