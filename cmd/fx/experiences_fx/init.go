package experiences_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweave/internal/repositories"
	"tripweave/internal/services"
)

var Module = fx.Provide(
	provideExperienceRepo, provideExperienceService)

func provideExperienceRepo(db *gorm.DB) repositories.ExperienceRepository {
	return repositories.NewExperienceRepository(db)
}

func provideExperienceService(experienceRepo repositories.ExperienceRepository) services.ExperienceServiceInterface {
	return services.NewExperienceService(experienceRepo)
}
