package services

import (
	"context"

	"github.com/google/uuid"

	dbm "tripweave/internal/models/db_models"
	"tripweave/internal/models/request_models"
	"tripweave/internal/models/response_models"
	"tripweave/internal/repositories"
	"tripweave/pkg/utils"
)

type ExperienceServiceInterface interface {
	CreateExperience(ctx context.Context, req request_models.CreateExperienceRequest) (uuid.UUID, error)
	GetExperienceById(ctx context.Context, id string) (*response_models.ExperienceResponse, error)
	ListByDestination(ctx context.Context, destination string, page, pageSize int) ([]response_models.ExperienceResponse, error)
	SearchByName(ctx context.Context, name, destination string, page, pageSize int) ([]response_models.ExperienceResponse, error)
	DeleteExperience(ctx context.Context, id uuid.UUID) error
}

type ExperienceService struct {
	experienceRepo repositories.ExperienceRepository
}

func NewExperienceService(experienceRepo repositories.ExperienceRepository) ExperienceServiceInterface {
	return &ExperienceService{
		experienceRepo: experienceRepo,
	}
}

func (s *ExperienceService) CreateExperience(ctx context.Context, req request_models.CreateExperienceRequest) (uuid.UUID, error) {
	exp := dbm.Experience{
		Name:            req.Name,
		Destination:     req.Destination,
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Tip:             req.Tip,
		Tags:            req.Tags,
	}
	if err := s.experienceRepo.CreateExperience(ctx, &exp); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return exp.ID, nil
}

func (s *ExperienceService) GetExperienceById(ctx context.Context, id string) (*response_models.ExperienceResponse, error) {
	exp, err := s.experienceRepo.GetExperienceById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if exp == nil {
		return nil, utils.ErrExperienceNotFound
	}
	out := toExperienceResponse(*exp)
	return &out, nil
}

func (s *ExperienceService) ListByDestination(ctx context.Context, destination string, page, pageSize int) ([]response_models.ExperienceResponse, error) {
	exps, err := s.experienceRepo.ListByDestination(ctx, destination, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toExperienceResponses(exps), nil
}

func (s *ExperienceService) SearchByName(ctx context.Context, name, destination string, page, pageSize int) ([]response_models.ExperienceResponse, error) {
	exps, err := s.experienceRepo.SearchByName(ctx, name, destination, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toExperienceResponses(exps), nil
}

func (s *ExperienceService) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	if err := s.experienceRepo.DeleteExperience(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toExperienceResponse(exp dbm.Experience) response_models.ExperienceResponse {
	return response_models.ExperienceResponse{
		ID:              exp.ID.String(),
		Name:            exp.Name,
		Destination:     exp.Destination,
		Category:        exp.Category,
		DurationMinutes: exp.DurationMinutes,
		Latitude:        exp.Latitude,
		Longitude:       exp.Longitude,
		Tip:             exp.Tip,
		Tags:            exp.Tags,
	}
}

func toExperienceResponses(exps []dbm.Experience) []response_models.ExperienceResponse {
	out := make([]response_models.ExperienceResponse, 0, len(exps))
	for _, exp := range exps {
		out = append(out, toExperienceResponse(exp))
	}
	return out
}
