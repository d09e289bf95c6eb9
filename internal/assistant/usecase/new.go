package usecase

import (
	"marketplace-assistant/internal/assistant"
	"marketplace-assistant/internal/assistant/classifier"
	"marketplace-assistant/internal/assistant/repository"
	"marketplace-assistant/pkg/gemini"
	pkgLog "marketplace-assistant/pkg/log"
)

type implUseCase struct {
	l            pkgLog.Logger
	classifier   classifier.Classifier
	llm          gemini.IGemini
	providerRepo repository.ProviderRepository
	jobRepo      repository.JobRepository
	reviewRepo   repository.ReviewRepository
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the assistant UseCase instance.
func New(
	l pkgLog.Logger,
	cls classifier.Classifier,
	llm gemini.IGemini,
	providerRepo repository.ProviderRepository,
	jobRepo repository.JobRepository,
	reviewRepo repository.ReviewRepository,
) *implUseCase {
	return &implUseCase{
		l:            l,
		classifier:   cls,
		llm:          llm,
		providerRepo: providerRepo,
		jobRepo:      jobRepo,
		reviewRepo:   reviewRepo,
	}
}
