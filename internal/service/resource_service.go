package service

import (
	"mindwell_backend/internal/model"
	"mindwell_backend/internal/repository"
	"mindwell_backend/internal/scoring"
)

type ResourceService struct {
	Resources *repository.WellnessResourceRepository
	Sounds    *repository.SleepSoundRepository
}

func NewResourceService(resources *repository.WellnessResourceRepository, sounds *repository.SleepSoundRepository) *ResourceService {
	return &ResourceService{
		Resources: resources,
		Sounds:    sounds,
	}
}

// ResourceRecommendation 某个分数档位的推荐内容
type ResourceRecommendation struct {
	RiskLevel scoring.RiskLevel        `json:"riskLevel"`
	Articles  []model.WellnessResource `json:"articles"`
	Hotlines  []model.WellnessResource `json:"hotlines"`
}

// Recommend 按分数推荐资源，风险等级用 AssessRisk（阈值与情绪分类不同）
func (s *ResourceService) Recommend(score float64) (*ResourceRecommendation, error) {
	level := scoring.AssessRisk(score)

	all, err := s.Resources.ListByRisk(level)
	if err != nil {
		return nil, err
	}

	rec := &ResourceRecommendation{
		RiskLevel: level,
		Articles:  []model.WellnessResource{},
		Hotlines:  []model.WellnessResource{},
	}
	for _, r := range all {
		switch r.Kind {
		case model.ResourceArticle:
			rec.Articles = append(rec.Articles, r)
		case model.ResourceHotline:
			rec.Hotlines = append(rec.Hotlines, r)
		}
	}
	return rec, nil
}

func (s *ResourceService) ListSounds() ([]model.SleepSound, error) {
	return s.Sounds.ListEnabled()
}
