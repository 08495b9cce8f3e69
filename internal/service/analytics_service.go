package service

import (
	"context"
	"fmt"
	"sort"

	"scientist-twin/internal/domain"
	"scientist-twin/internal/repository"
)

const hallOfFameSize = 10

// AnalyticsSummary is the payload behind the analytics board.
type AnalyticsSummary struct {
	TotalPlays    int                         `json:"total_plays"`
	TotalLikes    int                         `json:"total_likes"`
	HallOfFame    []repository.ScientistCount `json:"hall_of_fame"`
	PopularFields []repository.FieldCount     `json:"popular_fields"`
}

// AnalyticsService aggregates feedback events. Field popularity is derived
// by mapping liked scientists to their fields through the loaded pool,
// since events only record the scientist's name.
type AnalyticsService struct {
	feedback    repository.FeedbackRepository
	fieldByName map[string]string
}

func NewAnalyticsService(feedback repository.FeedbackRepository, scientists []domain.Scientist) *AnalyticsService {
	fields := make(map[string]string, len(scientists))
	for _, sci := range scientists {
		fields[sci.Name] = sci.Field
	}
	return &AnalyticsService{feedback: feedback, fieldByName: fields}
}

func (s *AnalyticsService) Summary(ctx context.Context) (AnalyticsSummary, error) {
	plays, err := s.feedback.CountByKind(ctx, "play")
	if err != nil {
		return AnalyticsSummary{}, fmt.Errorf("count plays: %w", err)
	}
	likes, err := s.feedback.CountByKind(ctx, "like")
	if err != nil {
		return AnalyticsSummary{}, fmt.Errorf("count likes: %w", err)
	}
	top, err := s.feedback.TopScientists(ctx, "like", hallOfFameSize)
	if err != nil {
		return AnalyticsSummary{}, fmt.Errorf("top scientists: %w", err)
	}

	return AnalyticsSummary{
		TotalPlays:    plays,
		TotalLikes:    likes,
		HallOfFame:    top,
		PopularFields: s.popularFields(top),
	}, nil
}

func (s *AnalyticsService) popularFields(top []repository.ScientistCount) []repository.FieldCount {
	counts := make(map[string]int)
	for _, sc := range top {
		field, ok := s.fieldByName[sc.Name]
		if !ok {
			continue
		}
		counts[field] += sc.Count
	}

	out := make([]repository.FieldCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, repository.FieldCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
