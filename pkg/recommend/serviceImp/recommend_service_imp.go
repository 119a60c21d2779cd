package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/ai"
	farmerrepo "cropadvisor/pkg/farmer/repository"
)

// recommendedCrops is how many leading table entries each response carries.
// The farmer's own declared crops are deliberately not consulted; the
// endpoint has always returned the first table entries.
const recommendedCrops = 3

type RecommendSvc struct {
	gen     *agronomy.Generator
	llm     ai.Client
	farmers farmerrepo.FarmerRepository
}

func New(gen *agronomy.Generator, llm ai.Client, farmers farmerrepo.FarmerRepository) *RecommendSvc {
	return &RecommendSvc{gen: gen, llm: llm, farmers: farmers}
}

func (s *RecommendSvc) Recommend(ctx context.Context, farmerID string) (*entities.RecommendationResponse, error) {
	farmer, err := s.farmers.FindByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	recs := s.gen.Recommendations(recommendedCrops)
	names := make([]string, 0, len(recs))
	for _, r := range recs {
		names = append(names, r.CropName)
	}

	analysis, err := s.llm.GetAdvice(ctx, ai.AdviceQuery{
		Query: fmt.Sprintf(
			"Give a short market outlook for growing %s on a %s farm. Summarize profitability and timing in a few sentences.",
			strings.Join(names, ", "), farmer.FarmSize),
		Location: farmer.Location,
		Language: "English",
	})
	if err != nil {
		return nil, err
	}

	return &entities.RecommendationResponse{
		Recommendations: recs,
		AIAnalysis:      analysis,
	}, nil
}
