package scoring

import (
	"math"

	"github.com/vfg2006/catalog-social-api/internal/domain"
)

// Pesos e normalizações do score de performance. Cada componente contribui
// no máximo peso × 100; o valor de normalização é o que rende a
// contribuição cheia do componente.
const (
	weightEngagementRate = 0.40
	weightSaves          = 0.25
	weightComments       = 0.20
	weightReach          = 0.15

	normEngagementRate = 5.0    // 5 pontos percentuais de engajamento
	normSaves          = 50.0   // 50 saves
	normComments       = 20.0   // 20 comentários
	normReach          = 5000.0 // 5000 de alcance
)

// Score mapeia um conjunto de métricas para um inteiro de 0 a 100.
// Componentes ausentes contribuem 0, sem penalizar os demais: dados
// parciais degradam o score proporcionalmente ao sinal que falta, em vez
// de serem tratados como engajamento nulo.
func Score(metrics *domain.PostMetrics) int {
	if metrics == nil {
		return 0
	}

	score := 0.0

	if metrics.EngagementRate != nil {
		score += component(*metrics.EngagementRate, normEngagementRate, weightEngagementRate)
	}

	if metrics.Saves != nil {
		score += component(float64(*metrics.Saves), normSaves, weightSaves)
	}

	if metrics.Comments != nil {
		score += component(float64(*metrics.Comments), normComments, weightComments)
	}

	if metrics.Reach != nil {
		score += component(float64(*metrics.Reach), normReach, weightReach)
	}

	return int(math.Round(score))
}

func component(value, norm, weight float64) float64 {
	return math.Min(value/norm, 1) * weight * 100
}
