package domain

import (
	"math"

	"github.com/vfg2006/catalog-social-api/pkg/utils"
)

// PostMetrics é o conjunto de contadores de engajamento de um post.
// Campos são ponteiros porque cada canal reporta um subconjunto diferente:
// ausência de valor não é zero, é ausência de sinal.
type PostMetrics struct {
	Likes          *int     `json:"likes,omitempty"`
	Comments       *int     `json:"comments,omitempty"`
	Saves          *int     `json:"saves,omitempty"`
	Shares         *int     `json:"shares,omitempty"`
	Reach          *int     `json:"reach,omitempty"`
	Impressions    *int     `json:"impressions,omitempty"`
	EngagementRate *float64 `json:"engagement_rate,omitempty"`
}

// Merge combina as métricas de outro canal nas métricas atuais, campo a campo.
// Quando ambos os canais reportam o mesmo campo, fica a média aritmética
// arredondada; quando apenas um reporta, o valor passa inalterado.
func (m *PostMetrics) Merge(other *PostMetrics) {
	if other == nil {
		return
	}

	m.Likes = mergeCount(m.Likes, other.Likes)
	m.Comments = mergeCount(m.Comments, other.Comments)
	m.Saves = mergeCount(m.Saves, other.Saves)
	m.Shares = mergeCount(m.Shares, other.Shares)
	m.Reach = mergeCount(m.Reach, other.Reach)
	m.Impressions = mergeCount(m.Impressions, other.Impressions)
	m.EngagementRate = mergeRate(m.EngagementRate, other.EngagementRate)
}

func mergeCount(a, b *int) *int {
	if b == nil {
		return a
	}
	if a == nil {
		v := *b
		return &v
	}
	v := int(math.Round(float64(*a+*b) / 2))
	return &v
}

func mergeRate(a, b *float64) *float64 {
	if b == nil {
		return a
	}
	if a == nil {
		v := *b
		return &v
	}
	v := math.Round((*a + *b) / 2)
	return &v
}

// DeriveEngagementRate calcula a taxa de engajamento ponderada a partir dos
// contadores já mesclados. Comentários, saves e shares pesam mais que likes
// por serem sinais mais fortes de engajamento. Usa impressions, com fallback
// para reach; sem nenhum dos dois a taxa é zero.
func (m *PostMetrics) DeriveEngagementRate() {
	impressions := 0
	if m.Impressions != nil {
		impressions = *m.Impressions
	} else if m.Reach != nil {
		impressions = *m.Reach
	}

	rate := 0.0
	if impressions > 0 {
		engagements := intOrZero(m.Likes) +
			intOrZero(m.Comments)*2 +
			intOrZero(m.Saves)*3 +
			intOrZero(m.Shares)*2

		rate = utils.RoundWithTwoDecimalPlace(float64(engagements) / float64(impressions) * 100)
	}

	m.EngagementRate = &rate
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// IntPtr é um helper para construir métricas literalmente
func IntPtr(v int) *int { return &v }

// FloatPtr é um helper para construir métricas literalmente
func FloatPtr(v float64) *float64 { return &v }
