package feedback

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta"
	metamocks "github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/catalog-social-api/infrastructure/repository/mocks"
	"github.com/vfg2006/catalog-social-api/internal/config"
	"github.com/vfg2006/catalog-social-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type collectFixture struct {
	postRepo     *mocks.MockPostRepository
	feedbackRepo *mocks.MockPostFeedbackRepository
	perfRepo     *mocks.MockProductPerformanceRepository
	igClient     *metamocks.MockChannelPublisher
	fbClient     *metamocks.MockChannelPublisher
	collector    Collector
}

func newCollectFixture(t *testing.T) *collectFixture {
	ctrl := gomock.NewController(t)

	postRepo := mocks.NewMockPostRepository(ctrl)
	feedbackRepo := mocks.NewMockPostFeedbackRepository(ctrl)
	perfRepo := mocks.NewMockProductPerformanceRepository(ctrl)

	igClient := metamocks.NewMockChannelPublisher(ctrl)
	igClient.EXPECT().Channel().Return(domain.ChannelInstagram).AnyTimes()

	fbClient := metamocks.NewMockChannelPublisher(ctrl)
	fbClient.EXPECT().Channel().Return(domain.ChannelFacebook).AnyTimes()

	cfg := &config.Config{
		FeedbackSync: config.FeedbackSync{
			RequestDelaySeconds: 0,
		},
	}

	collector := NewService(cfg, postRepo, feedbackRepo, perfRepo, []meta.ChannelPublisher{igClient, fbClient})

	return &collectFixture{
		postRepo:     postRepo,
		feedbackRepo: feedbackRepo,
		perfRepo:     perfRepo,
		igClient:     igClient,
		fbClient:     fbClient,
		collector:    collector,
	}
}

func publishedPost(id, productID, igMediaID string, fbPostID *string) *domain.Post {
	return &domain.Post{
		ID:        id,
		ProductID: productID,
		Status:    domain.PostStatusPublished,
		IGMediaID: &igMediaID,
		FBPostID:  fbPostID,
	}
}

func TestService_CollectRecent_JanelaVazia(t *testing.T) {
	f := newCollectFixture(t)

	f.postRepo.EXPECT().ListPublishedSince(gomock.Any()).Return(nil, nil)

	report, err := f.collector.CollectRecent(48 * time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
	assert.Equal(t, 0, report.Degraded)
	assert.Empty(t, report.Results)
}

func TestService_CollectRecent_PostNosDoisCanais(t *testing.T) {
	f := newCollectFixture(t)
	fbID := "123_456"
	post := publishedPost("post-1", "prod-1", "ig-1", &fbID)

	f.postRepo.EXPECT().ListPublishedSince(gomock.Any()).Return([]*domain.Post{post}, nil)

	f.igClient.EXPECT().GetInsights("ig-1").Return(&domain.PostMetrics{
		Likes:       domain.IntPtr(10),
		Comments:    domain.IntPtr(2),
		Saves:       domain.IntPtr(1),
		Shares:      domain.IntPtr(0),
		Reach:       domain.IntPtr(500),
		Impressions: domain.IntPtr(500),
	}, nil)

	f.fbClient.EXPECT().GetInsights("123_456").Return(&domain.PostMetrics{
		Likes:    domain.IntPtr(20),
		Comments: domain.IntPtr(4),
		Shares:   domain.IntPtr(2),
	}, nil)

	f.feedbackRepo.EXPECT().
		SaveCollection("post-1", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(postID string, metrics *domain.PostMetrics, score int, collectedAt time.Time) error {
			// Contadores comuns pela média, exclusivos passam direto
			assert.Equal(t, 15, *metrics.Likes)
			assert.Equal(t, 3, *metrics.Comments)
			assert.Equal(t, 1, *metrics.Saves)
			assert.Equal(t, 1, *metrics.Shares)
			assert.Equal(t, 500, *metrics.Reach)

			// (15 + 3×2 + 1×3 + 1×2) / 500 × 100 = 5.2
			assert.Equal(t, 5.2, *metrics.EngagementRate)
			assert.Equal(t, 45, score)
			return nil
		})

	f.perfRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(perf *domain.ProductPerformance) error {
			assert.Equal(t, "prod-1", perf.ProductID)
			assert.Equal(t, 45, perf.PerfScore)
			return nil
		})

	report, err := f.collector.CollectRecent(48 * time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 0, report.Degraded)
	assert.Equal(t, 45, report.Results[0].PerfScore)
}

func TestService_CollectRecent_ApenasInstagram(t *testing.T) {
	f := newCollectFixture(t)
	post := publishedPost("post-1", "prod-1", "ig-1", nil)

	f.postRepo.EXPECT().ListPublishedSince(gomock.Any()).Return([]*domain.Post{post}, nil)

	// Sem fb_post_id o canal Facebook nunca é consultado
	f.igClient.EXPECT().GetInsights("ig-1").Return(&domain.PostMetrics{
		Likes:       domain.IntPtr(5),
		Comments:    domain.IntPtr(1),
		Saves:       domain.IntPtr(2),
		Shares:      domain.IntPtr(0),
		Reach:       domain.IntPtr(200),
		Impressions: domain.IntPtr(200),
	}, nil)

	f.feedbackRepo.EXPECT().SaveCollection("post-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.perfRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	report, err := f.collector.CollectRecent(48 * time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 0, report.Degraded)
}

func TestService_CollectRecent_FalhaDeUmPostNaoDerrubaOLote(t *testing.T) {
	f := newCollectFixture(t)
	posts := []*domain.Post{
		publishedPost("post-1", "prod-1", "ig-1", nil),
		publishedPost("post-2", "prod-2", "ig-2", nil),
		publishedPost("post-3", "prod-3", "ig-3", nil),
	}

	f.postRepo.EXPECT().ListPublishedSince(gomock.Any()).Return(posts, nil)

	okMetrics := func() *domain.PostMetrics {
		return &domain.PostMetrics{
			Likes:       domain.IntPtr(10),
			Comments:    domain.IntPtr(1),
			Saves:       domain.IntPtr(1),
			Shares:      domain.IntPtr(0),
			Reach:       domain.IntPtr(300),
			Impressions: domain.IntPtr(300),
		}
	}

	f.igClient.EXPECT().GetInsights("ig-1").Return(okMetrics(), nil)
	f.igClient.EXPECT().GetInsights("ig-2").Return(nil, errors.New("rate limit"))
	f.igClient.EXPECT().GetInsights("ig-3").Return(okMetrics(), nil)

	f.feedbackRepo.EXPECT().SaveCollection("post-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.feedbackRepo.EXPECT().SaveCollection("post-3", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// A falha vira coleta degradada com score zero
	f.feedbackRepo.EXPECT().
		SaveCollectionError("post-2", gomock.Any(), gomock.Any()).
		DoAndReturn(func(postID, detail string, collectedAt time.Time) error {
			assert.Contains(t, detail, "rate limit")
			return nil
		})

	f.perfRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)

	report, err := f.collector.CollectRecent(48 * time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 1, report.Degraded)

	assert.False(t, report.Results[0].Degraded)
	assert.True(t, report.Results[1].Degraded)
	assert.Contains(t, report.Results[1].Error, "rate limit")
	assert.False(t, report.Results[2].Degraded)
}

func TestService_CollectRecent_PostSemIGMediaID(t *testing.T) {
	f := newCollectFixture(t)
	post := &domain.Post{
		ID:        "post-1",
		ProductID: "prod-1",
		Status:    domain.PostStatusPublished,
	}

	f.postRepo.EXPECT().ListPublishedSince(gomock.Any()).Return([]*domain.Post{post}, nil)
	f.feedbackRepo.EXPECT().SaveCollectionError("post-1", gomock.Any(), gomock.Any()).Return(nil)

	report, err := f.collector.CollectRecent(48 * time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Degraded)
}

func TestService_CollectRecent_ScoreEstavelComMetricasInalteradas(t *testing.T) {
	f := newCollectFixture(t)
	post := publishedPost("post-1", "prod-1", "ig-1", nil)

	f.postRepo.EXPECT().ListPublishedSince(gomock.Any()).Return([]*domain.Post{post}, nil).Times(2)

	// Snapshot novo a cada chamada: a coleta muta as métricas ao derivar
	// a taxa de engajamento
	f.igClient.EXPECT().
		GetInsights("ig-1").
		DoAndReturn(func(string) (*domain.PostMetrics, error) {
			return &domain.PostMetrics{
				Likes:       domain.IntPtr(10),
				Comments:    domain.IntPtr(2),
				Saves:       domain.IntPtr(1),
				Shares:      domain.IntPtr(0),
				Reach:       domain.IntPtr(500),
				Impressions: domain.IntPtr(500),
			}, nil
		}).
		Times(2)

	var scores []int
	f.feedbackRepo.EXPECT().
		SaveCollection("post-1", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(postID string, metrics *domain.PostMetrics, score int, collectedAt time.Time) error {
			scores = append(scores, score)
			return nil
		}).
		Times(2)

	f.perfRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)

	// Dois ciclos com as mesmas métricas upstream gravam o mesmo score
	for i := 0; i < 2; i++ {
		report, err := f.collector.CollectRecent(48 * time.Hour)
		assert.NoError(t, err)
		assert.Equal(t, 0, report.Degraded)
	}

	assert.Len(t, scores, 2)
	assert.Equal(t, scores[0], scores[1])
}

func TestService_CollectRecent_PausaTambemAposOUltimoPost(t *testing.T) {
	ctrl := gomock.NewController(t)

	postRepo := mocks.NewMockPostRepository(ctrl)
	feedbackRepo := mocks.NewMockPostFeedbackRepository(ctrl)
	perfRepo := mocks.NewMockProductPerformanceRepository(ctrl)

	igClient := metamocks.NewMockChannelPublisher(ctrl)
	igClient.EXPECT().Channel().Return(domain.ChannelInstagram).AnyTimes()

	service := &Service{
		postRepo:     postRepo,
		feedbackRepo: feedbackRepo,
		perfRepo:     perfRepo,
		publishers:   []meta.ChannelPublisher{igClient},
		requestDelay: 30 * time.Millisecond,
	}

	post := publishedPost("post-1", "prod-1", "ig-1", nil)
	postRepo.EXPECT().ListPublishedSince(gomock.Any()).Return([]*domain.Post{post}, nil)

	igClient.EXPECT().GetInsights("ig-1").Return(&domain.PostMetrics{
		Likes: domain.IntPtr(1),
		Reach: domain.IntPtr(100),
	}, nil)

	feedbackRepo.EXPECT().SaveCollection("post-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	perfRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	start := time.Now()
	_, err := service.CollectRecent(48 * time.Hour)
	assert.NoError(t, err)

	// A pausa vale depois de cada post do lote, o último incluído
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestService_CollectRecent_ErroAoListarPropaga(t *testing.T) {
	f := newCollectFixture(t)

	f.postRepo.EXPECT().ListPublishedSince(gomock.Any()).Return(nil, errors.New("conexão perdida"))

	report, err := f.collector.CollectRecent(48 * time.Hour)
	assert.Nil(t, report)
	assert.Error(t, err)
}

func TestService_CollectRecent_ErroAoGravarEhDegradado(t *testing.T) {
	f := newCollectFixture(t)
	post := publishedPost("post-1", "prod-1", "ig-1", nil)

	f.postRepo.EXPECT().ListPublishedSince(gomock.Any()).Return([]*domain.Post{post}, nil)

	f.igClient.EXPECT().GetInsights("ig-1").Return(&domain.PostMetrics{
		Likes: domain.IntPtr(1),
		Reach: domain.IntPtr(100),
	}, nil)

	f.feedbackRepo.EXPECT().
		SaveCollection("post-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("deadlock"))

	// Sem snapshot gravado, a performance do produto não é atualizada
	report, err := f.collector.CollectRecent(48 * time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Degraded)
	assert.Contains(t, report.Results[0].Error, "deadlock")
}
