package feedback

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta"
	"github.com/vfg2006/catalog-social-api/infrastructure/repository"
	"github.com/vfg2006/catalog-social-api/internal/config"
	"github.com/vfg2006/catalog-social-api/internal/domain"
	"github.com/vfg2006/catalog-social-api/internal/usecases/scoring"
)

// Collector coleta métricas de engajamento dos posts publicados e
// materializa o score de performance por post e por produto
type Collector interface {
	// CollectRecent processa os posts publicados dentro da janela informada
	CollectRecent(window time.Duration) (*domain.CollectReport, error)
}

type Service struct {
	postRepo     repository.PostRepository
	feedbackRepo repository.PostFeedbackRepository
	perfRepo     repository.ProductPerformanceRepository
	publishers   []meta.ChannelPublisher
	requestDelay time.Duration
}

func NewService(
	cfg *config.Config,
	postRepo repository.PostRepository,
	feedbackRepo repository.PostFeedbackRepository,
	perfRepo repository.ProductPerformanceRepository,
	publishers []meta.ChannelPublisher,
) Collector {
	return &Service{
		postRepo:     postRepo,
		feedbackRepo: feedbackRepo,
		perfRepo:     perfRepo,
		publishers:   publishers,
		requestDelay: time.Duration(cfg.FeedbackSync.RequestDelaySeconds) * time.Second,
	}
}

// CollectRecent busca os posts publicados na janela e coleta as métricas
// de cada um. A falha de um post vira uma linha degradada no relatório;
// o lote nunca aborta no meio. Após cada post há uma pausa fixa para não
// saturar o rate limit da Graph API, inclusive após falha.
func (s *Service) CollectRecent(window time.Duration) (*domain.CollectReport, error) {
	report := &domain.CollectReport{
		StartedAt: time.Now(),
	}

	cutoff := report.StartedAt.Add(-window)
	posts, err := s.postRepo.ListPublishedSince(cutoff)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar posts publicados na janela")
	}

	logrus.WithFields(logrus.Fields{
		"cutoff": cutoff,
		"posts":  len(posts),
	}).Info("Iniciando coleta de métricas de feedback")

	for _, post := range posts {
		result := s.collectPost(post)
		report.Results = append(report.Results, result)
		report.Processed++
		if result.Degraded {
			report.Degraded++
		}

		time.Sleep(s.requestDelay)
	}

	report.FinishedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"processed": report.Processed,
		"degraded":  report.Degraded,
	}).Info("Coleta de métricas de feedback concluída")

	return report, nil
}

// collectPost coleta as métricas de um único post. Qualquer erro é
// registrado como coleta degradada (score zero) e devolvido no resultado,
// nunca propagado para o restante do lote.
func (s *Service) collectPost(post *domain.Post) domain.CollectResult {
	collectedAt := time.Now()

	metrics, err := s.fetchMetrics(post)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"post_id": post.ID,
			"error":   err.Error(),
		}).Error("Falha na coleta de métricas do post")

		if saveErr := s.feedbackRepo.SaveCollectionError(post.ID, err.Error(), collectedAt); saveErr != nil {
			logrus.WithFields(logrus.Fields{
				"post_id": post.ID,
				"error":   saveErr.Error(),
			}).Error("Erro ao registrar coleta degradada")
		}

		return domain.CollectResult{
			PostID:   post.ID,
			Degraded: true,
			Error:    err.Error(),
		}
	}

	metrics.DeriveEngagementRate()
	score := scoring.Score(metrics)

	if err := s.feedbackRepo.SaveCollection(post.ID, metrics, score, collectedAt); err != nil {
		logrus.WithFields(logrus.Fields{
			"post_id": post.ID,
			"error":   err.Error(),
		}).Error("Erro ao gravar métricas coletadas")

		return domain.CollectResult{
			PostID:   post.ID,
			Degraded: true,
			Error:    err.Error(),
		}
	}

	perf := &domain.ProductPerformance{
		ProductID:   post.ProductID,
		PerfScore:   score,
		LastUpdated: collectedAt,
	}
	if err := s.perfRepo.Upsert(perf); err != nil {
		logrus.WithFields(logrus.Fields{
			"post_id":    post.ID,
			"product_id": post.ProductID,
			"error":      err.Error(),
		}).Error("Erro ao atualizar performance do produto")
	}

	logrus.WithFields(logrus.Fields{
		"post_id":    post.ID,
		"product_id": post.ProductID,
		"perf_score": score,
	}).Info("Métricas do post coletadas")

	return domain.CollectResult{
		PostID:    post.ID,
		PerfScore: score,
	}
}

// fetchMetrics monta o snapshot de métricas do post. O Instagram é a
// fonte primária e obrigatória; o Facebook complementa quando o post
// também foi publicado lá, com os contadores comuns resolvidos pela
// média das duas plataformas.
func (s *Service) fetchMetrics(post *domain.Post) (*domain.PostMetrics, error) {
	if post.IGMediaID == nil {
		return nil, errors.New("post sem ig_media_id: nada a coletar")
	}

	igClient := meta.ByChannel(s.publishers, domain.ChannelInstagram)
	if igClient == nil {
		return nil, errors.New("canal Instagram não configurado")
	}

	metrics, err := igClient.GetInsights(*post.IGMediaID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar insights do Instagram")
	}

	if post.FBPostID != nil {
		fbClient := meta.ByChannel(s.publishers, domain.ChannelFacebook)
		if fbClient == nil {
			return metrics, nil
		}

		fbMetrics, err := fbClient.GetInsights(*post.FBPostID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar insights do Facebook")
		}

		metrics.Merge(fbMetrics)
	}

	return metrics, nil
}
