package publishing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta"
	"github.com/vfg2006/catalog-social-api/infrastructure/repository"
	"github.com/vfg2006/catalog-social-api/internal/domain"
	"github.com/vfg2006/catalog-social-api/pkg/utils"
)

// Publisher é o ponto de entrada do orquestrador de publicação
type Publisher interface {
	// Publish executa a máquina de estados de publicação de um post
	Publish(postID string, force bool) (*PublishOutcome, error)
}

// ChannelResult é o desfecho da tentativa de publicação em um canal.
// Canais são domínios de falha independentes: o erro de um nunca
// interrompe o fluxo do outro.
type ChannelResult struct {
	Channel   domain.Channel `json:"channel"`
	AttemptID string         `json:"attempt_id"`
	ContentID string         `json:"content_id,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// PublishOutcome agrega os resultados por canal de uma publicação
type PublishOutcome struct {
	PostID      string               `json:"post_id"`
	Channel     domain.ChannelTarget `json:"channel"`
	IGMediaID   *string              `json:"ig_media_id,omitempty"`
	FBPostID    *string              `json:"fb_post_id,omitempty"`
	PublishedAt time.Time            `json:"published_at"`
	Results     []ChannelResult      `json:"results"`
}

type Service struct {
	postRepo     repository.PostRepository
	feedbackRepo repository.PostFeedbackRepository
	publishers   []meta.ChannelPublisher
	poller       *MediaPoller
}

func NewService(
	postRepo repository.PostRepository,
	feedbackRepo repository.PostFeedbackRepository,
	publishers []meta.ChannelPublisher,
	poller *MediaPoller,
) Publisher {
	return &Service{
		postRepo:     postRepo,
		feedbackRepo: feedbackRepo,
		publishers:   publishers,
		poller:       poller,
	}
}

// Publish valida as pré-condições, reivindica o post (DRAFT → QUEUED),
// faz o fan-out para os canais configurados e agrega o desfecho. Com pelo
// menos um canal publicado o post vira PUBLISHED; com nenhum, o erro
// agregado sobe para a camada de jobs e o post permanece em QUEUED.
func (s *Service) Publish(postID string, force bool) (*PublishOutcome, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar post")
	}

	if post == nil {
		return nil, NewPublishError(ErrPostNotFound, postID, "")
	}

	if post.Status != domain.PostStatusDraft && !force {
		return nil, NewPublishError(ErrInvalidPostStatus, postID, string(post.Status))
	}

	// Reivindicar o post antes de qualquer chamada externa. O UPDATE
	// condicional é a trava contra uma segunda invocação concorrente.
	claimed, err := s.postRepo.ClaimForPublish(postID, force)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao reivindicar post para publicação")
	}

	if !claimed {
		return nil, NewPublishError(ErrInvalidPostStatus, postID, "post já reivindicado por outra execução")
	}

	logrus.WithFields(logrus.Fields{
		"post_id":        post.ID,
		"product_id":     post.ProductID,
		"channel_target": post.ChannelTarget,
		"is_carousel":    post.IsCarousel(),
		"force":          force,
	}).Info("Publicando post")

	results := make([]ChannelResult, 0, len(s.publishers))
	for _, publisher := range s.publishers {
		if !post.ChannelTarget.Includes(publisher.Channel()) {
			continue
		}
		results = append(results, s.publishToChannel(post, publisher))
	}

	outcome := s.aggregate(post, results)
	if outcome.IGMediaID == nil && outcome.FBPostID == nil {
		return nil, NewPublishError(ErrNoChannelPublished, postID, "")
	}

	post.Status = domain.PostStatusPublished
	post.Channel = &outcome.Channel
	post.IGMediaID = outcome.IGMediaID
	post.FBPostID = outcome.FBPostID
	post.PublishedAt = &outcome.PublishedAt

	if err := s.postRepo.SavePublishResult(post); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar resultado da publicação")
	}

	// Semear a linha de feedback com métricas vazias. Falha aqui não
	// derruba a publicação já concluída nos canais; fica no log.
	seed := &domain.PostFeedback{
		PostID:    post.ID,
		Channel:   outcome.Channel,
		IGMediaID: outcome.IGMediaID,
		FBPostID:  outcome.FBPostID,
		Metrics:   &domain.PostMetrics{},
	}
	if err := s.feedbackRepo.Seed(seed); err != nil {
		logrus.WithFields(logrus.Fields{
			"post_id": post.ID,
			"error":   err.Error(),
		}).Error("Erro ao criar entrada de post_feedback")
	}

	logrus.WithFields(logrus.Fields{
		"post_id": post.ID,
		"channel": outcome.Channel,
	}).Info("Post publicado com sucesso")

	return outcome, nil
}

// publishToChannel executa o fluxo completo de um canal: containers,
// espera de processamento e publicação. Qualquer falha é capturada no
// resultado do canal, nunca propagada para o outro canal.
func (s *Service) publishToChannel(post *domain.Post, publisher meta.ChannelPublisher) ChannelResult {
	attemptID, _ := utils.GenerateID()
	channel := publisher.Channel()

	logger := logrus.WithFields(logrus.Fields{
		"post_id":    post.ID,
		"channel":    channel,
		"attempt_id": attemptID,
	})

	result := ChannelResult{
		Channel:   channel,
		AttemptID: attemptID,
	}

	contentID, err := s.runChannelFlow(post, publisher)
	if err != nil {
		logger.WithError(err).Error("Falha na publicação do canal")
		result.Error = err.Error()
		return result
	}

	logger.WithField("content_id", contentID).Info("Canal publicado com sucesso")
	result.ContentID = contentID
	return result
}

func (s *Service) runChannelFlow(post *domain.Post, publisher meta.ChannelPublisher) (string, error) {
	caption := post.CaptionFor(publisher.Channel())

	var containerID string
	var err error

	if post.IsCarousel() {
		// Os containers dos itens precisam existir antes do container do
		// carrossel; a criação é sequencial por dependência de dados.
		children := make([]string, 0, len(post.CarouselImages))
		for _, imageURL := range post.CarouselImages {
			childID, err := publisher.CreateMediaContainer(imageURL, caption, true)
			if err != nil {
				return "", err
			}
			children = append(children, childID)
		}

		containerID, err = publisher.CreateCarouselContainer(children, caption)
		if err != nil {
			return "", err
		}
	} else {
		if post.ImageURL == "" {
			return "", NewPublishError(ErrMissingImage, post.ID, "")
		}

		containerID, err = publisher.CreateMediaContainer(post.ImageURL, caption, false)
		if err != nil {
			return "", err
		}
	}

	if err := s.poller.AwaitReady(publisher, containerID); err != nil {
		return "", err
	}

	return publisher.Publish(containerID)
}

func (s *Service) aggregate(post *domain.Post, results []ChannelResult) *PublishOutcome {
	outcome := &PublishOutcome{
		PostID:      post.ID,
		PublishedAt: time.Now(),
		Results:     results,
	}

	for i := range results {
		if results[i].ContentID == "" {
			continue
		}
		contentID := results[i].ContentID
		switch results[i].Channel {
		case domain.ChannelInstagram:
			outcome.IGMediaID = &contentID
		case domain.ChannelFacebook:
			outcome.FBPostID = &contentID
		}
	}

	if outcome.IGMediaID != nil || outcome.FBPostID != nil {
		outcome.Channel = domain.DetermineChannel(outcome.IGMediaID, outcome.FBPostID)
	}

	return outcome
}
