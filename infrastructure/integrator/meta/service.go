package meta

import (
	metadomain "github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/catalog-social-api/internal/config"
	"github.com/vfg2006/catalog-social-api/internal/domain"
)

// ChannelPublisher é o contrato uniforme de publicação por canal. As duas
// implementações (Instagram e Facebook) têm formatos de requisição
// diferentes, mas o mesmo protocolo: criar container, aguardar
// processamento, publicar e ler insights.
type ChannelPublisher interface {
	// Channel identifica o canal concreto desta implementação
	Channel() domain.Channel

	// CreateMediaContainer submete uma imagem para processamento e retorna o id do container
	CreateMediaContainer(imageURL, caption string, isCarouselItem bool) (string, error)

	// CreateCarouselContainer embrulha containers de itens já criados em um carrossel
	CreateCarouselContainer(children []string, caption string) (string, error)

	// GetContainerStatus retorna o status de processamento reportado pela plataforma
	GetContainerStatus(containerID string) (metadomain.ContainerStatus, error)

	// Publish finaliza um container pronto e retorna o identificador do conteúdo publicado
	Publish(containerID string) (string, error)

	// GetInsights mapeia as métricas específicas do canal para o formato comum
	GetInsights(contentID string) (*domain.PostMetrics, error)
}

// NewPublishers constrói o conjunto de canais configurados, na ordem
// Instagram e depois Facebook. Cada cliente carrega suas próprias credenciais.
func NewPublishers(cfg *config.Config) []ChannelPublisher {
	return []ChannelPublisher{
		metaclient.NewInstagramClient(cfg),
		metaclient.NewFacebookClient(cfg),
	}
}

// ByChannel busca a implementação de um canal específico no conjunto
func ByChannel(publishers []ChannelPublisher, c domain.Channel) ChannelPublisher {
	for _, p := range publishers {
		if p.Channel() == c {
			return p
		}
	}
	return nil
}
