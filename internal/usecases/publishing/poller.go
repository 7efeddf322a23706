package publishing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/catalog-social-api/internal/config"
)

// ContainerStatusGetter é o subconjunto do cliente de canal que o poller precisa
type ContainerStatusGetter interface {
	GetContainerStatus(containerID string) (metadomain.ContainerStatus, error)
}

// MediaPoller aguarda um media container ficar pronto, consultando o status
// em intervalo fixo com um limite de tentativas. Sem backoff exponencial:
// o intervalo constante limita a latência de publicação no pior caso, e o
// processamento de containers costuma levar poucos segundos.
type MediaPoller struct {
	maxAttempts int
	interval    time.Duration
}

func NewMediaPoller(cfg *config.Config) *MediaPoller {
	return &MediaPoller{
		maxAttempts: cfg.MediaPoller.MaxAttempts,
		interval:    time.Duration(cfg.MediaPoller.IntervalMillis) * time.Millisecond,
	}
}

// AwaitReady bloqueia até o container reportar FINISHED. Status ERROR
// falha imediatamente, sem novas consultas; esgotar as tentativas falha
// com timeout.
func (p *MediaPoller) AwaitReady(client ContainerStatusGetter, containerID string) error {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		status, err := client.GetContainerStatus(containerID)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"container_id": containerID,
			"attempt":      attempt,
			"status":       status,
		}).Debug("Status do container de mídia consultado")

		if status == metadomain.ContainerStatusFinished {
			return nil
		}

		if status == metadomain.ContainerStatusError {
			return fmt.Errorf("%w: container %s", ErrMediaProcessing, containerID)
		}

		if attempt == p.maxAttempts {
			return fmt.Errorf("%w: container %s após %d tentativas", ErrMediaTimeout, containerID, p.maxAttempts)
		}

		time.Sleep(p.interval)
	}

	return fmt.Errorf("%w: container %s", ErrMediaTimeout, containerID)
}
