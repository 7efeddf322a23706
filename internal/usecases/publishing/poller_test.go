package publishing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/catalog-social-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newTestPoller(maxAttempts int) *MediaPoller {
	return NewMediaPoller(&config.Config{
		MediaPoller: config.MediaPoller{
			MaxAttempts:    maxAttempts,
			IntervalMillis: 1,
		},
	})
}

func TestMediaPoller_AwaitReady_ProntoNaPrimeiraTentativa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockChannelPublisher(ctrl)
	client.EXPECT().
		GetContainerStatus("cont-1").
		Return(metadomain.ContainerStatusFinished, nil)

	err := newTestPoller(10).AwaitReady(client, "cont-1")
	assert.NoError(t, err)
}

func TestMediaPoller_AwaitReady_ProntoAposProcessamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockChannelPublisher(ctrl)
	gomock.InOrder(
		client.EXPECT().GetContainerStatus("cont-1").Return(metadomain.ContainerStatusProcessing, nil),
		client.EXPECT().GetContainerStatus("cont-1").Return(metadomain.ContainerStatusProcessing, nil),
		client.EXPECT().GetContainerStatus("cont-1").Return(metadomain.ContainerStatusFinished, nil),
	)

	err := newTestPoller(10).AwaitReady(client, "cont-1")
	assert.NoError(t, err)
}

func TestMediaPoller_AwaitReady_StatusErrorFalhaImediatamente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Uma única consulta: ERROR não gera novas tentativas
	client := mocks.NewMockChannelPublisher(ctrl)
	client.EXPECT().
		GetContainerStatus("cont-1").
		Return(metadomain.ContainerStatusError, nil)

	err := newTestPoller(10).AwaitReady(client, "cont-1")
	assert.ErrorIs(t, err, ErrMediaProcessing)
}

func TestMediaPoller_AwaitReady_TimeoutAposEsgotarTentativas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockChannelPublisher(ctrl)
	client.EXPECT().
		GetContainerStatus("cont-1").
		Return(metadomain.ContainerStatusProcessing, nil).
		Times(3)

	err := newTestPoller(3).AwaitReady(client, "cont-1")
	assert.ErrorIs(t, err, ErrMediaTimeout)
}

func TestMediaPoller_AwaitReady_ErroDeConsultaPropaga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientErr := errors.New("falha de rede")

	client := mocks.NewMockChannelPublisher(ctrl)
	client.EXPECT().
		GetContainerStatus("cont-1").
		Return(metadomain.ContainerStatus(""), clientErr)

	err := newTestPoller(10).AwaitReady(client, "cont-1")
	assert.ErrorIs(t, err, clientErr)
}
