package metaclient

import (
	"errors"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/catalog-social-api/internal/config"
	"github.com/vfg2006/catalog-social-api/internal/domain"
)

// InstagramClient publica conteúdo na conta business do Instagram via Graph API
type InstagramClient struct {
	baseClient
	accountID string
}

func NewInstagramClient(cfg *config.Config) *InstagramClient {
	return &InstagramClient{
		baseClient: newBaseClient(cfg.Meta.URL, cfg.Meta.AccessToken),
		accountID:  cfg.Meta.InstagramAccountID,
	}
}

// Channel identifica o canal desta implementação
func (c *InstagramClient) Channel() domain.Channel {
	return domain.ChannelInstagram
}

// CreateMediaContainer submete uma imagem para processamento assíncrono.
// Itens de carrossel não levam legenda própria; a legenda vai no container
// do carrossel.
func (c *InstagramClient) CreateMediaContainer(imageURL, caption string, isCarouselItem bool) (string, error) {
	params := url.Values{}
	params.Set("image_url", imageURL)
	if isCarouselItem {
		params.Set("is_carousel_item", "true")
	} else {
		params.Set("caption", caption)
	}

	var resp idResponse
	if err := c.postForm(c.accountID+"/media", params, &resp); err != nil {
		return "", err
	}

	if resp.ID == "" {
		return "", errors.New("meta: container de mídia criado sem id na resposta")
	}

	logrus.WithFields(logrus.Fields{
		"container_id":     resp.ID,
		"is_carousel_item": isCarouselItem,
	}).Info("Container de mídia do Instagram criado")

	return resp.ID, nil
}

// CreateCarouselContainer embrulha containers de itens já criados em um
// único container de carrossel
func (c *InstagramClient) CreateCarouselContainer(children []string, caption string) (string, error) {
	params := url.Values{}
	params.Set("media_type", "CAROUSEL")
	params.Set("children", strings.Join(children, ","))
	params.Set("caption", caption)

	var resp idResponse
	if err := c.postForm(c.accountID+"/media", params, &resp); err != nil {
		return "", err
	}

	if resp.ID == "" {
		return "", errors.New("meta: container de carrossel criado sem id na resposta")
	}

	logrus.WithFields(logrus.Fields{
		"container_id": resp.ID,
		"children":     len(children),
	}).Info("Container de carrossel do Instagram criado")

	return resp.ID, nil
}

// GetContainerStatus consulta o status de processamento de um container
func (c *InstagramClient) GetContainerStatus(containerID string) (metadomain.ContainerStatus, error) {
	params := url.Values{}
	params.Set("fields", "status_code")

	var container metadomain.MediaContainer
	if err := c.getJSON(containerID, params, &container); err != nil {
		return "", err
	}

	return container.Status, nil
}

// Publish finaliza um container pronto em um post ao vivo e retorna o media id
func (c *InstagramClient) Publish(containerID string) (string, error) {
	params := url.Values{}
	params.Set("creation_id", containerID)

	var resp idResponse
	if err := c.postForm(c.accountID+"/media_publish", params, &resp); err != nil {
		return "", err
	}

	if resp.ID == "" {
		return "", errors.New("meta: publicação no Instagram não retornou media id")
	}

	return resp.ID, nil
}

// igInsightsResponse é a resposta do endpoint de insights de mídia
type igInsightsResponse struct {
	Data []igInsightEntry `json:"data"`
}

type igInsightEntry struct {
	Name   string `json:"name"`
	Values []struct {
		Value int `json:"value"`
	} `json:"values"`
}

// igMediaCounts é a resposta dos contadores diretos da mídia
type igMediaCounts struct {
	LikeCount     int `json:"like_count"`
	CommentsCount int `json:"comments_count"`
}

// GetInsights busca as métricas de engajamento de uma mídia publicada e as
// mapeia para o formato comum. O Instagram não expõe impressions para mídia
// de feed nas versões atuais da API; normalizamos impressions = reach.
func (c *InstagramClient) GetInsights(mediaID string) (*domain.PostMetrics, error) {
	insightParams := url.Values{}
	insightParams.Set("metric", "reach,saved")

	var insights igInsightsResponse
	if err := c.getJSON(mediaID+"/insights", insightParams, &insights); err != nil {
		return nil, err
	}

	byName := make(map[string]int)
	for _, entry := range insights.Data {
		if len(entry.Values) > 0 {
			byName[entry.Name] = entry.Values[0].Value
		}
	}

	countParams := url.Values{}
	countParams.Set("fields", "like_count,comments_count")

	var counts igMediaCounts
	if err := c.getJSON(mediaID, countParams, &counts); err != nil {
		return nil, err
	}

	reach := byName["reach"]
	metrics := &domain.PostMetrics{
		Likes:       domain.IntPtr(counts.LikeCount),
		Comments:    domain.IntPtr(counts.CommentsCount),
		Saves:       domain.IntPtr(byName["saved"]),
		Shares:      domain.IntPtr(0),
		Reach:       domain.IntPtr(reach),
		Impressions: domain.IntPtr(reach),
	}

	logrus.WithFields(logrus.Fields{
		"media_id": mediaID,
		"reach":    reach,
		"likes":    counts.LikeCount,
	}).Debug("Insights do Instagram obtidos")

	return metrics, nil
}
