package metaclient

import (
	"encoding/json"
	"errors"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/catalog-social-api/internal/config"
	"github.com/vfg2006/catalog-social-api/internal/domain"
)

// FacebookClient publica conteúdo na página do Facebook via Graph API.
//
// O Facebook não tem o recurso de container assíncrono do Instagram: fotos
// são processadas de forma síncrona. Para manter o mesmo contrato entre
// canais, a foto não-publicada faz o papel de container (single) e o post
// de feed não-publicado faz o papel de container de carrossel; o status é
// sempre FINISHED assim que o recurso existe.
type FacebookClient struct {
	baseClient
	pageID string
}

func NewFacebookClient(cfg *config.Config) *FacebookClient {
	accessToken := cfg.Meta.FacebookPageAccessToken
	if accessToken == "" {
		// Fallback para o token IG, caso a página use o mesmo usuário de sistema
		accessToken = cfg.Meta.AccessToken
	}

	return &FacebookClient{
		baseClient: newBaseClient(cfg.Meta.URL, accessToken),
		pageID:     cfg.Meta.FacebookPageID,
	}
}

// Channel identifica o canal desta implementação
func (c *FacebookClient) Channel() domain.Channel {
	return domain.ChannelFacebook
}

// CreateMediaContainer sobe a imagem como foto não-publicada da página
func (c *FacebookClient) CreateMediaContainer(imageURL, caption string, isCarouselItem bool) (string, error) {
	params := url.Values{}
	params.Set("url", imageURL)
	params.Set("published", "false")
	if !isCarouselItem {
		params.Set("caption", caption)
	}

	var resp idResponse
	if err := c.postForm(c.pageID+"/photos", params, &resp); err != nil {
		return "", err
	}

	if resp.ID == "" {
		return "", errors.New("meta: upload de foto no Facebook sem id na resposta")
	}

	logrus.WithFields(logrus.Fields{
		"photo_id":         resp.ID,
		"is_carousel_item": isCarouselItem,
	}).Info("Foto não-publicada criada na página do Facebook")

	return resp.ID, nil
}

// CreateCarouselContainer cria um post de feed não-publicado com as fotos
// anexadas; o id retornado é publicável via Publish
func (c *FacebookClient) CreateCarouselContainer(children []string, caption string) (string, error) {
	attached := make([]map[string]string, 0, len(children))
	for _, photoID := range children {
		attached = append(attached, map[string]string{"media_fbid": photoID})
	}

	attachedJSON, err := json.Marshal(attached)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("message", caption)
	params.Set("published", "false")
	params.Set("attached_media", string(attachedJSON))

	var resp idResponse
	if err := c.postForm(c.pageID+"/feed", params, &resp); err != nil {
		return "", err
	}

	if resp.ID == "" {
		return "", errors.New("meta: post de carrossel no Facebook sem id na resposta")
	}

	logrus.WithFields(logrus.Fields{
		"post_id":  resp.ID,
		"children": len(children),
	}).Info("Post de carrossel não-publicado criado no Facebook")

	return resp.ID, nil
}

// GetContainerStatus verifica se o recurso existe. Fotos e posts de página
// são processados de forma síncrona, então existir já significa pronto.
func (c *FacebookClient) GetContainerStatus(containerID string) (metadomain.ContainerStatus, error) {
	params := url.Values{}
	params.Set("fields", "id")

	var resp idResponse
	if err := c.getJSON(containerID, params, &resp); err != nil {
		return "", err
	}

	return metadomain.ContainerStatusFinished, nil
}

// fbPublishResponse cobre as duas formas de resposta de publicação da página
type fbPublishResponse struct {
	ID      string `json:"id"`
	PostID  string `json:"post_id"`
	Success bool   `json:"success"`
}

// Publish torna o container visível no feed da página. Para uma foto avulsa
// cria o post de feed com a mídia anexada; para um post de carrossel já
// existente, apenas vira a flag de publicação.
func (c *FacebookClient) Publish(containerID string) (string, error) {
	if c.isFeedPost(containerID) {
		params := url.Values{}
		params.Set("is_published", "true")

		var resp fbPublishResponse
		if err := c.postForm(containerID, params, &resp); err != nil {
			return "", err
		}

		return containerID, nil
	}

	attachedJSON, err := json.Marshal([]map[string]string{{"media_fbid": containerID}})
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("attached_media", string(attachedJSON))

	var resp fbPublishResponse
	if err := c.postForm(c.pageID+"/feed", params, &resp); err != nil {
		return "", err
	}

	postID := resp.ID
	if postID == "" {
		postID = resp.PostID
	}
	if postID == "" {
		return "", errors.New("meta: publicação no Facebook não retornou post id")
	}

	return postID, nil
}

// isFeedPost distingue ids de post de feed (pageid_postid) de ids de foto
func (c *FacebookClient) isFeedPost(id string) bool {
	for _, ch := range id {
		if ch == '_' {
			return true
		}
	}
	return false
}

// fbPostEngagement é a resposta dos contadores de engajamento de um post de página
type fbPostEngagement struct {
	Likes struct {
		Summary struct {
			TotalCount int `json:"total_count"`
		} `json:"summary"`
	} `json:"likes"`
	Comments struct {
		Summary struct {
			TotalCount int `json:"total_count"`
		} `json:"summary"`
	} `json:"comments"`
	Shares struct {
		Count int `json:"count"`
	} `json:"shares"`
}

// GetInsights busca os contadores de engajamento do post da página. O
// Facebook não reporta reach nem saves neste endpoint; esses campos ficam
// ausentes, não zerados.
func (c *FacebookClient) GetInsights(postID string) (*domain.PostMetrics, error) {
	params := url.Values{}
	params.Set("fields", "likes.summary(true),comments.summary(true),shares")

	var resp fbPostEngagement
	if err := c.getJSON(postID, params, &resp); err != nil {
		return nil, err
	}

	metrics := &domain.PostMetrics{
		Likes:    domain.IntPtr(resp.Likes.Summary.TotalCount),
		Comments: domain.IntPtr(resp.Comments.Summary.TotalCount),
		Shares:   domain.IntPtr(resp.Shares.Count),
	}

	logrus.WithFields(logrus.Fields{
		"post_id": postID,
		"likes":   resp.Likes.Summary.TotalCount,
	}).Debug("Insights do Facebook obtidos")

	return metrics, nil
}
