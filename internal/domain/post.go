package domain

import "time"

// PostStatus representa o estado do ciclo de vida de um post gerado
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusQueued    PostStatus = "QUEUED"
	PostStatusPublished PostStatus = "PUBLISHED"
	PostStatusFailed    PostStatus = "FAILED"
)

// Channel identifica um canal de publicação concreto
type Channel string

const (
	ChannelInstagram Channel = "IG"
	ChannelFacebook  Channel = "FB"
)

// ChannelTarget indica em quais canais o post deve ser publicado
type ChannelTarget string

const (
	ChannelTargetInstagram ChannelTarget = "IG"
	ChannelTargetFacebook  ChannelTarget = "FB"
	ChannelTargetBoth      ChannelTarget = "BOTH"
)

// Includes verifica se o alvo de canais cobre um canal específico
func (t ChannelTarget) Includes(c Channel) bool {
	switch t {
	case ChannelTargetBoth:
		return true
	case ChannelTargetInstagram:
		return c == ChannelInstagram
	case ChannelTargetFacebook:
		return c == ChannelFacebook
	}
	return false
}

// VisualFormat indica o formato visual do post
type VisualFormat string

const (
	VisualFormatSingle   VisualFormat = "single"
	VisualFormatCarousel VisualFormat = "carousel"
)

// Post é a unidade de conteúdo gerada para o catálogo de produtos.
// Criado pela etapa de geração (externa a este serviço); mutado apenas
// pelo orquestrador de publicação. Registro histórico, nunca deletado.
type Post struct {
	ID             string         `json:"id"`
	ProductID      string         `json:"product_id"`
	CaptionIG      string         `json:"caption_ig"`
	CaptionFB      string         `json:"caption_fb"`
	ImageURL       string         `json:"image_url"`
	CarouselImages []string       `json:"carousel_images,omitempty"`
	VisualFormat   VisualFormat   `json:"visual_format"`
	ChannelTarget  ChannelTarget  `json:"channel_target"`
	Status         PostStatus     `json:"status"`
	Channel        *ChannelTarget `json:"channel,omitempty"`
	IGMediaID      *string        `json:"ig_media_id,omitempty"`
	FBPostID       *string        `json:"fb_post_id,omitempty"`
	PublishedAt    *time.Time     `json:"published_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// IsCarousel decide se o post deve ser publicado como carrossel.
// O formato visual sozinho não basta: é preciso ter mais de uma imagem.
func (p *Post) IsCarousel() bool {
	return p.VisualFormat == VisualFormatCarousel && len(p.CarouselImages) > 1
}

// CaptionFor retorna a legenda do canal, com fallback para a do outro canal
func (p *Post) CaptionFor(c Channel) string {
	switch c {
	case ChannelInstagram:
		if p.CaptionIG != "" {
			return p.CaptionIG
		}
		return p.CaptionFB
	case ChannelFacebook:
		if p.CaptionFB != "" {
			return p.CaptionFB
		}
		return p.CaptionIG
	}
	return ""
}

// DetermineChannel deriva o canal efetivo a partir dos identificadores publicados
func DetermineChannel(igMediaID, fbPostID *string) ChannelTarget {
	switch {
	case igMediaID != nil && fbPostID != nil:
		return ChannelTargetBoth
	case igMediaID != nil:
		return ChannelTargetInstagram
	default:
		return ChannelTargetFacebook
	}
}
