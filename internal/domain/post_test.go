package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelTarget_Includes(t *testing.T) {
	assert.True(t, ChannelTargetBoth.Includes(ChannelInstagram))
	assert.True(t, ChannelTargetBoth.Includes(ChannelFacebook))
	assert.True(t, ChannelTargetInstagram.Includes(ChannelInstagram))
	assert.False(t, ChannelTargetInstagram.Includes(ChannelFacebook))
	assert.True(t, ChannelTargetFacebook.Includes(ChannelFacebook))
	assert.False(t, ChannelTargetFacebook.Includes(ChannelInstagram))
}

func TestPost_IsCarousel(t *testing.T) {
	t.Run("formato carrossel com múltiplas imagens", func(t *testing.T) {
		post := &Post{
			VisualFormat:   VisualFormatCarousel,
			CarouselImages: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
		}
		assert.True(t, post.IsCarousel())
	})

	t.Run("formato carrossel com uma imagem só é tratado como single", func(t *testing.T) {
		post := &Post{
			VisualFormat:   VisualFormatCarousel,
			CarouselImages: []string{"https://cdn/a.jpg"},
		}
		assert.False(t, post.IsCarousel())
	})

	t.Run("formato single nunca é carrossel", func(t *testing.T) {
		post := &Post{
			VisualFormat:   VisualFormatSingle,
			CarouselImages: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
		}
		assert.False(t, post.IsCarousel())
	})
}

func TestPost_CaptionFor(t *testing.T) {
	post := &Post{
		CaptionIG: "legenda instagram",
		CaptionFB: "legenda facebook",
	}

	assert.Equal(t, "legenda instagram", post.CaptionFor(ChannelInstagram))
	assert.Equal(t, "legenda facebook", post.CaptionFor(ChannelFacebook))

	t.Run("fallback para a legenda do outro canal", func(t *testing.T) {
		soIG := &Post{CaptionIG: "legenda instagram"}
		assert.Equal(t, "legenda instagram", soIG.CaptionFor(ChannelFacebook))

		soFB := &Post{CaptionFB: "legenda facebook"}
		assert.Equal(t, "legenda facebook", soFB.CaptionFor(ChannelInstagram))
	})
}

func TestDetermineChannel(t *testing.T) {
	igID := "17900001"
	fbID := "123_456"

	assert.Equal(t, ChannelTargetBoth, DetermineChannel(&igID, &fbID))
	assert.Equal(t, ChannelTargetInstagram, DetermineChannel(&igID, nil))
	assert.Equal(t, ChannelTargetFacebook, DetermineChannel(nil, &fbID))
}
