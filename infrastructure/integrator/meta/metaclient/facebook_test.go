package metaclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/catalog-social-api/internal/config"
	"github.com/vfg2006/catalog-social-api/internal/domain"
)

func newFacebookTestClient(serverURL string) *FacebookClient {
	return NewFacebookClient(&config.Config{
		Meta: config.Meta{
			URL:                     serverURL,
			FacebookPageID:          "555000",
			FacebookPageAccessToken: "tok-fb",
		},
	})
}

func TestNewFacebookClient_FallbackParaTokenIG(t *testing.T) {
	client := NewFacebookClient(&config.Config{
		Meta: config.Meta{
			URL:            "http://unused",
			AccessToken:    "tok-ig",
			FacebookPageID: "555000",
		},
	})

	assert.Equal(t, "tok-ig", client.accessToken)
}

func TestFacebookClient_CreateMediaContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/555000/photos", r.URL.Path)
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "tok-fb", r.PostForm.Get("access_token"))
		assert.Equal(t, "https://cdn/img.jpg", r.PostForm.Get("url"))
		assert.Equal(t, "false", r.PostForm.Get("published"))
		assert.Equal(t, "legenda", r.PostForm.Get("caption"))

		w.Write([]byte(`{"id":"photo-1"}`))
	}))
	defer server.Close()

	client := newFacebookTestClient(server.URL)

	photoID, err := client.CreateMediaContainer("https://cdn/img.jpg", "legenda", false)
	assert.NoError(t, err)
	assert.Equal(t, "photo-1", photoID)
}

func TestFacebookClient_CreateCarouselContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/555000/feed", r.URL.Path)
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "legenda", r.PostForm.Get("message"))
		assert.Equal(t, "false", r.PostForm.Get("published"))
		assert.JSONEq(t,
			`[{"media_fbid":"photo-1"},{"media_fbid":"photo-2"}]`,
			r.PostForm.Get("attached_media"),
		)

		w.Write([]byte(`{"id":"555000_777"}`))
	}))
	defer server.Close()

	client := newFacebookTestClient(server.URL)

	postID, err := client.CreateCarouselContainer([]string{"photo-1", "photo-2"}, "legenda")
	assert.NoError(t, err)
	assert.Equal(t, "555000_777", postID)
}

func TestFacebookClient_GetContainerStatus_SempreFinished(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/photo-1", r.URL.Path)
		w.Write([]byte(`{"id":"photo-1"}`))
	}))
	defer server.Close()

	client := newFacebookTestClient(server.URL)

	status, err := client.GetContainerStatus("photo-1")
	assert.NoError(t, err)
	assert.Equal(t, metadomain.ContainerStatusFinished, status)
}

func TestFacebookClient_Publish_FotoAvulsa(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Id de foto (sem underscore) vira post de feed com mídia anexada
		require.Equal(t, "/555000/feed", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.JSONEq(t, `[{"media_fbid":"photo-1"}]`, r.PostForm.Get("attached_media"))

		w.Write([]byte(`{"id":"555000_888"}`))
	}))
	defer server.Close()

	client := newFacebookTestClient(server.URL)

	postID, err := client.Publish("photo-1")
	assert.NoError(t, err)
	assert.Equal(t, "555000_888", postID)
}

func TestFacebookClient_Publish_PostDeFeedExistente(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Id com underscore é post de feed: basta virar a flag de publicação
		require.Equal(t, "/555000_777", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "true", r.PostForm.Get("is_published"))

		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := newFacebookTestClient(server.URL)

	postID, err := client.Publish("555000_777")
	assert.NoError(t, err)
	assert.Equal(t, "555000_777", postID)
}

func TestFacebookClient_GetInsights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/555000_777", r.URL.Path)
		assert.Equal(t, "likes.summary(true),comments.summary(true),shares", r.URL.Query().Get("fields"))

		w.Write([]byte(`{
			"likes":{"summary":{"total_count":30}},
			"comments":{"summary":{"total_count":4}},
			"shares":{"count":2}
		}`))
	}))
	defer server.Close()

	client := newFacebookTestClient(server.URL)

	metrics, err := client.GetInsights("555000_777")
	assert.NoError(t, err)
	assert.Equal(t, 30, *metrics.Likes)
	assert.Equal(t, 4, *metrics.Comments)
	assert.Equal(t, 2, *metrics.Shares)

	// Reach e saves não existem neste endpoint: ausentes, não zerados
	assert.Nil(t, metrics.Reach)
	assert.Nil(t, metrics.Saves)
	assert.Nil(t, metrics.Impressions)
}

func TestFacebookClient_Channel(t *testing.T) {
	client := newFacebookTestClient("http://unused")
	assert.Equal(t, domain.ChannelFacebook, client.Channel())
}
