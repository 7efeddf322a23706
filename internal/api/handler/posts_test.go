package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/catalog-social-api/infrastructure/repository/mocks"
	"github.com/vfg2006/catalog-social-api/internal/api/handler/router"
	"github.com/vfg2006/catalog-social-api/internal/domain"
	"github.com/vfg2006/catalog-social-api/internal/usecases/publishing"
	"go.uber.org/mock/gomock"
)

// fakePublisher registra a chamada recebida e devolve o desfecho configurado
type fakePublisher struct {
	gotPostID string
	gotForce  bool
	outcome   *publishing.PublishOutcome
	err       error
}

func (f *fakePublisher) Publish(postID string, force bool) (*publishing.PublishOutcome, error) {
	f.gotPostID = postID
	f.gotForce = force
	return f.outcome, f.err
}

func newPostsRouter(publisher publishing.Publisher, feedbackRepo *mocks.MockPostFeedbackRepository) http.Handler {
	return router.New(
		router.WithRoutes(Posts(publisher, feedbackRepo)...),
	)
}

func TestPublishPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("publicação com sucesso", func(t *testing.T) {
		igID := "17900009"
		publisher := &fakePublisher{
			outcome: &publishing.PublishOutcome{
				PostID:    "post-1",
				Channel:   domain.ChannelTargetInstagram,
				IGMediaID: &igID,
			},
		}

		rt := newPostsRouter(publisher, mocks.NewMockPostFeedbackRepository(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/posts/post-1/publish", strings.NewReader(`{"force":true}`))
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "post-1", publisher.gotPostID)
		assert.True(t, publisher.gotForce)
		assert.Contains(t, rec.Body.String(), igID)
	})

	t.Run("sem corpo publica sem force", func(t *testing.T) {
		publisher := &fakePublisher{
			outcome: &publishing.PublishOutcome{PostID: "post-1"},
		}

		rt := newPostsRouter(publisher, mocks.NewMockPostFeedbackRepository(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/posts/post-1/publish", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, publisher.gotForce)
	})

	t.Run("post inexistente retorna 404", func(t *testing.T) {
		publisher := &fakePublisher{
			err: publishing.NewPublishError(publishing.ErrPostNotFound, "post-x", ""),
		}

		rt := newPostsRouter(publisher, mocks.NewMockPostFeedbackRepository(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/posts/post-x/publish", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "PUB_001")
	})

	t.Run("post fora de DRAFT retorna 409", func(t *testing.T) {
		publisher := &fakePublisher{
			err: publishing.NewPublishError(publishing.ErrInvalidPostStatus, "post-1", "PUBLISHED"),
		}

		rt := newPostsRouter(publisher, mocks.NewMockPostFeedbackRepository(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/posts/post-1/publish", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "PUB_002")
	})

	t.Run("nenhum canal publicado retorna 502", func(t *testing.T) {
		publisher := &fakePublisher{
			err: publishing.NewPublishError(publishing.ErrNoChannelPublished, "post-1", ""),
		}

		rt := newPostsRouter(publisher, mocks.NewMockPostFeedbackRepository(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/posts/post-1/publish", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "PUB_003")
	})
}

func TestGetPostFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("feedback coletado é retornado", func(t *testing.T) {
		feedbackRepo := mocks.NewMockPostFeedbackRepository(ctrl)
		feedbackRepo.EXPECT().GetByPostID("post-1").Return(&domain.PostFeedback{
			PostID:    "post-1",
			Channel:   domain.ChannelTargetBoth,
			PerfScore: 45,
			Metrics: &domain.PostMetrics{
				Likes: domain.IntPtr(15),
			},
		}, nil)

		rt := newPostsRouter(&fakePublisher{}, feedbackRepo)

		req := httptest.NewRequest(http.MethodGet, "/v1/posts/post-1/feedback", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"perf_score":45`)
	})

	t.Run("post sem feedback retorna 404", func(t *testing.T) {
		feedbackRepo := mocks.NewMockPostFeedbackRepository(ctrl)
		feedbackRepo.EXPECT().GetByPostID("post-x").Return(nil, nil)

		rt := newPostsRouter(&fakePublisher{}, feedbackRepo)

		req := httptest.NewRequest(http.MethodGet, "/v1/posts/post-x/feedback", nil)
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "PUB_004")
	})
}
