package handler

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/catalog-social-api/infrastructure/repository"
	"github.com/vfg2006/catalog-social-api/internal/usecases/publishing"
	"github.com/vfg2006/catalog-social-api/pkg/apiErrors"
)

// PublishPostRequest é o corpo opcional da requisição de publicação
type PublishPostRequest struct {
	Force bool `json:"force"`
}

// PublishPost publica um post nos canais configurados.
// O corpo é opcional; force=true ignora a checagem de estado DRAFT.
func PublishPost(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := validation.Validate(postID, validation.Required, validation.Length(1, 64)); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de post inválido", err.Error())
			return
		}

		var req PublishPostRequest
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
				return
			}
		}

		outcome, err := service.Publish(postID, req.Force)
		if err != nil {
			handlePublishError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(outcome)
	}
}

// handlePublishError mapeia os erros do orquestrador de publicação para
// as respostas padronizadas da API
func handlePublishError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, publishing.ErrPostNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPostNotFound, "Post não encontrado", nil)

	case errors.Is(err, publishing.ErrInvalidPostStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPostStatus, err.Error(), nil)

	case errors.Is(err, publishing.ErrMissingImage):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Post não possui imagem para publicação", nil)

	case errors.Is(err, publishing.ErrNoChannelPublished):
		apiErrors.WriteError(w, apiErrors.ErrNoChannelPublished, "Nenhum canal publicou o post com sucesso", nil)

	default:
		logrus.WithError(err).Error("Erro inesperado na publicação")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao publicar post", nil)
	}
}

// GetPostFeedback retorna o snapshot de métricas e score coletado para um post
func GetPostFeedback(feedbackRepo repository.PostFeedbackRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := validation.Validate(postID, validation.Required, validation.Length(1, 64)); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de post inválido", err.Error())
			return
		}

		feedback, err := feedbackRepo.GetByPostID(postID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar feedback do post")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar feedback do post", nil)
			return
		}

		if feedback == nil {
			apiErrors.WriteError(w, apiErrors.ErrFeedbackNotFound, "Post ainda sem feedback coletado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(feedback)
	}
}
