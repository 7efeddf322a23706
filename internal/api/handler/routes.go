package handler

import (
	"net/http"

	"github.com/vfg2006/catalog-social-api/infrastructure/repository"
	"github.com/vfg2006/catalog-social-api/internal/api/handler/router"
	"github.com/vfg2006/catalog-social-api/internal/usecases/authenticating"
	"github.com/vfg2006/catalog-social-api/internal/usecases/publishing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Posts(publisher publishing.Publisher, feedbackRepo repository.PostFeedbackRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/posts/:id/publish",
			Method:  http.MethodPost,
			Handler: PublishPost(publisher),
		},
		{
			Path:    "/v1/posts/:id/feedback",
			Method:  http.MethodGet,
			Handler: GetPostFeedback(feedbackRepo),
		},
	}
}

func Jobs(services JobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jobs/feedback/run",
			Method:  http.MethodPost,
			Handler: RunFeedbackSync(services),
		},
		{
			Path:    "/v1/jobs/feedback/status",
			Method:  http.MethodGet,
			Handler: GetFeedbackSyncStatus(services),
		},
	}
}
