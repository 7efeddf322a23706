package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/catalog-social-api/internal/scheduler"
	"github.com/vfg2006/catalog-social-api/pkg/apiErrors"
)

// JobServices contém os serviços agendados expostos para execução manual
type JobServices struct {
	FeedbackSyncService *scheduler.FeedbackSyncService
}

// RunFeedbackSync dispara manualmente um ciclo de coleta de feedback
func RunFeedbackSync(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunFeedbackSync")

		if services.FeedbackSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de coleta de feedback não disponível", nil)
			return
		}

		if !services.FeedbackSyncService.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Ciclo de coleta já em andamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Coleta de feedback iniciada com sucesso",
		})
	}
}

// GetFeedbackSyncStatus retorna o status do agendador de coleta de feedback
func GetFeedbackSyncStatus(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetFeedbackSyncStatus")

		if services.FeedbackSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de coleta de feedback não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(services.FeedbackSyncService.GetStatus())
	}
}
