package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/catalog-social-api/internal/config"
	"github.com/vfg2006/catalog-social-api/internal/domain"
	"github.com/vfg2006/catalog-social-api/internal/usecases/feedback"
)

// FeedbackSyncConfig representa a configuração do agendador de coleta de feedback
type FeedbackSyncConfig struct {
	CronSchedule        string
	WindowHours         int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// FeedbackSyncService gerencia o agendamento e execução da coleta de
// métricas de feedback dos posts publicados
type FeedbackSyncService struct {
	scheduler           *gocron.Scheduler
	config              FeedbackSyncConfig
	collector           feedback.Collector
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.CollectReport
}

// NewFeedbackSyncService cria uma nova instância do serviço de coleta de feedback
func NewFeedbackSyncService(
	collector feedback.Collector,
	appConfig *config.Config,
) *FeedbackSyncService {
	// Criar a configuração com base na config global
	syncConfig := FeedbackSyncConfig{
		CronSchedule:        appConfig.FeedbackSync.CronSchedule,
		WindowHours:         appConfig.FeedbackSync.WindowHours,
		RequestDelaySeconds: appConfig.FeedbackSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.FeedbackSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"window_hours":          syncConfig.WindowHours,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de coleta de feedback carregada")

	return &FeedbackSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		collector:   collector,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *FeedbackSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Coleta agendada de feedback desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de coleta de feedback")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCollection()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta de feedback: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coleta de feedback")
		s.scheduler.Stop()
	}()

	return nil
}

// runCollection executa um ciclo de coleta. Execuções concorrentes são
// descartadas: um ciclo em andamento nunca é sobreposto por outro.
func (s *FeedbackSyncService) runCollection() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de feedback já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	window := time.Duration(s.config.WindowHours) * time.Hour
	logrus.WithField("window_hours", s.config.WindowHours).Info("Iniciando ciclo de coleta de feedback")

	report, err := s.collector.CollectRecent(window)
	if err != nil {
		logrus.WithError(err).Error("Erro no ciclo de coleta de feedback")
		return
	}

	s.syncMutex.Lock()
	s.lastReport = report
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"processed": report.Processed,
		"degraded":  report.Degraded,
	}).Info("Ciclo de coleta de feedback concluído")
}

// TriggerManualSync inicia manualmente um ciclo de coleta de feedback.
// Retorna false quando já existe um ciclo em andamento.
func (s *FeedbackSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de feedback já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta manual de feedback")
	go s.runCollection()
	return true
}

// GetStatus retorna o status atual do agendador. O mutex cobre todos os
// campos escritos pela goroutine de coleta.
func (s *FeedbackSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_window_hours":      s.config.WindowHours,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_report"] = map[string]any{
			"processed": s.lastReport.Processed,
			"degraded":  s.lastReport.Degraded,
		}
	}

	return status
}
