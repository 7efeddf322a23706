package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/catalog-social-api/infrastructure/database/postgres"
	"github.com/vfg2006/catalog-social-api/infrastructure/integrator/meta"
	"github.com/vfg2006/catalog-social-api/infrastructure/repository"
	"github.com/vfg2006/catalog-social-api/internal/api"
	"github.com/vfg2006/catalog-social-api/internal/config"
	"github.com/vfg2006/catalog-social-api/internal/scheduler"
	"github.com/vfg2006/catalog-social-api/internal/usecases/authenticating"
	"github.com/vfg2006/catalog-social-api/internal/usecases/feedback"
	"github.com/vfg2006/catalog-social-api/internal/usecases/publishing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	postRepo := repository.NewPostRepository(pgConn)
	feedbackRepo := repository.NewPostFeedbackRepository(pgConn)
	perfRepo := repository.NewProductPerformanceRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	publishers := meta.NewPublishers(cfg)

	poller := publishing.NewMediaPoller(cfg)
	publisher := publishing.NewService(postRepo, feedbackRepo, publishers, poller)

	collector := feedback.NewService(cfg, postRepo, feedbackRepo, perfRepo, publishers)

	// Inicializa o agendador de coleta de feedback
	feedbackSyncService := scheduler.NewFeedbackSyncService(collector, cfg)

	if err := feedbackSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de coleta de feedback")
	} else {
		logrus.Info("Agendador de coleta de feedback iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		publisher,
		feedbackRepo,
		authenticator,
		feedbackSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
