package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	MediaPoller  MediaPoller  `mapstructure:",squash"`
	FeedbackSync FeedbackSync `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL                 string `mapstructure:"meta_base_url"`
	URL                     string `mapstructure:"meta_url"`
	Version                 string `mapstructure:"meta_version"`
	AccessToken             string `mapstructure:"meta_access_token"`
	InstagramAccountID      string `mapstructure:"instagram_business_account_id"`
	FacebookPageID          string `mapstructure:"facebook_page_id"`
	FacebookPageAccessToken string `mapstructure:"facebook_page_access_token"`
}

// MediaPoller controla o loop de espera de processamento de mídia.
// 10 tentativas a cada 2000ms limitam a latência de publicação a ~20s
// por container.
type MediaPoller struct {
	MaxAttempts    int `mapstructure:"media_poll_max_attempts"`
	IntervalMillis int `mapstructure:"media_poll_interval_ms"`
}

type FeedbackSync struct {
	CronSchedule        string `mapstructure:"feedback_sync_cron"`
	WindowHours         int    `mapstructure:"feedback_window_hours"`
	RequestDelaySeconds int    `mapstructure:"feedback_request_delay_seconds"`
	Enabled             bool   `mapstructure:"feedback_sync_enabled"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	ServiceKeyHash  string `mapstructure:"auth_service_key_hash"`
	TokenTTLMinutes int    `mapstructure:"auth_token_ttl_minutes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/catalog")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("INSTAGRAM_BUSINESS_ACCOUNT_ID", "")
	viper.SetDefault("FACEBOOK_PAGE_ID", "")
	viper.SetDefault("FACEBOOK_PAGE_ACCESS_TOKEN", "")

	// Defaults do poller de processamento de mídia
	viper.SetDefault("MEDIA_POLL_MAX_ATTEMPTS", 10)  // 10 tentativas por container
	viper.SetDefault("MEDIA_POLL_INTERVAL_MS", 2000) // 2 segundos entre tentativas

	// Defaults da coleta de métricas de feedback
	viper.SetDefault("FEEDBACK_SYNC_CRON", "0 */6 * * *")      // A cada 6 horas
	viper.SetDefault("FEEDBACK_WINDOW_HOURS", 48)              // Posts publicados nas últimas 48h
	viper.SetDefault("FEEDBACK_REQUEST_DELAY_SECONDS", 1)      // 1 segundo entre posts
	viper.SetDefault("FEEDBACK_SYNC_ENABLED", false)           // Habilitar coleta agendada

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_SERVICE_KEY_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 60)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
