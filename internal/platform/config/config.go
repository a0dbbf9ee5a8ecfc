package config

import (
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config central del servicio. Puede venir de config.yaml o de env;
// env siempre pisa al YAML. Secretos solo por env.
type Config struct {
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:""`

	// Persistencia: si DB_DSN viene, usa Postgres; si no, archivos en DataDir.
	DBDSN   string `yaml:"-" env:"DB_DSN"`
	DataDir string `yaml:"data_dir" env:"DATA_DIR" env-default:"./data"`

	// Asistente generativo. Sin API key se usa el adapter fake (modo dev).
	GeminiAPIKey string `yaml:"-" env:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"gemini_model" env:"GEMINI_MODEL" env-default:"gemini-2.5-flash"`

	// Chequeo de recordatorios.
	ReminderInterval time.Duration `yaml:"reminder_interval" env:"REMINDER_INTERVAL" env-default:"1h"`

	CORSAllowedOriginsStr string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:""`
}

func (c Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}

func (c Config) CORSAllowedOrigins() []string {
	out := make([]string, 0)
	for _, o := range strings.Split(c.CORSAllowedOriginsStr, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Load lee config.yaml si existe y luego env.
func Load(path string) (Config, error) {
	var cfg Config
	if strings.TrimSpace(path) != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err == nil {
			return cfg, nil
		}
		// si el YAML no está, caemos a env-only
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
