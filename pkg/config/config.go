package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverMemory = "memory" // mapa en memoria, nada sobrevive al proceso
	DriverSQLite = "sqlite" // SQLite embebido (modernc), durable
	DriverNone   = "none"   // almacén ausente: load vacío, save no-op
)

// Config agrupa la configuración de la biblioteca (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	Storage StorageConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// StorageConfig configuración del almacén clave-valor.
type StorageConfig struct {
	Driver string // memory, sqlite, none
	Path   string // ruta del archivo SQLite (solo driver sqlite)
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, APP_NAME, LOG_LEVEL, STORAGE_DRIVER, STORAGE_PATH.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gestion-stock"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver: getString(v, "STORAGE_DRIVER", DriverSQLite),
			Path:   getString(v, "STORAGE_PATH", "gestion_stock.db"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
