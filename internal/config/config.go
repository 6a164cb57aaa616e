package config

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Lelo88/items-web-golang/internal/faults"
)

// Config agrupa la configuración necesaria para correr la aplicación.
type Config struct {
	Host        string
	Port        string
	DatabaseURL string
	LogLevel    string
}

// Load lee variables de entorno y valida lo mínimo indispensable.
// Carga .env si existe; las variables ya exportadas tienen prioridad.
func Load() (Config, error) {
	_ = godotenv.Load()

	host := strings.TrimSpace(os.Getenv("HOST"))
	if host == "" {
		host = "127.0.0.1"
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "3000"
	}
	// Normalizamos por si alguien manda ":3000"
	port = strings.TrimPrefix(port, ":")

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return Config{}, faults.Config(fmt.Errorf("missing required env var: DATABASE_URL"))
	}

	return Config{
		Host:        host,
		Port:        port,
		DatabaseURL: databaseURL,
		LogLevel:    logLevel,
	}, nil
}

// Addr devuelve la dirección de bind del servidor HTTP.
func (config Config) Addr() string {
	return net.JoinHostPort(config.Host, config.Port)
}
