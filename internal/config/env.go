package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	StatusAddr           string
	GinMode              string
	JournalDSN           string
	ReceiptDir           string
	LogFile              string
	OperatorPasswordHash string
	JWTSecret            string
	CORSAllowedOrigins   []string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads configuration from the environment, after loading .env when present.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to load .env: %v", err)
	}
	return FromLookup(os.Getenv)
}

// FromLookup builds Env from an arbitrary getter.
func FromLookup(get func(string) string) Env {
	env := Env{
		StatusAddr:           strings.TrimSpace(get("STATUS_ADDR")),
		GinMode:              strings.TrimSpace(get("GIN_MODE")),
		JournalDSN:           strings.TrimSpace(get("JOURNAL_DSN")),
		ReceiptDir:           strings.TrimSpace(get("RECEIPT_DIR")),
		LogFile:              strings.TrimSpace(get("LOG_FILE")),
		OperatorPasswordHash: strings.TrimSpace(get("OPERATOR_PASSWORD_HASH")),
		JWTSecret:            strings.TrimSpace(get("JWT_SECRET")),
		CORSAllowedOrigins:   defaultOrigins,
	}

	if raw := strings.TrimSpace(get("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins := []string{}
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
		env.CORSAllowedOrigins = origins
	}
	return env
}

// OperatorAuthEnabled reports whether operator tokens can be issued.
func (e Env) OperatorAuthEnabled() bool {
	return e.OperatorPasswordHash != "" && e.JWTSecret != ""
}
