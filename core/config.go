package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every knob the SDK reads. It is populated once at start-up
// and passed explicitly to the clients; nothing reads the environment ad hoc.
type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	AppName  string

	APIBaseURL     string
	RealtimeURL    string
	RequestTimeout time.Duration

	FrontendBaseURL string
	MinPayoutAmount float64
	RollbarToken    string
	Build           string
}

func LoadConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Darasa")
	v.SetDefault("apiBaseURL", "http://localhost:8000/api")
	v.SetDefault("realtimeURL", "ws://localhost:8000/ws")
	v.SetDefault("requestTimeout", 30*time.Second)
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("minPayoutAmount", 50.0)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Env:             env,
		Debug:           v.GetBool("debug"),
		TestMode:        env == "TEST",
		AppName:         v.GetString("appName"),
		APIBaseURL:      strings.TrimRight(v.GetString("apiBaseURL"), "/"),
		RealtimeURL:     v.GetString("realtimeURL"),
		RequestTimeout:  v.GetDuration("requestTimeout"),
		FrontendBaseURL: v.GetString("frontendBaseURL"),
		MinPayoutAmount: v.GetFloat64("minPayoutAmount"),
		RollbarToken:    v.GetString("rollbarToken"),
		Build:           v.GetString("build"),
	}
}
