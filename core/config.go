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

type (
	Config struct {
		AppName      string
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		RollbarToken string
		Server       ServerConfig
		Storage      StorageConfig
	}

	ServerConfig struct {
		Address         string
		DebugRequests   bool
		ShutdownTimeout time.Duration
	}

	StorageConfig struct {
		DataFile string
	}
)

// NewConfig reads the configuration from the environment (and `config/.env.<env>` if it exists).
// Env vars are prefixed with the uppercase env name, eg. DEV_STORAGE_DATAFILE.
func NewConfig() *Config {
	return newConfig(viper.New())
}

func newConfig(v *viper.Viper) *Config {
	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "Matokeo")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("build", "develop")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.debugRequests", true)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("storage.dataFile", "student_results.json")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

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
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			DebugRequests:   v.GetBool("server.debugRequests"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
		},
		Storage: StorageConfig{
			DataFile: v.GetString("storage.dataFile"),
		},
	}
}
