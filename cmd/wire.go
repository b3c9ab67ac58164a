package cmd

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	onMalformedKey = "on-malformed"
	workersKey     = "workers"
)

type app struct {
	cfg *viper.Viper
	now func() time.Time
}

func wireApp() *app {
	cfg := viper.New()
	cfg.SetEnvPrefix("VELO")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(onMalformedKey, "abort")
	cfg.SetDefault(workersKey, 1)

	return &app{
		cfg: cfg,
		now: time.Now,
	}
}
