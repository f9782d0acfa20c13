package config

import "time"

type HTTP struct {
	Port                string        `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout     time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ProbeListenAddress  string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":9102"`
	MetricListenAddress string        `env:"METRIC_LISTEN_ADDRESS" envDefault:":9101"`
	LogFieldMaxLen      int           `env:"LOG_FIELD_MAX_LEN" envDefault:"2000"`
}

func (h HTTP) ListenAddress() string {
	return ":" + h.Port
}
