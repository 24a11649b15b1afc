package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avasiljevs/assetledger/internal/flagx"
	"github.com/avasiljevs/assetledger/internal/timex"
)

// JsonConfig is an intermediate DTO for reading the CLI's JSON config file.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file given via the
// -c/-config flags into the provided Config. When no file is given the
// function is a no-op; an unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
