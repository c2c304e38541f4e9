package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ClientJSONConfig mirrors [ClientConfig] with JSON tags and string-friendly
// durations for file-based configuration.
type ClientJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		StorageKey    string   `json:"storage_key"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Backend struct {
		Latency Duration `json:"latency"`
	} `json:"backend,omitempty"`

	Breach struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		Offline        bool     `json:"offline"`
	} `json:"breach,omitempty"`

	Workers struct {
		BreachCheckInterval Duration `json:"breach_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg ClientJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &ClientConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			StorageKey:    jsonCfg.App.StorageKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Backend: Backend{
			Latency: time.Duration(jsonCfg.Backend.Latency),
		},
		Breach: Breach{
			BaseURL:        jsonCfg.Breach.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Breach.RequestTimeout),
			Offline:        jsonCfg.Breach.Offline,
		},
		Workers: Workers{
			BreachCheckInterval: time.Duration(jsonCfg.Workers.BreachCheckInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}
