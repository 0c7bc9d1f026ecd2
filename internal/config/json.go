package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		PasswordHashCost    int      `json:"password_hash_cost"`
		AdminUsernames      []string `json:"admin_usernames"`
		DeleteRequiresAdmin bool     `json:"delete_requires_admin"`
		Version             string   `json:"version"`
		LogLevel            string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		HashConcurrency int `json:"hash_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost:    jsonCfg.App.PasswordHashCost,
			AdminUsernames:      jsonCfg.App.AdminUsernames,
			DeleteRequiresAdmin: jsonCfg.App.DeleteRequiresAdmin,
			Version:             jsonCfg.App.Version,
			LogLevel:            jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			HashConcurrency: jsonCfg.Workers.HashConcurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
