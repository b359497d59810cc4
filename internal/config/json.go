package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// fileConfig is the on-disk layout of the JSON config file. Keys are
// snake_case and durations may be strings ("30s") or nanosecond numbers.
type fileConfig struct {
	App     fileApp     `json:"app"`
	Storage fileStorage `json:"storage"`
	Server  fileServer  `json:"server"`
	Adapter fileAdapter `json:"adapter"`
}

type fileApp struct {
	TokenSignKey  string   `json:"token_sign_key"`
	TokenDuration Duration `json:"token_duration"`
	Version       string   `json:"version"`
}

type fileStorage struct {
	DB struct {
		DSN string `json:"dsn"`
	} `json:"db"`
	Files struct {
		UsersFile string `json:"users_file"`
	} `json:"files"`
}

type fileServer struct {
	HTTPAddress    string   `json:"http_address"`
	RequestTimeout Duration `json:"request_timeout"`
	AllowedOrigins []string `json:"allowed_origins"`
}

type fileAdapter struct {
	HTTPAddress    string   `json:"http_address"`
	RequestTimeout Duration `json:"request_timeout"`
}

func (f fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.App.TokenSignKey,
			TokenDuration: time.Duration(f.App.TokenDuration),
			Version:       f.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: f.Storage.DB.DSN},
			Files: Files{UsersFile: f.Storage.Files.UsersFile},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			AllowedOrigins: f.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
	}
}

// parseJSON reads the config file at path. Unknown keys are rejected so a
// misspelled setting does not silently fall back to its default.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var f fileConfig
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("error decoding json config %s: %w", path, err)
	}

	return f.structured(), nil
}

// Duration decodes either a Go duration string or a nanosecond count.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid duration %s", b)
	}
	ns, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return fmt.Errorf("invalid duration %s", b)
		}
		ns = int64(f)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
