package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LicenseSecret    string `json:"license_secret"`
		WebhookSecret    string `json:"webhook_secret"`
		AdminTokenKey    string `json:"admin_token_key"`
		AdminTokenIssuer string `json:"admin_token_issuer"`
		SessionKey       string `json:"session_key"`
		Version          string `json:"version"`
	} `json:"app,omitempty"`

	Billing struct {
		BaseURL          string   `json:"base_url"`
		APIKey           string   `json:"api_key"`
		RequestTimeout   Duration `json:"request_timeout"`
		SessionScanLimit int      `json:"session_scan_limit"`
		TeamPriceIDs     []string `json:"team_price_ids"`
	} `json:"billing,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	RateLimit struct {
		MaxRequests   int      `json:"max_requests"`
		Window        Duration `json:"window"`
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"rate_limit,omitempty"`
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
			LicenseSecret:    jsonCfg.App.LicenseSecret,
			WebhookSecret:    jsonCfg.App.WebhookSecret,
			AdminTokenKey:    jsonCfg.App.AdminTokenKey,
			AdminTokenIssuer: jsonCfg.App.AdminTokenIssuer,
			SessionKey:       jsonCfg.App.SessionKey,
			Version:          jsonCfg.App.Version,
		},
		Billing: Billing{
			BaseURL:          jsonCfg.Billing.BaseURL,
			APIKey:           jsonCfg.Billing.APIKey,
			RequestTimeout:   time.Duration(jsonCfg.Billing.RequestTimeout),
			SessionScanLimit: jsonCfg.Billing.SessionScanLimit,
			TeamPriceIDs:     jsonCfg.Billing.TeamPriceIDs,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		RateLimit: RateLimit{
			MaxRequests:   jsonCfg.RateLimit.MaxRequests,
			Window:        time.Duration(jsonCfg.RateLimit.Window),
			SweepInterval: time.Duration(jsonCfg.RateLimit.SweepInterval),
		},
		JSONFilePath: "",
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
