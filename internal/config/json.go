package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SettingsFile is the JSON layout of a settings file.
type SettingsFile struct {
	Project struct {
		Root        string   `json:"root"`
		ConfigPath  string   `json:"config_path"`
		RootMarker  string   `json:"root_marker"`
		ConfigNames []string `json:"config_names"`
		EnvPrefix   string   `json:"env_prefix"`
	} `json:"project,omitempty"`

	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"log,omitempty"`

	Markdown struct {
		Out       string   `json:"out"`
		Format    string   `json:"format"`
		Exclude   []string `json:"exclude"`
		LibPath   string   `json:"lib_path"`
		AssetDest string   `json:"asset_dest"`
	} `json:"markdown,omitempty"`

	Watch struct {
		Debounce Duration `json:"debounce"`
	} `json:"watch,omitempty"`
}

func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg SettingsFile
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json settings: %w", err)
	}

	cfg := &Settings{
		Project: Project{
			Root:        jsonCfg.Project.Root,
			ConfigPath:  jsonCfg.Project.ConfigPath,
			RootMarker:  jsonCfg.Project.RootMarker,
			ConfigNames: jsonCfg.Project.ConfigNames,
			EnvPrefix:   jsonCfg.Project.EnvPrefix,
		},
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Format: jsonCfg.Log.Format,
		},
		Markdown: Markdown{
			Out:       jsonCfg.Markdown.Out,
			Format:    jsonCfg.Markdown.Format,
			Exclude:   jsonCfg.Markdown.Exclude,
			LibPath:   jsonCfg.Markdown.LibPath,
			AssetDest: jsonCfg.Markdown.AssetDest,
		},
		Watch: Watch{
			Debounce: time.Duration(jsonCfg.Watch.Debounce),
		},
		SettingsFilePath: "",
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
