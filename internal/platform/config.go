package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notoo/pkg/core"
)

// ConfigFileName is looked up in the store directory.
const ConfigFileName = "notoo.yaml"

// FileConfig is the content of notoo.yaml.
//
//	native_language: pl
//	languages:
//	  - folder: Hiszpański
//	    prefix: es
//	    code: es-ES
type FileConfig struct {
	NativeLanguage string              `yaml:"native_language"`
	Languages      []core.LanguageRule `yaml:"languages"`
}

// LoadConfig reads a config file. A missing file yields an empty config.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	for i, r := range cfg.Languages {
		if r.Code == "" || (r.Folder == "" && r.Prefix == "") {
			return cfg, fmt.Errorf("invalid config %s: language rule %d needs a code and a folder or prefix", path, i+1)
		}
	}
	return cfg, nil
}

// languageTable merges option rules, file rules and the defaults, in that
// order of precedence.
func languageTable(o *options, file FileConfig) *core.LanguageTable {
	defaults := core.DefaultLanguageTable()

	rules := make([]core.LanguageRule, 0, len(o.languages)+len(file.Languages)+len(defaults.Rules))
	rules = append(rules, o.languages...)
	rules = append(rules, file.Languages...)
	rules = append(rules, defaults.Rules...)

	table := &core.LanguageTable{Rules: rules, Fallback: defaults.Fallback}
	if file.NativeLanguage != "" {
		table.Fallback = file.NativeLanguage
	}
	if o.native != "" {
		table.Fallback = o.native
	}
	return table
}

func configPath(uri string, o *options) string {
	if o.configFile != "" {
		return o.configFile
	}
	if o.adapter != "fs" || o.store != nil || uri == "" {
		return ""
	}
	return filepath.Join(uri, ConfigFileName)
}
