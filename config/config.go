package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/auctionworks/bidtable"
)

// Config - Application configuration for the bidtable console
type Config struct {
	CSVPath        string `yaml:"csv_path"`        // Path to the bid CSV export to load
	TableSize      int64  `yaml:"table_size"`      // Number of buckets in the hash table
	BidKey         string `yaml:"bid_key"`         // Bid id used by the find command
	CurrencySymbol string `yaml:"currency_symbol"` // Symbol stripped from amount fields
}

// Load - Returns a Config with defaults overlaid by an eventual YAML file. When configPath
// is empty the well known locations are tried and silently skipped if absent, an explicitly
// given path that cannot be read is an error.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		CSVPath:        "eBid_Monthly_Sales.csv",
		TableSize:      bidtable.DefaultTableSize,
		BidKey:         "98223",
		CurrencySymbol: "$",
	}

	if configPath == "" {
		for _, p := range []string{"configs/bidtable.yaml", "bidtable.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.TableSize <= 0 {
		cfg.TableSize = bidtable.DefaultTableSize
	}
	if cfg.CSVPath == "" {
		cfg.CSVPath = "eBid_Monthly_Sales.csv"
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "$"
	}
}
