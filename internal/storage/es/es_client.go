package es

import (
	"errors"
	"regexp"

	"github.com/elastic/go-elasticsearch/v8"
)

const DefaultIndexName = "kobe_runs"

// index names must be lowercase and cannot start with -, _ or +
var indexNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func (c ClientConfig) Validate() error {
	if len(c.Addresses) == 0 {
		return errors.New("elasticsearch configuration is incomplete: addresses are missing")
	}
	if !indexNamePattern.MatchString(c.IndexName) {
		return errors.New("elasticsearch index name must be lowercase and start with a letter or digit")
	}
	return nil
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
