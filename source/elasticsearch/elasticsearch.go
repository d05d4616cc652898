// Package elasticsearch runs text structure analyses on an Elasticsearch
// cluster and returns the result in the shape used to build field cards.
package elasticsearch

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"hermannm.dev/wrap"
)

// Config holds the connection settings of the cluster.
type Config struct {
	Addresses []string
	Username  string
	Password  string
	APIKey    string
	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper
}

// Analyzer sends sample text to the find_structure API.
type Analyzer struct {
	client *elasticsearch.Client
}

func NewAnalyzer(config Config) (*Analyzer, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: config.Addresses,
		Username:  config.Username,
		Password:  config.Password,
		APIKey:    config.APIKey,
		Transport: config.Transport,
	})
	if err != nil {
		return nil, wrap.Error(err, "failed to create Elasticsearch client")
	}

	return &Analyzer{client: client}, nil
}
