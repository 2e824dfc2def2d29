package client

import (
	"net/http"

	"github.com/n3eg/fetchx/config"
)

// AuthHeaderHook injects auth headers from the environment configuration.
// It only fires in development mode; the two token headers are independent,
// so either, both, or neither may be added.
func AuthHeaderHook(cfg *config.Config) BeforeRequestHook {
	return func(req *http.Request) {
		if !cfg.Development() {
			return
		}
		if cfg.GitlabToken != "" {
			req.Header.Set("X-Gitlab-Token", cfg.GitlabToken)
		}
		if cfg.AccessToken != "" {
			req.Header.Set("Authorization", "Bearer "+cfg.AccessToken)
		}
	}
}
