// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// check returns kind wrapped with every failed requirement, or nil.
func check(kind error, problems ...string) error {
	var failed []string
	for _, p := range problems {
		if p != "" {
			failed = append(failed, p)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", kind, strings.Join(failed, ", "))
}

func need(ok bool, problem string) string {
	if ok {
		return ""
	}
	return problem
}

// validate checks the merged server configuration at startup.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		check(ErrInvalidStorageConfigs,
			need(cfg.Storage.DB.DSN != "", "database DSN is empty")),
		check(ErrInvalidServerConfigs,
			need(cfg.Server.HTTPAddress != "", "listen address is empty"),
			need(cfg.Server.RequestTimeout > 0, "request timeout must be positive")),
		check(ErrInvalidAppConfigs,
			need(cfg.App.TokenSignKey != "", "token sign key is empty"),
			need(cfg.App.TokenIssuer != "", "token issuer is empty"),
			need(cfg.App.TokenDuration > 0, "token duration must be positive")),
	)
}

// validate checks the client configuration. The local replica has to
// survive restarts, so in-memory SQLite DSNs are refused.
func (cfg *ClientConfig) validate() error {
	dsn := cfg.Storage.DB.DSN
	return errors.Join(
		check(ErrInvalidStorageConfigs,
			need(dsn != "", "database DSN is empty"),
			need(!strings.Contains(dsn, "memory"), "in-memory database cannot hold the local replica")),
		check(ErrInvalidAdapterConfigs,
			need(cfg.Adapter.HTTPAddress != "", "server address is empty"),
			need(cfg.Adapter.RequestTimeout > 0, "request timeout must be positive"),
			need(cfg.Adapter.RetryCount >= 0, "retry count is negative")),
		check(ErrInvalidWorkerConfigs,
			need(cfg.Workers.SyncInterval > 0, "sync interval must be positive"),
			need(cfg.Workers.SyncConcurrency >= 1, "sync concurrency must be at least 1"),
			need(cfg.Workers.CallTimeout > 0, "sync call timeout must be positive")),
	)
}
