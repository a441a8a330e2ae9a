/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"go.uber.org/zap"

	"dirpx.dev/dix/apis"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure a non-nil logger so implementations never nil-check on the hot path.
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided:
// an anonymous registry with a no-op logger.
func DefaultConfig() apis.Config {
	return apis.Config{
		Name:   "",
		Logger: zap.NewNop(),
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithName sets the registry name used in log fields and diagnostics.
func WithName(name string) Option {
	return func(c *apis.Config) {
		c.Name = name
	}
}

// WithLogger sets the logger receiving debug-level registry events.
// A nil logger resets to the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *apis.Config) {
		if l == nil {
			c.Logger = zap.NewNop()
			return
		}
		c.Logger = l
	}
}
