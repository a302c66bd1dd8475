// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable the daemon and the CLI read, so
// generic names such as SERVER_ADDRESS from the surrounding environment are
// never picked up. APP_VERSION is read as SAFE_PREVIEW_APP_VERSION.
const EnvPrefix = "SAFE_PREVIEW_"

// parseEnv fills cfg from the environment through the `env` and `envPrefix`
// tags of [StructuredConfig], below [EnvPrefix]. Unset variables leave their
// fields untouched.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
