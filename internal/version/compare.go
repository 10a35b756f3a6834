package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// CheckConfigCompatibility checks whether a pipeline configuration written for
// configVersion can be run by an engine at engineVersion.
//
// Compatibility Rules:
//   - If either version is "main" (development build), compatibility check is skipped
//   - Major versions must match exactly
//   - The engine minor version must be at least the config minor version
//   - Patch versions can differ
//
// Examples:
//   - Engine 1.2.0, Config 1.2.0 -> OK
//   - Engine 1.2.0, Config 1.2.7 -> OK (patch differs)
//   - Engine 1.3.0, Config 1.2.0 -> OK (config predates the engine)
//   - Engine 1.2.0, Config 1.3.0 -> ERROR (config needs a newer engine)
//   - Engine 2.0.0, Config 1.2.0 -> ERROR (major differs)
func CheckConfigCompatibility(engineVersion, configVersion string) error {
	engineVersion = strings.TrimPrefix(engineVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if engineVersion == "main" || configVersion == "main" {
		return nil
	}

	engineSemver, err := semver.NewVersion(engineVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid engine version '%s'", engineVersion)
	}

	configSemver, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if engineSemver.Major() != configSemver.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "major version mismatch: engine is %d.x.x but config requires %d.x.x",
			engineSemver.Major(), configSemver.Major())
	}

	// Compare the release only so that pre-release engines still accept their own configs.
	release, err := engineSemver.SetPrerelease("")
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid engine version '%s'", engineVersion)
	}

	constraint, err := semver.NewConstraint(fmt.Sprintf(">= %d.%d.0", configSemver.Major(), configSemver.Minor()))
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if !constraint.Check(&release) {
		return errors.Newf(errors.ErrCodeVersionMismatch, "minor version mismatch: engine is %d.%d.x but config requires at least %d.%d.x",
			engineSemver.Major(), engineSemver.Minor(),
			configSemver.Major(), configSemver.Minor())
	}

	return nil
}
