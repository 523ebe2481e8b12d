package versions

import (
	"sync"

	semver "github.com/Masterminds/semver/v3"

	"github.com/doky-sim/doky-cli/cmd/doky/config"
	"github.com/doky-sim/doky-cli/internal/errors"
)

var versionHolder *lockedVersion

type lockedVersion struct {
	current *semver.Version
	mu      sync.RWMutex
}

func init() {
	versionHolder = &lockedVersion{current: parseCurrent(config.Version)}
}

func parseCurrent(versionStr string) *semver.Version {
	current, err := semver.NewVersion(versionStr)
	if err != nil {
		// Assume this is a development build and it is newer than any release.
		current = semver.MustParse("9999+" + versionStr)
	}
	return current
}

func GetCliCurrentVersion() *semver.Version {
	versionHolder.mu.RLock()
	defer versionHolder.mu.RUnlock()

	return versionHolder.current
}

// SetCliCurrentVersion replaces the running version, falling back to a
// development version when versionStr is not semver.
func SetCliCurrentVersion(versionStr string) {
	current := parseCurrent(versionStr)

	versionHolder.mu.Lock()
	versionHolder.current = current
	versionHolder.mu.Unlock()
}

// CheckRequirement errors when the running CLI does not satisfy constraint,
// e.g. ">= 1.2". An empty constraint always passes.
func CheckRequirement(constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "unable to parse version requirement %q", constraint)
	}

	current := GetCliCurrentVersion()
	if !c.Check(current) {
		return errors.Errorf("doky %s does not satisfy the required version %q", current, constraint)
	}

	return nil
}
