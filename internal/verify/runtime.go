package verify

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/klauspost/cpuid/v2"
)

// webgpuModulePath is the binding module whose version is reported as the
// accelerator runtime version.
const webgpuModulePath = "github.com/go-webgpu/webgpu"

// minRuntimeVersion is the oldest binding release the smoke tests are known
// to work with.
var minRuntimeVersion = semver.MustParse("0.1.0")

// detectRuntimeVersion reports the version of the WebGPU binding linked into
// this binary. Returns false when the binding is not part of the build
// (non-GPU platforms) or when build info is unavailable.
func detectRuntimeVersion() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, dep := range info.Deps {
		if dep.Path == webgpuModulePath && dep.Version != "" && dep.Version != "(devel)" {
			return strings.TrimPrefix(dep.Version, "v"), true
		}
	}
	return "", false
}

// normalizeVersion trims a version string to at most three dot-separated
// fields so vendor four-part versions still parse as semver.
func normalizeVersion(v string) string {
	v = strings.TrimPrefix(v, "v")
	parts := strings.Split(v, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, ".")
}

// runtimeWarning returns a warning line when the reported runtime version is
// older than the minimum tested release. Unparseable versions produce no
// warning; the version is informational either way and never fails the test.
func runtimeWarning(version string) string {
	v, err := semver.NewVersion(normalizeVersion(version))
	if err != nil {
		return ""
	}
	if v.LessThan(minRuntimeVersion) {
		return fmt.Sprintf("! Runtime version %s is older than minimum tested %s", version, minRuntimeVersion)
	}
	return ""
}

// capabilityFromVersion derives the feature-level tuple from a runtime
// version string. Unparseable versions map to (0, 0).
func capabilityFromVersion(version string) Capability {
	v, err := semver.NewVersion(normalizeVersion(version))
	if err != nil {
		return Capability{}
	}
	return Capability{Major: int(v.Major()), Minor: int(v.Minor())}
}

// hostCPU returns a one-line description of the host processor, or "" when
// the brand string is unavailable.
func hostCPU() string {
	name := cpuid.CPU.BrandName
	if name == "" {
		return ""
	}
	return fmt.Sprintf("%s (AVX2=%v, AVX512=%v)",
		name, cpuid.CPU.Supports(cpuid.AVX2), cpuid.CPU.Supports(cpuid.AVX512F))
}
