// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version
// information for cellbench.
package version

import (
	"fmt"
	"strings"
)

const (
	// semanticAlphabet defines the allowed characters for the
	// pre-release and build metadata portions of a semantic version
	// string.
	semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz-."

	// These constants define the application version and follow the
	// semantic versioning 2.0.0 spec (https://semver.org/).
	major = 0
	minor = 1
	patch = 0

	// preRelease contains the pre-release name of the application.
	// It MUST only contain characters from the semantic version
	// alphabet.
	preRelease = "pre"
)

// buildMetadata defines additional build metadata.  It is modified at
// link time for official releases and MUST only contain characters
// from the semantic version alphabet.
var buildMetadata = ""

// normalizeSemString returns the passed string stripped of all
// characters which are not valid according to the provided semantic
// versioning alphabet.
func normalizeSemString(str, alphabet string) string {
	var result strings.Builder
	for _, r := range str {
		if strings.ContainsRune(alphabet, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// String returns the application version as a properly formed string
// per the semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	// Start with the major, minor, and patch versions.
	version := fmt.Sprintf("%d.%d.%d", major, minor, patch)

	// Append pre-release version if there is one.  The hyphen called
	// for by the semantic versioning spec is automatically appended
	// and should not be contained in the pre-release string.
	if preRelease != "" {
		version += "-" + normalizeSemString(preRelease, semanticAlphabet)
	}

	// Append build metadata if there is any.  The plus called for by
	// the semantic versioning spec is automatically appended and
	// should not be contained in the build metadata string.
	if buildMetadata != "" {
		version += "+" + normalizeSemString(buildMetadata, semanticAlphabet)
	}

	return version
}
