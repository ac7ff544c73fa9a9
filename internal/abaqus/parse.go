// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package abaqus

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	spadeerrors "spade/cli/internal/errors"
)

var (
	officialVersionRegex  = regexp.MustCompile(`(?i)official\s+version:\s+abaqus\s+(.*)`)
	installationPathRegex = regexp.MustCompile(`Abaqus is located in the directory(.*)`)
)

// FindCommand returns the first candidate lookPath can resolve, along with the resolved path.
func FindCommand(lookPath func(string) (string, error), candidates []string) (command, path string, err error) {
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if p, lookErr := lookPath(c); lookErr == nil {
			return c, p, nil
		}
	}
	return "", "", spadeerrors.New(spadeerrors.ResolutionFailed,
		fmt.Sprintf("Could not find any executable on PATH in: %s", strings.Join(candidates, " ")))
}

// ParseOfficialVersion extracts the version from `abaqus information=version` output.
func ParseOfficialVersion(output string) (string, error) {
	m := officialVersionRegex.FindStringSubmatch(output)
	if m == nil {
		return "", spadeerrors.New(spadeerrors.VersionQueryFailed, "Could not find Abaqus official version")
	}
	return strings.TrimSpace(m[1]), nil
}

// ParseInstallationPaths extracts the sorted installation directories from
// `abaqus information=environment` output. It returns nil when the line is absent.
func ParseInstallationPaths(output string) []string {
	m := installationPathRegex.FindStringSubmatch(output)
	if m == nil {
		return nil
	}
	paths := strings.Fields(m[1])
	sort.Strings(paths)
	return paths
}

// CodePaths picks the installation root and the bin/include directories under the
// directory named codeDir.
func CodePaths(paths []string, codeDir string) (installation, bin, include string, err error) {
	if len(paths) == 0 {
		return "", "", "", spadeerrors.New(spadeerrors.VersionQueryFailed, "Could not find Abaqus installation directory")
	}
	installation = paths[0]
	for _, p := range paths {
		if filepath.Base(p) == codeDir {
			return installation, filepath.Join(p, "bin"), filepath.Join(p, "include"), nil
		}
	}
	return installation, "", "", spadeerrors.New(spadeerrors.VersionQueryFailed,
		fmt.Sprintf("Could not find Abaqus '%s' directory", codeDir))
}
