// This file is part of Padcast.
//
// Padcast is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padcast is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padcast.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources when running from a development directory.
const baseResourcePath = ".padcast"

// the directory name used in the user's config directory.
const configDir = "padcast"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
//
// The subPth argument names a directory that will be created if it does not
// exist. The file argument is joined to the path but is not created. Either
// argument can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0o700); err != nil {
			return "", err
		}
	}

	return filepath.Join(pth, file), nil
}

// getBasePath returns baseResourcePath if it is found in the current
// directory. otherwise it returns the configDir in the user's config
// directory.
func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configDir), nil
}
