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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/padcast/curated"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file while padcast is running ***"

// the separator between key and value in the preferences file.
const fieldSep = " :: "

// Sentinel error patterns.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	InvalidKey     = "prefs: invalid key (%s)"
	DuplicateKey   = "prefs: key already added (%s)"
	LoadError      = "prefs: load: %v"
	SaveError      = "prefs: save: %v"
	UnexpectedLine = "prefs: unexpected line in prefs file (%s)"

	// a value from the command line stack could not be set
	CommandLineError = "prefs: command line: %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, fieldSep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// must not contain spaces or the field separator.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t") || strings.Contains(key, "::") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all values to their zero value.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Save current preference values to disk. Values in the file for keys that
// have not been added to this Disk are preserved.
func (dsk *Disk) Save() error {
	data, err := load(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return curated.Errorf(SaveError, err)
	}

	for k, v := range dsk.entries {
		data[k] = v.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, fieldSep, data[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(SaveError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}

// Load preference values from disk and then apply any values on the top of the
// command line stack.
//
// If saveOnFail is true and the preferences file does not exist then the
// current values will be saved to a new file. The NoPrefsFile error is still
// returned so that the caller knows the file was missing.
func (dsk *Disk) Load(saveOnFail bool) error {
	data, err := load(dsk.path)
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFail {
			if serr := dsk.Save(); serr != nil {
				return serr
			}
		}
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
	}

	for k, v := range data {
		if p, ok := dsk.entries[k]; ok {
			if serr := p.Set(v); serr != nil {
				return curated.Errorf(LoadError, serr)
			}
		}
	}

	// command line values take precedence
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if serr := p.Set(v); serr != nil {
				return curated.Errorf(CommandLineError, k, serr)
			}
		}
	}

	return err
}

// load reads the preferences file into a map of key/value strings.
func load(path string) (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, curated.Errorf(NoPrefsFile, path)
		}
		return data, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	err = parse(f, data)
	if err != nil {
		return data, curated.Errorf(LoadError, err)
	}

	return data, nil
}

func parse(r io.Reader, data map[string]string) error {
	scanner := bufio.NewScanner(r)

	// the first line is the boilerplate warning
	if !scanner.Scan() {
		return scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return curated.Errorf(UnexpectedLine, scanner.Text())
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		kv := strings.SplitN(line, fieldSep, 2)
		if len(kv) != 2 {
			return curated.Errorf(UnexpectedLine, line)
		}
		data[kv[0]] = kv[1]
	}

	return scanner.Err()
}
