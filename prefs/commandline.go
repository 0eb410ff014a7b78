// This file is part of ee34c04.
//
// ee34c04 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ee34c04 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ee34c04.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/ee34c04/curated"
)

// Value is a preference value as it appeared on the command line.
type Value string

// Sentinal error patterns returned by the typed accessors.
const (
	InvalidValue = "prefs: invalid value for %s (%v)"
)

const (
	pairSeparator     = ";"
	keyValueSeparator = "::"
)

var stack []map[string]Value

// PushCommandLineStack parses a preferences string and adds it as a new group.
// Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]Value)

	for _, p := range strings.Split(prefs, pairSeparator) {
		kv := strings.Split(p, keyValueSeparator)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if key == "" {
			continue
		}
		group[key] = Value(strings.TrimSpace(kv[1]))
	}

	stack = append(stack, group)
}

// PopCommandLineStack removes the most recent group. The values in the group
// that were never read are returned in sorted order in the same form as
// accepted by PushCommandLineStack().
func PopCommandLineStack() string {
	if len(stack) == 0 {
		return ""
	}

	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s%s%s", k, keyValueSeparator, top[k]))
	}

	return strings.Join(s, pairSeparator+" ")
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	return len(stack)
}

// GetCommandLinePref returns the value for key in the most recent group. The
// value is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	if len(stack) == 0 {
		return false, ""
	}

	top := stack[len(stack)-1]
	v, ok := top[key]
	if ok {
		delete(top, key)
	}
	return ok, v
}

// GetString returns the value for key or def if the key is not present.
func GetString(key string, def string) string {
	ok, v := GetCommandLinePref(key)
	if !ok {
		return def
	}
	return string(v)
}

// GetInt returns the value for key or def if the key is not present. Values
// can be given in any base understood by strconv.ParseInt(), for example
// 0x1f.
func GetInt(key string, def int) (int, error) {
	ok, v := GetCommandLinePref(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(string(v), 0, 0)
	if err != nil {
		return def, curated.Errorf(InvalidValue, key, v)
	}
	return int(n), nil
}

// GetBool returns the value for key or def if the key is not present.
func GetBool(key string, def bool) (bool, error) {
	ok, v := GetCommandLinePref(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(string(v))
	if err != nil {
		return def, curated.Errorf(InvalidValue, key, v)
	}
	return b, nil
}

// GetDuration returns the value for key or def if the key is not present.
func GetDuration(key string, def time.Duration) (time.Duration, error) {
	ok, v := GetCommandLinePref(key)
	if !ok {
		return def, nil
	}
	d, err := time.ParseDuration(string(v))
	if err != nil {
		return def, curated.Errorf(InvalidValue, key, v)
	}
	return d, nil
}
