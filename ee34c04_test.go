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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/ee34c04/test"
)

func TestVersion(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"version"}, tw), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "ee34c04 "))
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "available sub-modes: READ, WRITE, DUMP, LOAD, MONITOR, STATE, VERSION"))
}

func TestBadFlag(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, tw), 10)
}

func TestWriteRead(t *testing.T) {
	image := filepath.Join(t.TempDir(), "image.bin")

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-image", image, "write", "0x123", "0xab"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "")

	// image file has been saved with the new value
	data, err := os.ReadFile(image)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(data), 512)
	test.ExpectEquality(t, data[0x123], uint8(0xab))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-image", image, "read", "0x123"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "123  ab\n")

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-image", image, "-trace", "read", "-length", "2", "0x122"}, tw), 0)
	test.ExpectEquality(t, tw.String(),
		"122  ff ab\n"+
			"37 W [00 00]\n"+
			"50 WR [22] [ff]\n"+
			"50 WR [22] [ff ab]\n")
}

func TestWriteArray(t *testing.T) {
	image := filepath.Join(t.TempDir(), "image.bin")

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-image", image, "-pins", "011", "write", "0x10", "1", "2", "3", "4"}, tw), 0)

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-image", image, "-pins", "011", "read", "-length", "4", "0x10"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "010  01 02 03 04\n")

	// three bytes is not a valid payload
	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-image", image, "write", "0x10", "1", "2", "3"}, tw), 20)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "payload must be 2, 4, 8 or 16 bytes"))
}

func TestLoadDump(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "image.bin")
	input := filepath.Join(dir, "input.bin")
	output := filepath.Join(dir, "output.bin")

	in := make([]uint8, 200)
	for i := range in {
		in[i] = uint8(i)
	}
	test.DemandSuccess(t, os.WriteFile(input, in, 0600))

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-image", image, "-prefs", "writecycle::0s", "load", "-at", "0x70", input}, tw), 0)
	test.ExpectEquality(t, tw.String(), "200 bytes written\n")

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"-image", image, "dump", "-out", output}, tw), 0)

	out, err := os.ReadFile(output)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(out), 512)
	test.ExpectEquality(t, string(out[0x70:0x70+200]), string(in))
	test.ExpectEquality(t, out[0x6f], uint8(0xff))
	test.ExpectEquality(t, out[0x70+200], uint8(0xff))
}

func TestUnusedPrefs(t *testing.T) {
	image := filepath.Join(t.TempDir(), "image.bin")

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-image", image, "-prefs", "foo::bar", "read", "0"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "000  ff\n* unused preferences: foo::bar\n")
}

func TestState(t *testing.T) {
	image := filepath.Join(t.TempDir(), "image.bin")

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-image", image, "state"}, tw), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "digraph"))
}

func TestErrors(t *testing.T) {
	image := filepath.Join(t.TempDir(), "image.bin")

	for _, args := range [][]string{
		{"-image", image, "read"},
		{"-image", image, "read", "0x200"},
		{"-image", image, "read", "zero"},
		{"-image", image, "write", "0x10"},
		{"-image", image, "write", "0x10", "0x100"},
		{"-image", image, "-bus", "serial", "read", "0"},
		{"-image", image, "-pins", "2", "read", "0"},
	} {
		tw := &test.CompareWriter{}
		test.ExpectEquality(t, launch(args, tw), 20, strings.Join(args, " "))
	}
}
