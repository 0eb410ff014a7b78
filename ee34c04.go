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
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/ee34c04/eeprom"
	"github.com/jetsetilly/ee34c04/gobotbus"
	"github.com/jetsetilly/ee34c04/i2c"
	"github.com/jetsetilly/ee34c04/logger"
	"github.com/jetsetilly/ee34c04/modalflag"
	"github.com/jetsetilly/ee34c04/monitor"
	"github.com/jetsetilly/ee34c04/prefs"
	"github.com/jetsetilly/ee34c04/resources"
	"github.com/jetsetilly/ee34c04/sim"
	"github.com/jetsetilly/ee34c04/statsview"
	"github.com/jetsetilly/ee34c04/version"
	"gobot.io/x/gobot/v2/platforms/raspi"
)

// name of the image file for the simulated device in the resources directory
const defaultImage = "sim.bin"

func main() {
	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	exitVal := make(chan int)
	go func() {
		exitVal <- launch(os.Args[1:], os.Stdout)
	}()

	select {
	case <-intChan:
		fmt.Print("\r")
		os.Exit(1)
	case v := <-exitVal:
		os.Exit(v)
	}
}

// options shared by all modes that use a device.
type options struct {
	bus   *string
	i2c   *int
	pins  *string
	image *string
	log   *bool
	trace *bool
	prefs *string
}

// launch processes the command line and returns the exit status.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("READ", "WRITE", "DUMP", "LOAD", "MONITOR", "STATE", "VERSION")
	md.AdditionalHelp("addresses and values can be decimal, hex (0x1ff), octal (0o777) or binary (0b1)")

	opts := options{
		bus:   md.AddString("bus", "sim", "bus type: SIM, RASPI"),
		i2c:   md.AddInt("i2c", -1, "i2c bus number (-1 for the adaptor default)"),
		pins:  md.AddString("pins", "000", "state of the A2, A1 and A0 pins"),
		image: md.AddString("image", "", "image file for the simulated device (default is in the resources directory)"),
		log:   md.AddBool("log", false, "echo log to stdout"),
		trace: md.AddBool("trace", false, "print bus transactions on exit"),
		prefs: md.AddString("prefs", "", "preferences, for example \"writecycle::10ms\""),
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *opts.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*opts.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "* unused preferences: %s\n", unused)
		}
	}()

	switch md.Mode() {
	case "READ":
		err = read(md, opts, output)
	case "WRITE":
		err = write(md, opts, output)
	case "DUMP":
		err = dump(md, opts, output)
	case "LOAD":
		err = load(md, opts, output)
	case "MONITOR":
		err = monitorMode(md, opts, output)
	case "STATE":
		err = state(md, opts, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// session is an open device and the means to close it.
type session struct {
	dev   *eeprom.Device
	trace *i2c.Trace
	close []func() error
}

// end closes the session in the reverse order in which it was opened.
func (s *session) end(output io.Writer) error {
	if s.trace != nil {
		fmt.Fprint(output, s.trace)
	}

	var err error
	for i := len(s.close) - 1; i >= 0; i-- {
		if e := s.close[i](); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// open the device as described by the options.
func open(opts options) (*session, error) {
	pins, err := eeprom.ParsePins(*opts.pins)
	if err != nil {
		return nil, err
	}

	s := &session{}

	var bus eeprom.Bus

	switch strings.ToUpper(*opts.bus) {
	case "SIM":
		ee := sim.NewEEPROM(pins)

		path := *opts.image
		if path == "" {
			path, err = resources.JoinPath(defaultImage)
			if err != nil {
				return nil, err
			}
		}

		if err := ee.Load(path); err != nil {
			return nil, err
		}

		s.close = append(s.close, func() error {
			if ee.IsSaved() {
				return nil
			}
			return ee.Save(path)
		})

		bus = ee

	case "RASPI":
		busNr := *opts.i2c
		busNr, err = prefs.GetInt("i2c", busNr)
		if err != nil {
			return nil, err
		}

		adaptor := raspi.NewAdaptor()
		if err := adaptor.Connect(); err != nil {
			return nil, err
		}

		gb := gobotbus.New(adaptor, busNr)

		s.close = append(s.close, adaptor.Finalize, gb.Close)

		bus = gb

	default:
		return nil, fmt.Errorf("unknown bus type: %s", *opts.bus)
	}

	if *opts.trace {
		s.trace = i2c.NewTrace("", bus)
		bus = s.trace
	}

	s.dev = eeprom.New(bus, pins)

	return s, nil
}

// run opens a session and calls fn with the device. The session is closed
// whether or not fn succeeds.
func run(opts options, output io.Writer, fn func(dev *eeprom.Device) error) (rerr error) {
	s, err := open(opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.end(output); err != nil && rerr == nil {
			rerr = err
		}
	}()

	return fn(s.dev)
}

func parseAddress(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address: %s", s)
	}
	return uint32(v), nil
}

func parseValue(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid value: %s", s)
	}
	return uint8(v), nil
}

func read(md *modalflag.Modes, opts options, output io.Writer) error {
	md.NewMode()
	length := md.AddInt("length", 1, "number of bytes to read")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires a single address", md)
	}

	address, err := parseAddress(md.GetArg(0))
	if err != nil {
		return err
	}

	if *length < 1 {
		return fmt.Errorf("length must be at least one")
	}

	return run(opts, output, func(dev *eeprom.Device) error {
		if *length == 1 {
			v, err := dev.ReadByte(address)
			if err != nil {
				return err
			}
			monitor.Hexdump(output, address, []uint8{v})
			return nil
		}

		data := make([]uint8, *length)
		if err := dev.ReadByteArray(address, data); err != nil {
			return err
		}
		monitor.Hexdump(output, address, data)
		return nil
	})
}

func write(md *modalflag.Modes, opts options, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) < 2 {
		return fmt.Errorf("%s mode requires an address and at least one value", md)
	}

	address, err := parseAddress(md.GetArg(0))
	if err != nil {
		return err
	}

	var data []uint8
	for _, a := range md.RemainingArgs()[1:] {
		v, err := parseValue(a)
		if err != nil {
			return err
		}
		data = append(data, v)
	}

	return run(opts, output, func(dev *eeprom.Device) error {
		if len(data) == 1 {
			return dev.WriteByte(address, data[0])
		}
		return dev.WriteByteArray(address, data)
	})
}

func dump(md *modalflag.Modes, opts options, output io.Writer) error {
	md.NewMode()
	out := md.AddString("out", "", "write raw contents to file rather than a hex dump to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return run(opts, output, func(dev *eeprom.Device) error {
		var data [eeprom.Size]uint8
		st := eeprom.NewStream(dev, 0)
		if _, err := io.ReadFull(st, data[:]); err != nil {
			return err
		}

		if *out == "" {
			monitor.Hexdump(output, 0, data[:])
			return nil
		}

		return os.WriteFile(*out, data[:], 0600)
	})
}

func load(md *modalflag.Modes, opts options, output io.Writer) error {
	md.NewMode()
	at := md.AddString("at", "0", "address at which to start writing")
	writeCycle := md.AddDuration("writecycle", eeprom.DefaultWriteCycle, "time to wait after each write")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires a single file", md)
	}

	address, err := parseAddress(*at)
	if err != nil {
		return err
	}

	cycle, err := prefs.GetDuration("writecycle", *writeCycle)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	return run(opts, output, func(dev *eeprom.Device) error {
		st := eeprom.NewStream(dev, cycle)
		if _, err := st.Seek(int64(address), io.SeekStart); err != nil {
			return err
		}
		n, err := st.Write(data)
		fmt.Fprintf(output, "%d bytes written\n", n)
		return err
	})
}

func monitorMode(md *modalflag.Modes, opts options, output io.Writer) error {
	md.NewMode()
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		statsview.Launch(output)
	}

	return run(opts, output, func(dev *eeprom.Device) error {
		return monitor.Run(dev, output)
	})
}

func state(md *modalflag.Modes, opts options, output io.Writer) error {
	md.NewMode()
	out := md.AddString("out", "", "write graph to file rather than stdout")
	md.AdditionalHelp("writes the state of the device in graphviz dot format")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	return run(opts, output, func(dev *eeprom.Device) error {
		if *out == "" {
			memviz.Map(output, dev)
			return nil
		}

		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		memviz.Map(f, dev)
		return f.Close()
	})
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
