// This file is part of Clipdeck.
//
// Clipdeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Clipdeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Clipdeck.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/davidmay/clipdeck/device"
	"github.com/davidmay/clipdeck/hid"
	"github.com/davidmay/clipdeck/logger"
	"github.com/davidmay/clipdeck/modalflag"
	"github.com/davidmay/clipdeck/remote"
	"github.com/davidmay/clipdeck/resources"
	"github.com/davidmay/clipdeck/statsview"
	"github.com/davidmay/clipdeck/storage/flatfile"
	"github.com/davidmay/clipdeck/terminal"
	"github.com/davidmay/clipdeck/terminal/colorterm"
	"github.com/davidmay/clipdeck/terminal/plainterm"
	"github.com/davidmay/clipdeck/version"
	"github.com/davidmay/clipdeck/web"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "WEB", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "WEB":
		err = webServe(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// openStore resolves the store directory and opens it. A storage failure
// here is the one fatal error in the system.
func openStore(dir string) (*flatfile.Store, error) {
	var err error

	if dir == "" {
		dir, err = resources.JoinPath("storage")
		if err != nil {
			return nil, err
		}
	}

	return flatfile.NewStore(dir)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsFile := md.AddString("prefs", "", "path to the preferences file")
	storeDir := md.AddString("store", "", "directory of the session log store")
	irSource := md.AddString("ir", "", "file or FIFO of decoded IR codes, one per line")
	repeat := md.AddString("repeat", "THRESHOLD", "hold detection strategy: FLAG, THRESHOLD")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	ver, rev, _ := version.Version()
	logger.Logf("clipdeck", "%s (%s)", ver, rev)

	if *stats {
		statsview.Launch(os.Stdout)
	}

	store, err := openStore(*storeDir)
	if err != nil {
		return err
	}

	prf, err := device.NewPreferences(*prefsFile)
	if err != nil {
		return err
	}

	var detector remote.RepeatDetector
	switch strings.ToUpper(*repeat) {
	case "FLAG":
		detector = remote.FlagRepeat{}
	case "THRESHOLD":
		detector = remote.ThresholdRepeat{}
	default:
		return fmt.Errorf("unknown hold detection strategy (%s)", *repeat)
	}

	var source remote.CodeSource
	if *irSource == "" {
		source = remote.NullSource{}
	} else {
		f, err := os.Open(*irSource)
		if err != nil {
			return err
		}
		defer f.Close()
		source = remote.NewStreamSource(f)
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	if err := term.Initialise(); err != nil {
		return err
	}
	defer term.CleanUp()

	dev := device.NewDevice(term, source, store, hid.Disconnected{}, prf, detector)

	// #ctrlc interrupt ends the device cleanly, restoring the terminal
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	errChan := make(chan error, 1)
	go func() {
		errChan <- dev.Run()
	}()

	select {
	case <-intChan:
		fmt.Println("\r")
		return nil

	case err := <-errChan:
		return err
	}
}

func webServe(md *modalflag.Modes) error {
	md.NewMode()

	addr := md.AddString("addr", "localhost:8088", "address to serve on")
	storeDir := md.AddString("store", "", "directory of the session log store")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	store, err := openStore(*storeDir)
	if err != nil {
		return err
	}

	return web.NewServer(store).Run(*addr)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vrs, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, vrs)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
