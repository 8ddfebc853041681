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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/padcast/broadcast"
	"github.com/jetsetilly/padcast/broadcast/websocket"
	"github.com/jetsetilly/padcast/curated"
	"github.com/jetsetilly/padcast/killchord"
	"github.com/jetsetilly/padcast/logger"
	"github.com/jetsetilly/padcast/mainloop"
	"github.com/jetsetilly/padcast/modalflag"
	"github.com/jetsetilly/padcast/preferences"
	"github.com/jetsetilly/padcast/prefs"
	"github.com/jetsetilly/padcast/sdlpad"
	"github.com/jetsetilly/padcast/statsview"
	"github.com/jetsetilly/padcast/termpad"
	"github.com/jetsetilly/padcast/userinput"
	"github.com/jetsetilly/padcast/version"
)

// exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitArgument = 10
)

// argumentError is used to distinguish errors in the command line from other
// errors. the exit code is different
const argumentError = "arguments: %v"

// number of log entries to show when the program ends with an error.
const logTailOnError = 10

// #mainthread
func main() {
	// SDL must be initialised, polled and shutdown from the same thread. the
	// main loop runs on the main goroutine so locking the main goroutine to
	// its thread is sufficient
	runtime.LockOSThread()

	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch parses the command line and runs the selected mode. returns the exit
// code for the program.
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("SERVE", "CHORD", "VERSION")
	md.AdditionalHelp(fmt.Sprintf("%s broadcasts game controller events to websocket subscribers", version.ApplicationName))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitArgument
	}

	switch md.Mode() {
	case "SERVE":
		err = serve(md, stdout, stderr, false)
	case "CHORD":
		err = serve(md, stdout, stderr, true)
	case "VERSION":
		err = showVersion(md, stdout)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		if curated.Is(err, argumentError) {
			return exitArgument
		}
		logger.Tail(stderr, logTailOnError)
		return exitFailure
	}

	return exitOK
}

func showVersion(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from the build")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return parseError(err)
	}

	fmt.Fprintln(stdout, version.String())
	if *revision {
		_, rev, _ := version.Version()
		fmt.Fprintln(stdout, rev)
	}

	return nil
}

// parseError wraps an error from modalflag.Parse() with the argumentError
// pattern. a nil error is returned unchanged.
func parseError(err error) error {
	if err == nil {
		return nil
	}
	return curated.Errorf(argumentError, err)
}

// serve events from the selected source. if chord is true the kill chord is
// watched for and events are only broadcast if the broadcast flag is set.
func serve(md *modalflag.Modes, stdout io.Writer, stderr io.Writer, chord bool) error {
	md.NewMode()

	port := md.AddInt("port", websocket.DefaultPort, "websocket port (overrides padcast.port preference)")
	tick := md.AddDuration("tick", mainloop.DefaultTick, "length of a main loop iteration (overrides padcast.tick preference)")
	source := md.AddString("source", "SDL", "input source: SDL, TERMINAL")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsOverrides := md.AddString("prefs", "", "preference overrides in the form \"key::value; key::value\"")

	var require *bool
	var bcast *bool
	if chord {
		require = md.AddBool("require", false, "fail if there is no controller")
		bcast = md.AddBool("broadcast", true, "broadcast events as well as watching for the chord")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return parseError(err)
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(argumentError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	// set debugging log echo. never to stdout because in CHORD mode the
	// supervising process is reading stdout
	if *log {
		logger.SetEcho(stderr)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*prefsOverrides)
	pref, err := preferences.NewPreferences()
	if err != nil {
		if curated.Is(err, prefs.CommandLineError) {
			return curated.Errorf(argumentError, err)
		}
		return err
	}

	// flags on the command line take precedence over preferences
	var flagErr error
	md.Visit(func(flg string) {
		switch flg {
		case "port":
			flagErr = pref.Port.Set(*port)
		case "tick":
			flagErr = pref.Tick.Set(*tick)
		}
	})
	if flagErr != nil {
		return curated.Errorf(argumentError, flagErr)
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(stderr)
			defer stop()
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	optional := chord && !*require
	src, err := openSource(*source, optional)
	if err != nil {
		if !chord && curated.Is(err, sdlpad.NoControllerFound) {
			fmt.Fprintln(stderr, "No controller found.")
			return nil
		}
		return err
	}

	if n, ok := src.(userinput.Named); ok {
		logger.Logf(logger.Allow, "padcast", "input from %s", n.Name())
	}

	cfg := websocket.DefaultConfig()
	cfg.WriteTimeout = pref.WriteTimeoutDuration()
	tr, err := websocket.Listen(pref.Addr(), cfg)
	if err != nil {
		_ = src.Close()
		return err
	}

	loopCfg := mainloop.Config{
		Tick:      pref.TickDuration(),
		Broadcast: true,
	}

	if chord {
		det := killchord.NewDetector(stdout)
		det.SetButtons(pref.ChordButtons())
		loopCfg.Detector = det
		loopCfg.Broadcast = *bcast
	}

	loop := mainloop.NewLoop(src, broadcast.NewServer(tr), loopCfg)

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer func() {
		signal.Stop(intChan)
		close(intChan)
	}()
	go func() {
		if _, ok := <-intChan; ok {
			loop.Quit()
		}
	}()

	return loop.Run()
}

// openSource is the function used to open the input source. tests replace it
// so that no hardware is required.
var openSource = openInputSource

// openInputSource opens the named input source. if optional is true then a
// missing SDL controller is not an error.
func openInputSource(source string, optional bool) (userinput.Source, error) {
	switch source {
	case "SDL", "sdl":
		if optional {
			return sdlpad.OpenOptional()
		}
		return sdlpad.Open()
	case "TERMINAL", "terminal":
		return termpad.Open(termpad.DefaultDevice)
	}
	return nil, curated.Errorf(argumentError, fmt.Sprintf("unknown input source (%s)", source))
}
