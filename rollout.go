// This file is part of rollout.
//
// rollout is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rollout is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rollout.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/rollout/agent"
	"github.com/jetsetilly/rollout/config"
	"github.com/jetsetilly/rollout/console"
	"github.com/jetsetilly/rollout/digest"
	"github.com/jetsetilly/rollout/life"
	"github.com/jetsetilly/rollout/logger"
	"github.com/jetsetilly/rollout/modalflag"
	"github.com/jetsetilly/rollout/performance"
	"github.com/jetsetilly/rollout/performance/limiter"
	"github.com/jetsetilly/rollout/regression"
	"github.com/jetsetilly/rollout/remote"
	"github.com/jetsetilly/rollout/resources"
	"github.com/jetsetilly/rollout/rewind"
	"github.com/jetsetilly/rollout/runner"
	"github.com/jetsetilly/rollout/statsview"
	"github.com/jetsetilly/rollout/version"
)

// the demo game used by every mode
const (
	defaultSeed  = 2600
	defaultScale = 2
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
	exitFail  = 30
)

// games known to the regression database. the parameters must not change
// between runs or existing entries will fail
func games() []regression.Game {
	return []regression.Game{
		life.Game(life.NewLogic(life.DefaultWidth, life.DefaultHeight, defaultSeed), defaultScale),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "REPLAY", "PLAY", "SERVE", "PERFORMANCE", "REGRESS")
	echo := md.AddBool("log", false, "echo log to stderr")
	hash := md.AddString("hash", "", fmt.Sprintf("render hash algorithm: %s", strings.Join(digest.Hashers(), ", ")))
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *showVersion {
		fmt.Fprintln(output, version.Version())
		return exitOK
	}

	if *echo {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}
	if md.IsSet("hash") {
		if _, err := digest.ByName(*hash); err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return exitParse
		}
		cfg.Hash = *hash
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "REPLAY":
		err = replay(md, cfg)
	case "PLAY":
		err = play(md)
	case "SERVE":
		err = serve(ctx, md, cfg)
	case "PERFORMANCE":
		err = perform(ctx, md)
	case "REGRESS":
		var failed bool
		failed, err = regress(md, cfg)
		if err == nil && failed {
			return exitFail
		}
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	return exitOK
}

// newRunner creates a runner for the demo game. if path is not empty then the
// runner continues from the history saved in that file
func newRunner(path string, width int, height int, seed uint64) (*runner.Runner[life.State, life.Input], error) {
	if path == "" {
		return runner.NewRunner(life.NewLogic(width, height, seed)), nil
	}

	h, err := rewind.Load[life.State](path)
	if err != nil {
		return nil, err
	}

	// the size of the grid is taken from the saved states. the seed is carried
	// by every state so it is not needed to continue
	s, _ := h.StateAt(0)
	return runner.FromHistory(life.NewLogic(s.Width, s.Height, seed), h), nil
}

func defaultHistoryPath() (string, error) {
	return resources.JoinPath("histories", fmt.Sprintf("%s.json", life.Name))
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	width := md.AddInt("width", life.DefaultWidth, "width of grid")
	height := md.AddInt("height", life.DefaultHeight, "height of grid")
	seed := md.AddInt("seed", defaultSeed, "seed for the randomise action")
	every := md.AddInt("every", 1, "record every N steps")
	scenario := md.AddString("scenario", "", "scenario file to run instead of actions")
	load := md.AddString("load", "", "continue from a saved history")
	out := md.AddString("out", "", "file to save history to (default in resource directory)")
	md.AdditionalHelp(fmt.Sprintf("Remaining arguments are action identifiers: %s",
		strings.Join(life.NewRegistry().IDs(), ", ")))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	r, err := newRunner(*load, *width, *height, uint64(*seed))
	if err != nil {
		return err
	}
	if *load == "" || md.IsSet("every") {
		r.SetRecordEveryNFrames(*every)
	}

	reg := life.NewRegistry()

	if *scenario != "" {
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("actions can not be used with a scenario in %s mode", md)
		}
		scr, err := regression.LoadScenario(*scenario)
		if err != nil {
			return err
		}
		drive, err := regression.Drive[life.State, life.Input](scr, reg)
		if err != nil {
			return err
		}
		drive(r)
	} else {
		// check every identifier before stepping so that a mistake doesn't
		// result in a partial run
		inputs := make([]life.Input, 0, len(md.RemainingArgs()))
		for _, id := range md.RemainingArgs() {
			input, err := reg.Lookup(id)
			if err != nil {
				return err
			}
			inputs = append(inputs, input)
		}
		r.Run(inputs...)
	}

	if *out == "" {
		*out, err = defaultHistoryPath()
		if err != nil {
			return err
		}
	}
	if err := r.Timeline().Save(*out); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s\n%s", r.Timeline().GetTimeline(), r.State())
	fmt.Fprintf(md.Output, "history saved to %s\n", *out)

	return nil
}

func replay(md *modalflag.Modes, cfg config.Env) error {
	md.NewMode()

	frame := md.AddInt("frame", -1, "frame to show (default is the saved frame)")
	hashes := md.AddBool("hashes", false, "print the render hash of every frame")
	scale := md.AddInt("scale", defaultScale, "pixels per cell when rendering")
	viz := md.AddString("memviz", "", "write a graphviz description of the history to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var path string
	switch len(md.RemainingArgs()) {
	case 0:
		path, err = defaultHistoryPath()
		if err != nil {
			return err
		}
	case 1:
		path = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	r, err := newRunner(path, 0, 0, defaultSeed)
	if err != nil {
		return err
	}

	if *frame >= 0 {
		r.Seek(*frame)
	}

	fmt.Fprintf(md.Output, "%s\n%s", r.Timeline().GetTimeline(), r.State())

	if *hashes {
		s := r.State()
		w, h := s.Width*max(1, *scale), s.Height*max(1, *scale)
		hasher := cfg.Hasher()
		for i, s := range regression.HashFrames(r, w, h, life.Render, hasher) {
			fmt.Fprintf(md.Output, "%03d %s %s\n", i, hasher.Name(), s)
		}
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		memviz.Map(f, r.Timeline())
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "memviz written to %s\n", *viz)
	}

	return nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	width := md.AddInt("width", life.DefaultWidth, "width of grid")
	height := md.AddInt("height", life.DefaultHeight, "height of grid")
	seed := md.AddInt("seed", defaultSeed, "seed for the randomise action")
	load := md.AddString("load", "", "continue from a saved history")
	save := md.AddString("save", "", "save history to file when play ends")
	device := md.AddString("tty", "/dev/tty", "terminal device")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	r, err := newRunner(*load, *width, *height, uint64(*seed))
	if err != nil {
		return err
	}
	host := agent.FromRunner(r)
	reg := life.NewRegistry()
	bind := console.NewBindings(reg.Manifest())

	term, err := console.OpenTerminal(*device)
	if err != nil {
		return err
	}

	bind.Help(md.Output)
	err = console.Play(term, md.Output, host, reg, bind, life.State.String)
	if cerr := term.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if *save != "" {
		return r.Timeline().Save(*save)
	}
	return nil
}

func serve(ctx context.Context, md *modalflag.Modes, cfg config.Env) error {
	md.NewMode()

	addr := md.AddString("addr", cfg.RemoteAddr, "address to listen on")
	rate := md.AddInt("rate", 60, "number of times per second the command queue is drained")
	queueLen := md.AddInt("queue", 64, "maximum number of waiting commands")
	width := md.AddInt("width", life.DefaultWidth, "width of grid")
	height := md.AddInt("height", life.DefaultHeight, "height of grid")
	seed := md.AddInt("seed", defaultSeed, "seed for the randomise action")
	load := md.AddString("load", "", "continue from a saved history")
	save := md.AddString("save", "", "save history to file when the server stops")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	r, err := newRunner(*load, *width, *height, uint64(*seed))
	if err != nil {
		return err
	}
	host := agent.FromRunner(r)
	reg := life.NewRegistry()

	lim, err := limiter.NewLimiter(*rate)
	if err != nil {
		return err
	}
	defer lim.Stop()

	q := remote.NewQueue[remote.Command[life.State]](*queueLen)
	srv := remote.NewServer(q, reg.Manifest())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.ListenAndServe(ctx, *addr)
		cancel()
	}()

	fmt.Fprintf(md.Output, "serving on ws://%s/ws (ctrl-c to stop)\n", *addr)

	for lim.Wait(ctx) {
		remote.Drain(q, host, reg)
	}

	// anything that arrived between the last tick and the context ending is
	// still applied and replied to
	q.Close()
	remote.Drain(q, host, reg)

	if err := <-srvErr; err != nil {
		return err
	}

	if *save != "" {
		if err := r.Timeline().Save(*save); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "history saved to %s\n", *save)
	}

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "generate profiling reports: cpu, mem, both, none")
	width := md.AddInt("width", life.DefaultWidth, "width of grid")
	height := md.AddInt("height", life.DefaultHeight, "height of grid")
	every := md.AddInt("every", 1, "record every N steps")
	stats := md.AddBool("statsview", false, "run a statsview server (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return errors.New("statsview is not available in this build")
		}
		stop := statsview.Launch(md.Output, statsview.DefaultAddress)
		defer stop()
	}

	r := runner.NewRunner(life.NewLogic(*width, *height, defaultSeed))
	r.SetRecordEveryNFrames(*every)

	acc := &performance.Accumulator{}
	r.SetProfiler(acc)

	// a randomised grid is more representative than an empty one
	r.Step(life.Randomise)

	step := func() int {
		return r.Step(life.Tick)
	}

	if err := performance.Check(ctx, md.Output, prf, *duration, step); err != nil {
		return err
	}

	return acc.Report(md.Output)
}

func regress(md *modalflag.Modes, cfg config.Env) (bool, error) {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return false, err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		md.AdditionalHelp("Remaining arguments are database keys. The key FAILS selects the entries that failed last time.")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return false, err
		}

		res, err := regression.RegressRun(md.Output, games(), *verbose, md.RemainingArgs())
		if err != nil {
			return false, err
		}
		return res.Fail > 0 || res.Error > 0, nil

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return false, err
		}

		if len(md.RemainingArgs()) > 0 {
			return false, fmt.Errorf("no additional arguments required for %s mode", md)
		}
		return false, regression.RegressList(md.Output, games())

	case "DELETE":
		md.NewMode()
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return false, err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return false, fmt.Errorf("database key required for %s mode", md)
		case 1:
			var confirmation io.Reader = os.Stdin
			if *answerYes {
				confirmation = strings.NewReader("y\n")
			}
			return false, regression.RegressDelete(md.Output, confirmation, games(), md.GetArg(0))
		default:
			return false, fmt.Errorf("only one entry can be deleted at at time")
		}

	case "ADD":
		return false, regressAdd(md, cfg)
	}

	return false, nil
}

func regressAdd(md *modalflag.Modes, cfg config.Env) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf(`The regression test to be added is a scenario file. The game named by the
scenario must be one of: %s

The render hash algorithm is taken from the -hash flag or from ROLLOUT_HASH.`, gameNames()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("scenario file required for %s mode", md)
	case 1:
		script, err := filepath.Abs(md.GetArg(0))
		if err != nil {
			return err
		}

		ent, err := regression.NewScenarioEntry(games(), script, cfg.Hasher())
		if err != nil {
			return err
		}

		if err := regression.RegressAdd(md.Output, games(), ent); err != nil {
			// carriage return so that the last progress output from
			// RegressAdd() is overwritten
			return fmt.Errorf("\rerror adding regression test: %w", err)
		}
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	return nil
}

func gameNames() string {
	g := games()
	n := make([]string, len(g))
	for i := range g {
		n[i] = g[i].Name()
	}
	return strings.Join(n, ", ")
}
