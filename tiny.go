//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"golang.org/x/term"

	"github.com/timburks/tiny/commander"
	"github.com/timburks/tiny/editor"
	"github.com/timburks/tiny/screen"
	gott "github.com/timburks/tiny/types"
)

func main() {
	os.Exit(run())
}

func run() int {
	debug.SetTraceback("all")

	var backend, script, logPath string
	flag.StringVar(&backend, "backend", "termbox", "Terminal backend (termbox or tcell)")
	flag.StringVar(&script, "eval", "", "Evaluate a lisp script without opening the terminal")
	flag.StringVar(&logPath, "log", filepath.Join(os.Getenv("HOME"), ".tinylog"), "Log file")
	flag.Parse()

	// The editor manages all text manipulation.
	e := editor.NewEditor()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if script != "" {
		// Run a script and print the resulting document.
		if _, err := c.ParseEvalFile(script); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(e.Buffer.String())
		return 0
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Error: standard input is not a terminal\n")
		return 1
	}

	// Open a log file.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log.SetOutput(f)
	defer f.Close()

	// Create a screen to manage display.
	s, err := openScreen(backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open terminal: %v\n", err)
		return 1
	}

	// Run the main event loop.
	err = loop(s, e, c)
	s.Close()
	if err != nil {
		log.Printf("%+v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func openScreen(backend string) (gott.Screen, error) {
	switch backend {
	case "termbox":
		return screen.NewTermbox()
	case "tcell":
		return screen.NewTcell()
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// loop highlights and draws the editor, then applies the next event, until quit.
// Drawing errors end the loop.
func loop(s gott.Screen, e *editor.Editor, c *commander.Commander) error {
	for c.IsRunning() {
		e.Highlight()
		if err := e.Render(s); err != nil {
			return err
		}
		c.ProcessEvent(s.GetNextEvent())
	}
	return nil
}
