//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command liswat is the Scheme-like interpreter's entry point: REPL mode
// with no arguments, script mode otherwise, per §6.
package main

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rashmirathi1729/liswat/internal/eval"
	"github.com/rashmirathi1729/liswat/internal/repl"
	"github.com/rashmirathi1729/liswat/internal/value"
)

func main() {
	setupLogging()
	logSysInfo()
	it := eval.NewInterpreter()
	if len(os.Args) <= 1 {
		repl.Run(it, os.Stdin, os.Stdout)
		return
	}
	os.Exit(runScript(it, os.Args[1:]))
}

// runScript binds the remaining argv as `args` and loads argv[0] as a
// script, returning the process exit code.
func runScript(it *eval.Interpreter, argv []string) int {
	rest := make(value.List, 0, len(argv)-1)
	for _, a := range argv[1:] {
		rest = append(rest, value.Str(a))
	}
	it.BindArg("args", rest)
	if _, serr := eval.Load(it.Root, argv[0]); serr != nil {
		fmt.Fprintln(os.Stderr, serr.Error())
		return 1
	}
	return 0
}

// setupLogging directs the standard logger to a file under the user's
// home directory; stdout is reserved for REPL output.
func setupLogging() {
	usr, err := user.Current()
	if err != nil {
		log.Fatalln(err)
	}
	dir := filepath.Join(usr.HomeDir, ".liswat")
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			os.Mkdir(dir, 0755)
		} else {
			log.Fatalln(err)
		}
	}
	logname := filepath.Join(dir, "messages.log")
	logfile, err := os.OpenFile(logname, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		log.Fatalln(err)
	}
	log.SetOutput(logfile)
}

// logSysInfo writes a header of diagnostic information to the log file,
// useful when debugging a failed load or REPL session after the fact.
func logSysInfo() {
	header := "-------------------------------------------------------------------------------"
	log.Println(header)
	log.Printf("Log Session: %s\n", time.Now().Format(time.ANSIC))
	log.Printf("Go Version = %s\n", runtime.Version())
	usr, err := user.Current()
	if err == nil {
		log.Printf("Home Directory = %s\n", usr.HomeDir)
	}
	if pwd, err := os.Getwd(); err == nil {
		log.Printf("Current Directory = %s\n", pwd)
	}
	log.Println(header)
}
