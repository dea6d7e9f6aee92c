// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

// Print the receiver, antenna and radome codes of rcvr_ant.tab, one per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mkhts/rnxhdr"
)

func main() {
	flag.Usage = func() {
		m.PrintA("\n[Usage]\n\t%s [Options] rcvr_ant.tab\n\n[Options]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	var dbg int
	flag.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display)")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	m.DBG_ = dbg

	if err := printCodes(flag.Arg(0)); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

func printCodes(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	ct, err := m.ReadCodeTable(f)
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	w := bufio.NewWriter(os.Stdout)
	for _, code := range ct.Codes() {
		fmt.Fprintln(w, code)
	}
	return w.Flush()
}
