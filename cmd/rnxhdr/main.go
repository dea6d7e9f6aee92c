// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mkhts/rnxhdr"
	"gopkg.in/yaml.v3"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		m.PrintE(err)
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Main application processing
func runApplication(args cmdOpt) error {

	// Load input file
	lines, err := readLines(args.obsFn)
	if err != nil {
		return fmt.Errorf("failed to read observation file: %w", err)
	}
	header, body := m.SplitRinex(lines)
	m.PrintD(1, "%s: %d header lines, %d body lines", filepath.Base(args.obsFn), len(header), len(body))

	// Decode header
	hdr, err := m.ParseHeader(header)
	if err != nil {
		return err
	}

	// Apply edits
	if len(args.editFn) > 0 {
		v, err := m.LoadEdits(args.editFn)
		if err != nil {
			return err
		}
		if err := m.ApplyEdits(v, hdr); err != nil {
			return err
		}
	}
	if args.llh != (m.PosLLH{}) {
		hdr.SetPositionLLH(args.llh)
	}
	if args.shift != (m.PosENU{}) {
		hdr.ShiftPosition(args.shift)
	}

	// Check antenna code
	if len(args.antFn) > 0 {
		if err := checkAntenna(args.antFn, hdr); err != nil {
			return err
		}
	}

	if args.show {
		return showHeader(os.Stdout, hdr)
	}

	// Rewrite header
	if err := m.ModifyHeader(header, hdr); err != nil {
		return err
	}

	// Prepare output file
	out, err := prepareOutput(args)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer closeOutput(out)

	return writeLines(out, header, body)
}

// Structure to hold command line argument information
type cmdOpt struct {
	obsFn  string
	outFn  string
	editFn string
	antFn  string
	llh    m.PosLLH
	shift  m.PosENU
	show   bool
}

// Parse command line arguments
func parseArgs() (a cmdOpt, err error) {
	flag.Usage = func() {
		m.PrintA(`
[Usage]
	%s [Options] rover.obs

[Options]
`, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.StringVar(&a.outFn, "o", "", "Output RINEX file path. If not specified, output to stdout.")
	flag.StringVar(&a.editFn, "c", "", "Header edits file (yaml, json or toml). Keys: marker_name, marker_type, receiver_sn, receiver_type, receiver_version, antenna_sn, antenna_type, position_x, position_y, position_z, shift_enu.")
	flag.StringVar(&a.antFn, "ant", "", "IGS rcvr_ant.tab. When given, warn if the antenna type is not a registered code.")
	flag.Var(&a.llh, "llh", "Set the approximate position from latitude/longitude/ellipsoidal height. Enclose in quotes like -llh \"36.10568043 140.08749737 70.3\"")
	flag.Var(&a.shift, "denu", "Move the approximate position by a local offset. Enclose in quotes like -denu \"0.0 0.0 1.5\" (east north up [m])")
	flag.BoolVar(&a.show, "show", false, "Print the header fields as YAML instead of writing the file.")
	var dbg int
	flag.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display), 2(detailed display), 3(most detailed)")
	flag.Parse()
	if flag.NArg() != 1 {
		return a, fmt.Errorf("too less or many arguments")
	}
	a.obsFn = flag.Arg(0)
	m.DBG_ = dbg
	return
}

// Read all lines of a file
func readLines(fn string) ([]string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines := []string{}
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Write header and body. Blanked header lines are dropped.
func writeLines(w io.Writer, header, body []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range header {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
	}
	for _, l := range body {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Prepare output file
func prepareOutput(args cmdOpt) (io.WriteCloser, error) {

	// Use stdout if no output file is specified
	if len(args.outFn) == 0 {
		return &nopCloser{os.Stdout}, nil
	}

	// Create output file
	f, err := os.Create(args.outFn)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// Close output file
func closeOutput(out io.WriteCloser) {
	if out != nil {
		if err := out.Close(); err != nil {
			m.PrintE(err)
		}
	}
}

// Warn if the antenna type is not found in the IGS code table
func checkAntenna(fn string, hdr *m.Header) error {
	f, err := os.Open(fn)
	if err != nil {
		return fmt.Errorf("failed to open code table: %w", err)
	}
	defer f.Close()
	ct, err := m.ReadCodeTable(f)
	if err != nil {
		return err
	}
	if !ct.CheckAntenna(hdr.AntennaType) {
		m.PrintW("antenna type %q is not a registered IGS code", hdr.AntennaType)
	}
	return nil
}

// Header fields with the geodetic approximate position
type headerDoc struct {
	m.Header `yaml:",inline"`
	Lat      float64 `yaml:"lat_deg"`
	Lon      float64 `yaml:"lon_deg"`
	Hei      float64 `yaml:"height_m"`
}

// Print header fields as YAML
func showHeader(w io.Writer, hdr *m.Header) error {
	pos := hdr.Position()
	llh := pos.ToLLH()
	doc := headerDoc{
		Header: *hdr,
		Lat:    m.ToDeg(llh.Lat),
		Lon:    m.ToDeg(llh.Lon),
		Hei:    llh.Hei,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// nopCloser - WriteCloser that ignores close operations
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
