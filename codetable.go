// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package rnxhdr

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
)

// IGS receiver/antenna code table (rcvr_ant.tab)
// https://files.igs.org/pub/station/general/rcvr_ant.tab
//

// Code block of rcvr_ant.tab: column header, border, then the rows up to the next border
var reCodeBlock = regexp.MustCompile(`\|\sX{20}\s\|\s{55}\|\n\+-{22}\+-{55}\+\n((?s:.)*?)\+\n`)

// Codes listed in rcvr_ant.tab
type CodeTable struct {
	codes  []string // In file order
	sorted []string
}

// Read all receiver, antenna and radome codes from rcvr_ant.tab
func ReadCodeTable(r io.Reader) (*CodeTable, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read code table: %w", err)
	}
	txt := strings.ReplaceAll(string(b), "\r\n", "\n")
	blocks := reCodeBlock.FindAllStringSubmatch(txt, -1)
	if blocks == nil {
		return nil, ErrNoCodeTable
	}
	ct := &CodeTable{}
	for _, m := range blocks {
		for _, line := range strings.Split(m[1], "\n") {
			if len(line) <= 2 {
				continue
			}
			code := strings.TrimRight(line[2:min(len(line), 2+AntWidth)], " -")
			if code != "" {
				ct.codes = append(ct.codes, code)
			}
		}
	}
	ct.sorted = slices.Clone(ct.codes)
	slices.Sort(ct.sorted)
	ct.sorted = slices.Compact(ct.sorted)
	PrintD(1, "code table: %d codes in %d blocks", len(ct.codes), len(blocks))
	return ct, nil
}

// Codes in the order they appear in the table
func (p *CodeTable) Codes() []string {
	return slices.Clone(p.codes)
}

func (p *CodeTable) Len() int {
	return len(p.codes)
}

func (p *CodeTable) Contains(code string) bool {
	_, ok := slices.BinarySearch(p.sorted, code)
	return ok
}

// Check that the antenna and its radome (if any) are registered codes
func (p *CodeTable) CheckAntenna(antenna string) bool {
	la := strings.Fields(antenna)
	if len(la) == 0 {
		return false
	}
	if _, err := AntennaCode(antenna); err != nil {
		return false
	}
	for _, a := range la[:min(len(la), 2)] {
		if !p.Contains(a) {
			return false
		}
	}
	return true
}
