// Package parser reads the external naming artifacts: markdown candidate
// tables and registry availability lists. Both formats are produced by
// collaborators outside this repository, so parsing is tolerant: malformed
// rows are skipped, never fatal.
package parser

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"

	"namelab/domain"
)

var (
	separatorCell = regexp.MustCompile(`^[-:|]+$`)
	leadingLetter = regexp.MustCompile(`^[A-Za-z]`)
)

// canonical column keys, matched case-insensitively against header cells.
var canonicalColumns = map[string]string{
	"name":    "name",
	"pattern": "pattern",
	"d":       "D",
	"w":       "W",
	"p":       "P",
	"e":       "E",
	"i":       "I",
	"score":   "score",
}

var requiredColumns = []string{"name", "pattern", "D", "W", "P", "E", "I", "score"}

// ParseCandidatesFile reads a markdown candidate table file. A file may hold
// several tables; any non-table line ends the current table.
func ParseCandidatesFile(path string) ([]domain.Candidate, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var rows []domain.Candidate
	colMap := map[string]int{}
	inTable := false

	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "|") {
			inTable = false
			colMap = map[string]int{}
			continue
		}

		cells := splitRow(line)

		if isHeaderRow(cells) {
			colMap = detectColumns(cells)
			inTable = true
			continue
		}
		if !inTable || len(colMap) == 0 {
			continue
		}
		if isSeparatorRow(cells) {
			continue
		}
		if !hasRequiredColumns(colMap) {
			continue
		}

		cand, ok := parseRow(cells, colMap)
		if !ok {
			continue
		}
		rows = append(rows, cand)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}

// splitRow splits a markdown table line on '|', discarding the outer pipes
// and trimming each cell.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	raw := strings.Split(line, "|")
	cells := make([]string, len(raw))
	for i, c := range raw {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

func isHeaderRow(cells []string) bool {
	var hasName, hasPattern, hasScore bool
	for _, c := range cells {
		switch strings.ToLower(c) {
		case "name":
			hasName = true
		case "pattern":
			hasPattern = true
		case "score":
			hasScore = true
		}
	}
	return hasName && hasPattern && hasScore
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if c == "" {
			continue
		}
		if !separatorCell.MatchString(c) {
			return false
		}
	}
	return true
}

func detectColumns(cells []string) map[string]int {
	colMap := map[string]int{}
	for idx, cell := range cells {
		if canonical, ok := canonicalColumns[strings.ToLower(cell)]; ok {
			colMap[canonical] = idx
		}
	}
	return colMap
}

func hasRequiredColumns(colMap map[string]int) bool {
	for _, col := range requiredColumns {
		if _, ok := colMap[col]; !ok {
			return false
		}
	}
	return true
}

func parseRow(cells []string, colMap map[string]int) (domain.Candidate, bool) {
	nameIdx := colMap["name"]
	patternIdx := colMap["pattern"]
	if nameIdx >= len(cells) || patternIdx >= len(cells) {
		return domain.Candidate{}, false
	}

	name := cells[nameIdx]
	if name == "" || !leadingLetter.MatchString(name) {
		return domain.Candidate{}, false
	}

	pattern, _ := domain.ParsePattern(cells[patternIdx])

	return domain.Candidate{
		Name:       name,
		Pattern:    pattern,
		ScoreD:     cellInt(cells, colMap["D"]),
		ScoreW:     cellInt(cells, colMap["W"]),
		ScoreP:     cellInt(cells, colMap["P"]),
		ScoreE:     cellInt(cells, colMap["E"]),
		ScoreI:     cellInt(cells, colMap["I"]),
		TotalScore: cellInt(cells, colMap["score"]),
	}, true
}

// cellInt parses an integer cell, defaulting to 0 for anything unparseable.
func cellInt(cells []string, idx int) int {
	if idx >= len(cells) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(cells[idx]))
	if err != nil {
		return 0
	}
	return n
}
