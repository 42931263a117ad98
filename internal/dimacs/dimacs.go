// Package dimacs reads the DIMACS CNF text format into a *sat.Problem
// (§6). Unlike the teacher's original reader, there is no required
// header line: variables are discovered lazily from clause literals, and
// the "p" line (if present) is parsed only far enough to be skipped.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gosat/yass/internal/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses filename into a fresh *sat.Problem. gzipped indicates
// the file is gzip-compressed.
func LoadDIMACS(filename string, gzipped bool) (*sat.Problem, error) {
	rc, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("dimacs %s: %w", filename, err)
	}
	defer rc.Close()

	problem := sat.NewProblem()
	scanner := bufio.NewScanner(rc)

	var clause []sat.Literal
	lineNum := 0

scan:
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "%":
			// SATLIB benchmarks trail the clauses with a "%" line
			// followed by stray padding; the original reader this
			// format comes from stops scanning the moment it sees
			// one, so we do the same instead of parsing past it.
			break scan
		case "c", "p":
			continue
		}

		for _, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("dimacs %s:%d: %q is not an integer", filename, lineNum, field)
			}
			switch {
			case n > 0:
				clause = append(clause, sat.PositiveLiteral(sat.Variable(n)))
			case n < 0:
				clause = append(clause, sat.NegativeLiteral(sat.Variable(-n)))
			default: // n == 0: terminate the current clause
				if len(clause) == 0 {
					return nil, fmt.Errorf("dimacs %s:%d: empty clause", filename, lineNum)
				}
				problem.AddClause(clause)
				clause = nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs %s: %w", filename, err)
	}
	if len(clause) > 0 {
		return nil, fmt.Errorf("dimacs %s: unterminated clause at end of file", filename)
	}

	return problem, nil
}
