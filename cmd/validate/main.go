// Command validate checks a city dataset before it is ranked. It verifies that
// the file decodes, that every record holds finite values in plausible ranges,
// that names are present and unique, and that the dataset ranks cleanly.
//
// Usage:
//
//	go run ./cmd/validate -cities data/cities.json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/livable-cities/internal/adapter/file"
	"github.com/couchcryptid/livable-cities/internal/domain"
)

// Plausibility bounds for raw records.
const (
	maxKelvin   = 400
	maxHumidity = 100
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	citiesPath := flag.String("cities", "", "path to the city dataset (.json, .yaml or .yml)")
	flag.Parse()

	if *citiesPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(*citiesPath, os.Stdout))
}

func run(path string, out io.Writer) int {
	fmt.Fprintln(out, "=== City Dataset Validation ===")
	fmt.Fprintln(out)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "FATAL: read dataset: %v\n", err)
		return 1
	}

	raws, err := file.Decode(data, filepath.Ext(path))
	if err != nil {
		fmt.Fprintf(out, "FATAL: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateRecords(raws),
		validateNames(raws),
		validateRanking(raws),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-36s %s\n", p.name, status)
	}

	fmt.Fprintf(out, "\nRecords: %d\n", len(raws))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// ── Phase 1: Record values ──

func validateRecords(raws []domain.RawCity) *phase {
	p := &phase{name: "Phase 1: Record values"}

	for i, r := range raws {
		c, err := r.ToCity()
		if err != nil {
			p.errorf("record %d: %v", i, err)
			continue
		}
		if r.Temp == nil {
			p.errorf("record %d (%s): temp missing, 0 K will be used", i, c.Name)
		} else if c.Temp < 0 || c.Temp > maxKelvin {
			p.errorf("record %d (%s): temp %.2f K outside [0, %d]", i, c.Name, c.Temp, maxKelvin)
		}
		if c.Humidity < 0 || c.Humidity > maxHumidity {
			p.errorf("record %d (%s): humidity %.1f outside [0, %d]", i, c.Name, c.Humidity, maxHumidity)
		}
		if c.Cost < 0 {
			p.errorf("record %d (%s): negative cost %.2f", i, c.Name, c.Cost)
		}
		if c.InternetSpeed < 0 {
			p.errorf("record %d (%s): negative internet speed %.2f", i, c.Name, c.InternetSpeed)
		}
	}
	return p
}

// ── Phase 2: Names ──

func validateNames(raws []domain.RawCity) *phase {
	p := &phase{name: "Phase 2: Names"}

	seen := make(map[string]int, len(raws))
	for i, r := range raws {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			p.errorf("record %d: empty name", i)
			continue
		}
		if first, ok := seen[name]; ok {
			p.errorf("record %d: duplicate name %q (first at record %d)", i, name, first)
			continue
		}
		seen[name] = i
	}
	return p
}

// ── Phase 3: Ranking dry run ──

func validateRanking(raws []domain.RawCity) *phase {
	p := &phase{name: "Phase 3: Ranking dry run"}

	cities, err := domain.CitiesFromRaw(raws)
	if err != nil {
		p.errorf("%v", err)
		return p
	}

	_, comfortable, err := domain.Rank(cities, domain.TopN)
	if err != nil {
		p.errorf("rank: %v", err)
		return p
	}
	if comfortable == 0 {
		p.errorf("no city passes the comfort filter")
	}
	return p
}
