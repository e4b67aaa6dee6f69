package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ehr/fhirquery/internal/config"
	"github.com/ehr/fhirquery/internal/domain/cohort"
)

var sampleQueries = []string{
	"Show me all diabetic patients over 50",
	"List covid patients under 20",
	"Find cancer patients between 40 and 60",
	"Patients older than 70 with COPD",
	"Give me all patients with hypertension",
	"Find patients with covid and diabetes",
}

type queryOutcome struct {
	Query  string
	Result *cohort.SearchResult
	Err    error
}

// runQueries searches every query on a pool of workers. Outcomes are
// returned in the order of queries.
func runQueries(ctx context.Context, svc *cohort.Service, queries []string, workers int) ([]queryOutcome, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]queryOutcome, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		i, q := i, q
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			res, err := svc.Search(ctx, q)
			out[i] = queryOutcome{Query: q, Result: res, Err: err}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit query %d: %w", i, err)
		}
	}
	wg.Wait()
	return out, nil
}

func printOutcomes(w io.Writer, outcomes []queryOutcome, asJSON bool) error {
	enc := json.NewEncoder(w)
	for _, o := range outcomes {
		if asJSON {
			if o.Err != nil {
				if err := enc.Encode(map[string]string{"query": o.Query, "error": o.Err.Error()}); err != nil {
					return err
				}
				continue
			}
			if err := enc.Encode(o.Result); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(w, "Query: %s\n", o.Query)
		if o.Err != nil {
			fmt.Fprintf(w, "Error: %v\n", o.Err)
		} else {
			parsed, err := json.Marshal(o.Result.Parsed)
			if err != nil {
				return err
			}
			bundle, err := json.Marshal(o.Result.FHIRResponse)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Parsed: %s\n", parsed)
			fmt.Fprintf(w, "Response: %s\n", bundle)
		}
		fmt.Fprintln(w, strings.Repeat("=", 60))
	}
	return nil
}

func runQueryCommand(ctx context.Context, w io.Writer, queries []string, workers int, asJSON bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if workers > 0 {
		cfg.QueryWorkers = workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := newLogger(cfg, os.Stderr)

	dataset, pool, err := openDataset(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	svc := cohort.NewService(cohort.NewInterpreter(dataset), dataset, logger)
	outcomes, err := runQueries(ctx, svc, queries, cfg.QueryWorkers)
	if err != nil {
		return err
	}
	return printOutcomes(w, outcomes, asJSON)
}
