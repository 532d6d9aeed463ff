package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pagebind/pkg/types"
)

// JobFile is the on-disk description of one or more conversion runs. The
// recurring batches of a scanning workflow can live in one file and run
// together.
type JobFile struct {
	Jobs []types.BatchConfig `yaml:"jobs"`
}

// JobSummary holds the outcome of a job file run.
type JobSummary struct {
	Completed int
	Failed    int
}

// Total returns the total number of jobs processed.
func (s JobSummary) Total() int {
	return s.Completed + s.Failed
}

// HasFailures reports whether any job failed.
func (s JobSummary) HasFailures() bool {
	return s.Failed > 0
}

// ReadJobFile loads a previously saved job file from disk.
func ReadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	return &jf, nil
}

// WriteJobFile saves a job file to disk.
func WriteJobFile(path string, jf *JobFile) error {
	data, err := yaml.Marshal(jf)
	if err != nil {
		return fmt.Errorf("marshaling job file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// RunJobs executes each job in order, printing per-job status to w and
// returning a summary. A failed job never prevents later jobs from running;
// only context cancellation stops the loop early.
func RunJobs(ctx context.Context, jf *JobFile, w io.Writer, progress Progress) JobSummary {
	var summary JobSummary
	for i, job := range jf.Jobs {
		fmt.Fprintf(w, "job %d/%d: %s\n", i+1, len(jf.Jobs), job.Directory)
		if _, err := Run(ctx, job, w, progress); err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", job.Directory, err)
			summary.Failed++
			if ctx.Err() != nil {
				break
			}
			continue
		}
		summary.Completed++
	}
	fmt.Fprintf(w, "\nBatch summary: %d completed, %d failed (total: %d)\n",
		summary.Completed, summary.Failed, summary.Total())
	return summary
}
