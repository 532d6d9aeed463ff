// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/pagebind/pkg/types"
)

func TestJobFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	in := &JobFile{Jobs: []types.BatchConfig{
		{Directory: "scans/week1", ImagesPerPage: 2, LabelImages: true, LabelPrefix: "Question"},
		{Directory: "scans/week2", Margin: 12, SortByTime: true, Output: "week2.pdf"},
	}}

	if err := WriteJobFile(path, in); err != nil {
		t.Fatalf("WriteJobFile: %v", err)
	}
	got, err := ReadJobFile(path)
	if err != nil {
		t.Fatalf("ReadJobFile: %v", err)
	}

	if len(got.Jobs) != 2 {
		t.Fatalf("len(Jobs) = %d, want 2", len(got.Jobs))
	}
	if got.Jobs[0].ImagesPerPage != 2 || !got.Jobs[0].LabelImages {
		t.Errorf("job 0 = %+v, want images_per_page 2 with labels", got.Jobs[0])
	}
	if got.Jobs[1].Margin != 12 || !got.Jobs[1].SortByTime || got.Jobs[1].Output != "week2.pdf" {
		t.Errorf("job 1 = %+v, want margin 12 sorted by time into week2.pdf", got.Jobs[1])
	}
}

func TestReadJobFileMissing(t *testing.T) {
	_, err := ReadJobFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading job file") {
		t.Errorf("err = %v, want reading job file error", err)
	}
}

func TestReadJobFileUnparsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("jobs: {{{\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadJobFile(path)
	if err == nil || !strings.Contains(err.Error(), "parsing job file") {
		t.Errorf("err = %v, want parsing job file error", err)
	}
}

func TestRunJobsContinuesPastFailures(t *testing.T) {
	good := t.TempDir()
	writeImage(t, good, "only.png", 60, 60)

	jf := &JobFile{Jobs: []types.BatchConfig{
		{Directory: filepath.Join(good, "missing")},
		{Directory: good},
	}}

	var buf bytes.Buffer
	summary := RunJobs(context.Background(), jf, &buf, nil)

	if summary.Completed != 1 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want 1 completed and 1 failed", summary)
	}
	if !summary.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	if !strings.Contains(buf.String(), "Batch summary: 1 completed, 1 failed (total: 2)") {
		t.Errorf("run output %q missing batch summary", buf.String())
	}
	if _, err := os.Stat(filepath.Join(good, "combined_output.pdf")); err != nil {
		t.Errorf("second job output missing: %v", err)
	}
}
