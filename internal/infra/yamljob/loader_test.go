package yamljob

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/twolink/internal/domain"
)

const sampleJob = `name: Sample
queries:
  - name: home
    forward: { theta1: 0, theta2: 0 }
    expect:
      position: { x: 2, y: 0 }
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadJob(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "jobs", "sample.yaml")
	writeFile(t, p, sampleJob)

	job, err := NewLoader().LoadJob(p)
	if err != nil {
		t.Fatalf("LoadJob error: %v", err)
	}
	if job.Name != "Sample" || len(job.Queries) != 1 {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestLoadJob_InvalidYAML(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "bad.yaml")
	writeFile(t, p, "name: [unclosed\n")

	_, err := NewLoader().LoadJob(p)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestListJobs_SortedAndNamed(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "plans", "b.yaml"), sampleJob)
	writeFile(t, filepath.Join(tmp, "plans", "a.yml"), "queries: []\n")
	writeFile(t, filepath.Join(tmp, "plans", "notes.txt"), "ignored")
	if err := os.MkdirAll(filepath.Join(tmp, "plans", "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	refs, err := NewLoader(WithJobsDir("plans")).ListJobs(tmp)
	if err != nil {
		t.Fatalf("ListJobs error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d: %+v", len(refs), refs)
	}
	if refs[0].Name != "Sample" || refs[1].Name != "a" {
		t.Fatalf("expected [Sample a], got %+v", refs)
	}
}

func TestListJobs_MissingDir(t *testing.T) {
	_, err := NewLoader().ListJobs(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
