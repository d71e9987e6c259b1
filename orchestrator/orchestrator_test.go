package orchestrator

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shorts-factory/analyzer"
	"shorts-factory/config"
	"shorts-factory/lang"
	"shorts-factory/render"
	"shorts-factory/store"
	"shorts-factory/types"
	"shorts-factory/versions"
)

func testPaths(t *testing.T) config.PathsConfig {
	t.Helper()
	root := t.TempDir()
	return config.PathsConfig{
		Images:    filepath.Join(root, "images"),
		Completed: filepath.Join(root, "completed"),
		Results:   filepath.Join(root, "results"),
		Videos:    filepath.Join(root, "videos"),
		Scripts:   filepath.Join(root, "scripts"),
	}
}

func testOrchestrator(t *testing.T, cfg *config.Config) *Orchestrator {
	t.Helper()
	cfg.Paths = testPaths(t)
	langs := lang.NewRegistry()
	return New(
		cfg,
		analyzer.New(nil, langs),
		versions.New(langs),
		render.New("http://unused", "", cfg.Paths.Videos, time.Millisecond, 3),
		store.New(cfg.Paths),
	)
}

func baseConfig() *config.Config {
	cfg := config.Default()
	cfg.Language = "en"
	cfg.NumVersions = 3
	cfg.Concurrency = 1
	return cfg
}

func TestRunSingleItem(t *testing.T) {
	orch := testOrchestrator(t, baseConfig())
	items := []types.BatchItem{{Name: "earbuds_pro", Topic: "wireless earbuds"}}

	results := orch.Run(context.Background(), items)
	if len(results) != 1 {
		t.Fatalf("Run() = %d results, want 1", len(results))
	}

	r := results[0]
	if r.Status != types.StatusSuccess {
		t.Fatalf("status = %q (%s: %s), want success", r.Status, r.FailedStage, r.Error)
	}
	if r.Topic != "wireless earbuds" {
		t.Errorf("topic = %q", r.Topic)
	}
	if len(r.Keywords) != 3 {
		t.Errorf("keywords = %v, want 3 selected", r.Keywords)
	}
	if r.Title == "" {
		t.Error("no title selected")
	}
	if len(r.Versions) != 3 {
		t.Fatalf("versions = %d, want 3", len(r.Versions))
	}
	for i, v := range r.Versions {
		if v.State != types.JobDone {
			t.Errorf("version %d state = %q", i, v.State)
		}
		if !v.Simulated {
			t.Errorf("version %d not simulated without credentials", i)
		}
		if v.ArtifactRef == "" {
			t.Errorf("version %d has no artifact ref", i)
		}
	}
}

func TestRunIsolatesItemFailures(t *testing.T) {
	orch := testOrchestrator(t, baseConfig())
	items := []types.BatchItem{
		{Name: "first", Topic: "robot vacuum"},
		{Name: "second", Topic: "air fryer", Language: "xx"},
		{Name: "third", Topic: "standing desk"},
	}

	results := orch.Run(context.Background(), items)
	if len(results) != 3 {
		t.Fatalf("Run() = %d results, want 3", len(results))
	}

	// results come back in input order
	for i, item := range items {
		if results[i].Item != item.Name {
			t.Fatalf("results[%d] = %q, want %q", i, results[i].Item, item.Name)
		}
	}

	if results[0].Status != types.StatusSuccess {
		t.Errorf("first: status = %q", results[0].Status)
	}
	if results[1].Status != types.StatusFailed || results[1].FailedStage != "analyze" {
		t.Errorf("second: status = %q stage = %q, want failed/analyze", results[1].Status, results[1].FailedStage)
	}
	if results[1].Error == "" {
		t.Error("second: failure without error detail")
	}
	if results[2].Status != types.StatusSuccess {
		t.Errorf("third: status = %q", results[2].Status)
	}
}

func TestRunConcurrent(t *testing.T) {
	cfg := baseConfig()
	cfg.Concurrency = 4
	orch := testOrchestrator(t, cfg)

	items := []types.BatchItem{
		{Name: "a", Topic: "topic a"},
		{Name: "b", Topic: "topic b"},
		{Name: "c", Topic: "topic c"},
		{Name: "d", Topic: "topic d"},
		{Name: "e", Topic: "topic e"},
	}
	results := orch.Run(context.Background(), items)
	if len(results) != 5 {
		t.Fatalf("Run() = %d results, want 5", len(results))
	}
	for i, item := range items {
		if results[i].Item != item.Name {
			t.Fatalf("results[%d] = %q, want input order preserved", i, results[i].Item)
		}
		if results[i].Status != types.StatusSuccess {
			t.Errorf("%s: status = %q", item.Name, results[i].Status)
		}
	}
}

func TestRunPreCanceledContext(t *testing.T) {
	orch := testOrchestrator(t, baseConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []types.BatchItem{
		{Name: "first", Topic: "robot vacuum"},
		{Name: "second", Topic: "air fryer"},
		{Name: "third", Topic: "standing desk"},
	}
	results := orch.Run(ctx, items)
	if len(results) != 3 {
		t.Fatalf("Run() = %d results, want 3", len(results))
	}
	for i, r := range results {
		if r.Status != types.StatusFailed || r.FailedStage != "canceled" {
			t.Errorf("item %d: status=%q stage=%q, want failed/canceled", i, r.Status, r.FailedStage)
		}
		if len(r.Versions) != 0 {
			t.Errorf("item %d: %d versions rendered after cancellation", i, len(r.Versions))
		}
		if r.Error == "" {
			t.Errorf("item %d: no error detail", i)
		}
	}
}

// cancelingRenderer cancels the batch after its first submission,
// mimicking an operator interrupt mid-item
type cancelingRenderer struct {
	inner   *render.Client
	cancel  context.CancelFunc
	submits int
}

func (c *cancelingRenderer) Submit(ctx context.Context, asset render.Asset, versionID, scriptText, voiceID, quality string) *types.RenderJob {
	c.submits++
	job := c.inner.Submit(ctx, asset, versionID, scriptText, voiceID, quality)
	c.cancel()
	return job
}

func (c *cancelingRenderer) AwaitCompletion(ctx context.Context, job *types.RenderJob) *types.RenderJob {
	return c.inner.AwaitCompletion(ctx, job)
}

func TestRunStopsSubmittingAfterCancel(t *testing.T) {
	cfg := baseConfig()
	cfg.Paths = testPaths(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	langs := lang.NewRegistry()
	renderer := &cancelingRenderer{
		inner:  render.New("http://unused", "", cfg.Paths.Videos, time.Millisecond, 3),
		cancel: cancel,
	}
	orch := New(cfg, analyzer.New(nil, langs), versions.New(langs), renderer, store.New(cfg.Paths))

	results := orch.Run(ctx, []types.BatchItem{{Name: "gadget", Topic: "smart gadget"}})
	if renderer.submits != 1 {
		t.Fatalf("Submit called %d times after cancellation, want 1", renderer.submits)
	}

	r := results[0]
	if len(r.Versions) != 3 {
		t.Fatalf("versions = %d, want 3 recorded", len(r.Versions))
	}
	if r.Versions[0].State != types.JobDone {
		t.Errorf("version 0 state = %q, want done", r.Versions[0].State)
	}
	for i, v := range r.Versions[1:] {
		if v.State != types.JobFailed || !strings.Contains(v.Error, "abandoned") {
			t.Errorf("version %d: state=%q err=%q, want failed/abandoned", i+1, v.State, v.Error)
		}
	}
	if r.Status != types.StatusPartial {
		t.Errorf("status = %q, want partial", r.Status)
	}
}

func TestRunZeroConcurrency(t *testing.T) {
	cfg := baseConfig()
	cfg.Concurrency = 0
	orch := testOrchestrator(t, cfg)

	results := orch.Run(context.Background(), []types.BatchItem{{Name: "solo", Topic: "solo topic"}})
	if len(results) != 1 || results[0].Status != types.StatusSuccess {
		t.Fatalf("zero-concurrency run: %+v", results)
	}
}

func TestRunItemLanguageOverride(t *testing.T) {
	orch := testOrchestrator(t, baseConfig())
	items := []types.BatchItem{{Name: "kimchi_fridge", Topic: "kimchi fridge", Language: types.LangKorean}}

	results := orch.Run(context.Background(), items)
	if results[0].Language != types.LangKorean {
		t.Errorf("language = %q, want ko override", results[0].Language)
	}
	if results[0].Status != types.StatusSuccess {
		t.Errorf("status = %q", results[0].Status)
	}
}
