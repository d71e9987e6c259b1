package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"shorts-factory/types"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultMaxAttempts  = 60
)

// QualityProfile maps a named profile to renderer settings and the
// resolution reported for simulated artifacts
type QualityProfile struct {
	Name        string
	Resolution  string
	Fluent      bool
	Description string
}

// Profiles is the static quality catalogue
var Profiles = map[string]QualityProfile{
	"standard": {Name: "standard", Resolution: "1280x720", Fluent: false, Description: "720p standard"},
	"high":     {Name: "high", Resolution: "1920x1080", Fluent: true, Description: "1080p high"},
	"ultra":    {Name: "ultra", Resolution: "3840x2160", Fluent: true, Description: "4K ultra"},
}

// Profile returns the named profile, defaulting to high
func Profile(name string) QualityProfile {
	if p, ok := Profiles[name]; ok {
		return p
	}
	return Profiles["high"]
}

// Asset is the source image a render job animates
type Asset struct {
	Name string
	Path string
}

// Client drives talking-head render jobs against the remote API:
// submit, poll to a terminal state, fetch the artifact. Without an API
// key every submission short-circuits to a simulated Done so the rest
// of the pipeline stays exercisable.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	videosDir    string
	pollInterval time.Duration
	maxAttempts  int
}

// New creates a render Client. Zero pollInterval/maxAttempts take the
// defaults (5s interval, 60 attempts — a five minute budget per job).
func New(baseURL, apiKey, videosDir string, pollInterval time.Duration, maxAttempts int) *Client {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		videosDir:    videosDir,
		pollInterval: pollInterval,
		maxAttempts:  maxAttempts,
	}
}

type submitRequest struct {
	SourceURL string       `json:"source_url"`
	Script    scriptBlock  `json:"script"`
	Config    renderConfig `json:"config"`
	DriverURL string       `json:"driver_url,omitempty"`
}

type scriptBlock struct {
	Type     string        `json:"type"`
	Input    string        `json:"input"`
	Provider voiceProvider `json:"provider"`
}

type voiceProvider struct {
	Type    string `json:"type"`
	VoiceID string `json:"voice_id"`
}

type renderConfig struct {
	Stitch       bool   `json:"stitch"`
	ResultFormat string `json:"result_format"`
	Fluent       bool   `json:"fluent,omitempty"`
}

type statusResponse struct {
	Status    string          `json:"status"`
	ResultURL string          `json:"result_url"`
	Error     json.RawMessage `json:"error"`
}

// Submit creates a render job for one script version. The returned job
// is in state Processing on success, a terminal Failed on submission
// errors, or a simulated Done when no API key is configured.
func (c *Client) Submit(ctx context.Context, asset Asset, versionID, scriptText, voiceID, quality string) *types.RenderJob {
	job := &types.RenderJob{
		AssetName:  asset.Name,
		VersionID:  versionID,
		ScriptText: scriptText,
		VoiceID:    voiceID,
		Quality:    quality,
		State:      types.JobSubmitted,
	}

	if c.apiKey == "" {
		return c.simulate(job)
	}

	imageData, err := os.ReadFile(asset.Path)
	if err != nil {
		return fail(job, types.FailureSubmission, fmt.Sprintf("read source asset: %v", err))
	}

	payload := submitRequest{
		SourceURL: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageData),
		Script: scriptBlock{
			Type:     "text",
			Input:    scriptText,
			Provider: voiceProvider{Type: "microsoft", VoiceID: voiceID},
		},
		Config: renderConfig{
			Stitch:       true,
			ResultFormat: "mp4",
			Fluent:       Profile(quality).Fluent,
		},
		DriverURL: "bank://lively",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fail(job, types.FailureSubmission, fmt.Sprintf("marshal payload: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/talks", bytes.NewReader(body))
	if err != nil {
		return fail(job, types.FailureSubmission, err.Error())
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(job, types.FailureSubmission, fmt.Sprintf("submit request: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fail(job, types.FailureSubmission,
			fmt.Sprintf("submit returned %d: %s", resp.StatusCode, detail))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil || created.ID == "" {
		return fail(job, types.FailureSubmission, "submit response missing job id")
	}

	job.JobID = created.ID
	job.State = types.JobProcessing
	log.Printf("[render] Job submitted: %s (%s %s)", job.JobID, job.AssetName, job.VersionID)
	return job
}

// AwaitCompletion polls the job until it reaches a terminal state or
// the attempt budget runs out. Calling it on an already-terminal job is
// a no-op. Context cancellation stops polling at the next tick and
// returns the job in its last observed state.
func (c *Client) AwaitCompletion(ctx context.Context, job *types.RenderJob) *types.RenderJob {
	if job.Terminal() {
		return job
	}

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := sleepCtx(ctx, c.pollInterval); err != nil {
			job.ErrorDetail = "abandoned: " + err.Error()
			return job
		}
		job.Attempts = attempt

		status, err := c.pollStatus(ctx, job.JobID)
		if err != nil {
			log.Printf("[render] Poll %d/%d for %s failed: %v", attempt, c.maxAttempts, job.JobID, err)
			continue
		}

		switch status.Status {
		case "done":
			return c.finish(ctx, job, status.ResultURL)
		case "error":
			return fail(job, types.FailureRemote, string(status.Error))
		}
		// still processing
	}

	job.State = types.JobTimedOut
	job.FailureKind = types.FailureTimeout
	job.ErrorDetail = fmt.Sprintf("no terminal state after %d polls", c.maxAttempts)
	log.Printf("[render] ⚠️  Job %s timed out after %d polls", job.JobID, c.maxAttempts)
	return job
}

func (c *Client) pollStatus(ctx context.Context, jobID string) (*statusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/talks/"+jobID, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("parse status: %w", err)
	}
	return &status, nil
}

// finish downloads the artifact. A failed fetch demotes the job to
// Failed(ArtifactFetchError) rather than leaving it Done without content.
func (c *Client) finish(ctx context.Context, job *types.RenderJob, resultURL string) *types.RenderJob {
	outPath := c.artifactPath(job)
	if err := c.download(ctx, resultURL, outPath); err != nil {
		return fail(job, types.FailureArtifactFetch, err.Error())
	}
	job.State = types.JobDone
	job.ArtifactRef = outPath
	log.Printf("[render] ✅ Job %s done: %s", job.JobID, outPath)
	return job
}

func (c *Client) download(ctx context.Context, url, outPath string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch artifact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch artifact: status %d", resp.StatusCode)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// simulate produces a terminal Done job with a placeholder artifact and
// a metadata stub, so runs without credentials stay fully exercisable
func (c *Client) simulate(job *types.RenderJob) *types.RenderJob {
	profile := Profile(job.Quality)
	job.JobID = "sim-" + uuid.NewString()[:8]
	job.Simulated = true
	job.State = types.JobDone
	job.ArtifactRef = c.artifactPath(job)

	stub := map[string]interface{}{
		"version_id": job.VersionID,
		"quality":    profile.Name,
		"resolution": profile.Resolution,
		"status":     "simulated",
	}
	data, _ := json.MarshalIndent(stub, "", "  ")
	if err := os.MkdirAll(c.videosDir, 0755); err != nil {
		log.Printf("[render] Warning: could not create videos dir: %v", err)
	} else if err := os.WriteFile(job.ArtifactRef+".json", data, 0644); err != nil {
		log.Printf("[render] Warning: could not write simulation stub: %v", err)
	}

	log.Printf("[render] No API key — simulated job %s (%s, %s)", job.JobID, profile.Name, profile.Resolution)
	return job
}

// artifactPath is deterministic per (source asset, script version)
func (c *Client) artifactPath(job *types.RenderJob) string {
	return filepath.Join(c.videosDir, fmt.Sprintf("%s_%s.mp4", job.AssetName, job.VersionID))
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.apiKey)))
	req.Header.Set("Content-Type", "application/json")
}

func fail(job *types.RenderJob, kind types.FailureKind, detail string) *types.RenderJob {
	job.State = types.JobFailed
	job.FailureKind = kind
	job.ErrorDetail = detail
	log.Printf("[render] ❌ Job %s failed (%s): %s", job.JobID, kind, detail)
	return job
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
