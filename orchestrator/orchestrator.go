package orchestrator

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"shorts-factory/config"
	"shorts-factory/render"
	"shorts-factory/selector"
	"shorts-factory/types"
)

// Analyzer turns a topic into ranked keywords and titles
type Analyzer interface {
	Analyze(ctx context.Context, topic string, code types.LanguageCode) (*types.KeywordAnalysis, error)
	DetectSubject(ctx context.Context, image []byte, code types.LanguageCode) (string, error)
}

// VersionGenerator expands a selection into the script version matrix
type VersionGenerator interface {
	Generate(topic string, sel types.Selection, code types.LanguageCode, numVersions int) ([]types.ScriptVersion, error)
}

// RenderClient submits render jobs and drives them to a terminal state
type RenderClient interface {
	Submit(ctx context.Context, asset render.Asset, versionID, scriptText, voiceID, quality string) *types.RenderJob
	AwaitCompletion(ctx context.Context, job *types.RenderJob) *types.RenderJob
}

// ResultSink persists per-item records and retires processed inputs
type ResultSink interface {
	WriteResult(result *types.PipelineResult) (string, error)
	SaveVersions(item string, versions []types.ScriptVersion) (string, error)
	Relocate(item types.BatchItem) error
}

// Orchestrator runs the full pipeline over a batch of items. Items are
// isolated: one failure never aborts the others, and results come back
// in input order regardless of completion order.
type Orchestrator struct {
	cfg       *config.Config
	analyzer  Analyzer
	generator VersionGenerator
	renderer  RenderClient
	sink      ResultSink
}

func New(cfg *config.Config, analyzer Analyzer, generator VersionGenerator, renderer RenderClient, sink ResultSink) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		analyzer:  analyzer,
		generator: generator,
		renderer:  renderer,
		sink:      sink,
	}
}

// Run processes every batch item with at most cfg.Concurrency in flight
func (o *Orchestrator) Run(ctx context.Context, items []types.BatchItem) []types.PipelineResult {
	results := make([]types.PipelineResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	limit := o.cfg.Concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = o.abandonItem(item, err)
			} else {
				results[i] = o.processItem(gctx, item)
			}
			results[i].Index = i
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (o *Orchestrator) processItem(ctx context.Context, item types.BatchItem) types.PipelineResult {
	language := item.Language
	if language == "" {
		language = types.LanguageCode(o.cfg.Language)
	}

	result := types.PipelineResult{
		Item:      item.Name,
		Language:  language,
		Quality:   o.cfg.Quality,
		CreatedAt: time.Now().UTC(),
	}

	topic := o.resolveTopic(ctx, item, language)
	result.Topic = topic
	log.Printf("[pipeline] ▶ %s (%s): %s", item.Name, language, topic)

	analysis, err := o.analyzer.Analyze(ctx, topic, language)
	if err != nil {
		return failItem(result, "analyze", err)
	}

	sel := selector.Select(analysis, nil, -1)
	result.Keywords = sel.Keywords
	result.Title = sel.Title

	versions, err := o.generator.Generate(topic, sel, language, o.cfg.NumVersions)
	if err != nil {
		return failItem(result, "generate", err)
	}
	if _, err := o.sink.SaveVersions(item.Name, versions); err != nil {
		log.Printf("[pipeline] Warning: save versions for %s: %v", item.Name, err)
	}

	asset := render.Asset{Name: item.Name, Path: item.ImagePath}
	done := 0
	for _, v := range versions {
		// a canceled batch issues no further submissions
		if err := ctx.Err(); err != nil {
			result.Versions = append(result.Versions, types.VersionResult{
				VersionID:  v.VersionID,
				Title:      v.Title,
				ScriptText: v.ScriptText,
				State:      types.JobFailed,
				Error:      "abandoned: " + err.Error(),
			})
			continue
		}
		job := o.renderer.Submit(ctx, asset, v.VersionID, v.ScriptText, v.VoiceID, o.cfg.Quality)
		if !job.Terminal() {
			job = o.renderer.AwaitCompletion(ctx, job)
		}
		result.Versions = append(result.Versions, versionResult(v, job))
		if job.State == types.JobDone {
			done++
		}
	}

	switch {
	case done == len(versions) && done > 0:
		result.Status = types.StatusSuccess
		if err := o.sink.Relocate(item); err != nil {
			log.Printf("[pipeline] Warning: %v", err)
		}
	case done > 0:
		result.Status = types.StatusPartial
	default:
		result.Status = types.StatusFailed
		result.FailedStage = "render"
	}

	if _, err := o.sink.WriteResult(&result); err != nil {
		log.Printf("[pipeline] Warning: write result for %s: %v", item.Name, err)
	}

	log.Printf("[pipeline] %s finished: %s (%d/%d versions rendered)",
		item.Name, result.Status, done, len(versions))
	return result
}

// abandonItem records an item the batch never started because it was
// already canceled
func (o *Orchestrator) abandonItem(item types.BatchItem, err error) types.PipelineResult {
	language := item.Language
	if language == "" {
		language = types.LanguageCode(o.cfg.Language)
	}
	log.Printf("[pipeline] ⚠️  %s abandoned: %v", item.Name, err)
	return types.PipelineResult{
		Item:        item.Name,
		Language:    language,
		Quality:     o.cfg.Quality,
		Topic:       item.Topic,
		Status:      types.StatusFailed,
		FailedStage: "canceled",
		Error:       err.Error(),
		CreatedAt:   time.Now().UTC(),
	}
}

// resolveTopic prefers the explicit topic, then a vision pass over the
// source image, then the item name itself
func (o *Orchestrator) resolveTopic(ctx context.Context, item types.BatchItem, language types.LanguageCode) string {
	if item.ImagePath != "" {
		if image, err := os.ReadFile(item.ImagePath); err == nil {
			if subject, err := o.analyzer.DetectSubject(ctx, image, language); err == nil && subject != "" {
				log.Printf("[pipeline] %s: detected subject %q", item.Name, subject)
				return subject
			}
		}
	}
	if item.Topic != "" {
		return item.Topic
	}
	return item.Name
}

func versionResult(v types.ScriptVersion, job *types.RenderJob) types.VersionResult {
	vr := types.VersionResult{
		VersionID:   v.VersionID,
		Title:       v.Title,
		ScriptText:  v.ScriptText,
		ArtifactRef: job.ArtifactRef,
		State:       job.State,
		Simulated:   job.Simulated,
	}
	if job.ErrorDetail != "" {
		vr.Error = job.ErrorDetail
		if job.FailureKind != "" {
			vr.Error = fmt.Sprintf("%s: %s", job.FailureKind, job.ErrorDetail)
		}
	}
	return vr
}

func failItem(result types.PipelineResult, stage string, err error) types.PipelineResult {
	result.Status = types.StatusFailed
	result.FailedStage = stage
	result.Error = err.Error()
	log.Printf("[pipeline] ❌ %s failed at %s: %v", result.Item, stage, err)
	return result
}
