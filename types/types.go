package types

import "time"

// LanguageCode identifies a supported narration language
type LanguageCode string

const (
	LangKorean   LanguageCode = "ko"
	LangChinese  LanguageCode = "zh"
	LangEnglish  LanguageCode = "en"
	LangJapanese LanguageCode = "ja"
	LangThai     LanguageCode = "th"
)

// KeywordCategory classifies a keyword by its revenue angle
type KeywordCategory string

const (
	KeywordPurchase   KeywordCategory = "purchase-inducing"
	KeywordComparison KeywordCategory = "comparison"
	KeywordUrgent     KeywordCategory = "urgent"
	KeywordOther      KeywordCategory = "other"
)

// KeywordCandidate is one ranked keyword produced by topic analysis
type KeywordCandidate struct {
	Text      string          `json:"text"`
	Category  KeywordCategory `json:"category"`
	ScoreHint int             `json:"score_hint"`
}

// TitleCandidate is one ranked title produced alongside keywords.
// CTRScore is a 0-100 heuristic used only for tie-breaking selection.
type TitleCandidate struct {
	Text     string `json:"text"`
	Hook     string `json:"hook"`
	CTRScore int    `json:"ctr_score"`
}

// ContentStrategy sketches intro/body/conclusion guidance for a topic
type ContentStrategy struct {
	Intro      string `json:"intro"`
	Body       string `json:"body"`
	Conclusion string `json:"conclusion"`
}

// KeywordAnalysis is the full analysis for one topic. It is owned by a
// single pipeline run and never mutated after creation.
type KeywordAnalysis struct {
	MainKeyword string             `json:"main_keyword"`
	Keywords    []KeywordCandidate `json:"keywords"`
	Titles      []TitleCandidate   `json:"titles"`
	Strategy    ContentStrategy    `json:"content_strategy"`
}

// Selection holds the keywords and title chosen from one KeywordAnalysis.
// Keywords preserve selection order and contain no duplicates.
type Selection struct {
	Keywords []string `json:"selected_keywords"`
	Title    string   `json:"selected_title"`
}

// ScriptVersion is one rendered narration variant. Created once by the
// version generator, never mutated, consumed by the render client.
type ScriptVersion struct {
	VersionID       string    `json:"version_id"`
	Language        string    `json:"language"`
	Style           string    `json:"style"`
	Tone            string    `json:"tone"`
	Title           string    `json:"title"`
	ScriptText      string    `json:"script"`
	DurationSeconds int       `json:"duration"`
	VoiceID         string    `json:"voice_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// JobState is a render job's lifecycle state. Transitions are monotonic.
type JobState string

const (
	JobSubmitted  JobState = "submitted"
	JobProcessing JobState = "processing"
	JobDone       JobState = "done"
	JobFailed     JobState = "failed"
	JobTimedOut   JobState = "timed_out"
)

// FailureKind names the terminal failure of a render job
type FailureKind string

const (
	FailureSubmission    FailureKind = "submission_error"
	FailureRemote        FailureKind = "remote_error"
	FailureArtifactFetch FailureKind = "artifact_fetch_error"
	FailureTimeout       FailureKind = "timed_out"
)

// RenderJob tracks one talking-head render through the remote API.
// The render client owns all state transitions.
type RenderJob struct {
	JobID       string      `json:"job_id"`
	AssetName   string      `json:"asset_name"`
	VersionID   string      `json:"version_id"`
	ScriptText  string      `json:"script"`
	VoiceID     string      `json:"voice_id"`
	Quality     string      `json:"quality"`
	State       JobState    `json:"state"`
	Simulated   bool        `json:"simulated,omitempty"`
	ArtifactRef string      `json:"artifact_ref,omitempty"`
	FailureKind FailureKind `json:"failure_kind,omitempty"`
	ErrorDetail string      `json:"error_detail,omitempty"`
	Attempts    int         `json:"attempts,omitempty"`
}

// Terminal reports whether the job has reached a final state
func (j *RenderJob) Terminal() bool {
	switch j.State {
	case JobDone, JobFailed, JobTimedOut:
		return true
	}
	return false
}

// BatchItem is one unit of work: a source asset and/or a topic.
// Language overrides the batch default when set.
type BatchItem struct {
	Name      string       `json:"name"`
	ImagePath string       `json:"image_path,omitempty"`
	Topic     string       `json:"topic,omitempty"`
	Language  LanguageCode `json:"language,omitempty"`
}

// VersionResult records the render outcome for one script version
type VersionResult struct {
	VersionID   string   `json:"version_id"`
	Title       string   `json:"title"`
	ScriptText  string   `json:"script"`
	ArtifactRef string   `json:"artifact_ref,omitempty"`
	State       JobState `json:"state"`
	Simulated   bool     `json:"simulated,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// ItemStatus summarizes one batch item's outcome
type ItemStatus string

const (
	StatusSuccess ItemStatus = "success"
	StatusPartial ItemStatus = "partial"
	StatusFailed  ItemStatus = "failed"
)

// PipelineResult is the persisted record for one batch item. The result
// slice returned by a batch run always matches the input order.
type PipelineResult struct {
	Item        string          `json:"item"`
	Index       int             `json:"-"`
	Language    LanguageCode    `json:"language"`
	Quality     string          `json:"quality"`
	Topic       string          `json:"topic"`
	Keywords    []string        `json:"keywords"`
	Title       string          `json:"title"`
	Versions    []VersionResult `json:"versions"`
	Status      ItemStatus      `json:"status"`
	FailedStage string          `json:"failed_stage,omitempty"`
	Error       string          `json:"error,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
