package types

import "time"

type Agent struct {
	AgentID string `json:"agent_id"`
	Name    string `json:"agent_name"`
	Team    string `json:"team"`
}

// TranscriptSegment is one speaker turn produced by the simulated STT.
type TranscriptSegment struct {
	Speaker   string  `json:"speaker"` // AGENT or CUSTOMER
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	WordCount int     `json:"word_count"`
	WPM       int     `json:"wpm"`
}

type SilencePeriod struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
	Type     string  `json:"type"` // pause (>3s) or hold (>10s)
}

type Interruption struct {
	Time        float64 `json:"time"`
	Interrupter string  `json:"interrupter"`
	Interrupted string  `json:"interrupted"`
}

// Compliance holds the AutoQA compliance checkboxes for one call.
type Compliance struct {
	GreetingProper          bool     `json:"greeting_proper"`
	Identification          bool     `json:"identification"`
	CustomerVerification    bool     `json:"customer_verification"`
	DataProtectionMentioned bool     `json:"data_protection_mentioned"`
	CallRecordingNotice     bool     `json:"call_recording_notice"`
	ClearCommunication      bool     `json:"clear_communication"`
	NoMisleadingInfo        bool     `json:"no_misleading_info"`
	ProperClosing           bool     `json:"proper_closing"`
	OptOutOffered           bool     `json:"opt_out_offered"`
	CriticalViolations      []string `json:"critical_violations"`
}

// Checks returns the boolean compliance fields keyed by their wire names.
// Scoring and failure ranking iterate this instead of hard-coding fields.
func (c Compliance) Checks() map[string]bool {
	return map[string]bool{
		"greeting_proper":           c.GreetingProper,
		"identification":            c.Identification,
		"customer_verification":     c.CustomerVerification,
		"data_protection_mentioned": c.DataProtectionMentioned,
		"call_recording_notice":     c.CallRecordingNotice,
		"clear_communication":       c.ClearCommunication,
		"no_misleading_info":        c.NoMisleadingInfo,
		"proper_closing":            c.ProperClosing,
		"opt_out_offered":           c.OptOutOffered,
	}
}

const (
	ResolutionFull    = "full"
	ResolutionPartial = "partial"
	ResolutionNone    = "none"
)

type Resolution struct {
	IssueIdentified   bool   `json:"issue_identified"`
	IssueCategory     string `json:"issue_category"`
	Achieved          string `json:"resolution_achieved"` // full, partial or none
	CustomerSatisfied bool   `json:"customer_satisfied"`
	CallbackNeeded    bool   `json:"callback_needed"`
	Escalated         bool   `json:"escalated"`
	EscalationReason  string `json:"escalation_reason"`
}

type Quality struct {
	ActiveListening  bool     `json:"active_listening"`
	EmpathyShown     bool     `json:"empathy_shown"`
	SolutionOffered  bool     `json:"solution_offered"`
	ProfessionalTone bool     `json:"professional_tone"`
	CustomerNameUsed bool     `json:"customer_name_used"`
	ScriptAdherence  string   `json:"script_adherence"` // good, partial or poor
	CallControl      string   `json:"call_control"`
	PositiveMoments  []string `json:"positive_moments"`
	NegativeMoments  []string `json:"negative_moments"`
}

type TopicData struct {
	PrimaryTopic    string   `json:"primary_topic"`
	SubTopics       []string `json:"sub_topics"`
	CustomerIntent  string   `json:"customer_intent"`
	TopicComplexity int      `json:"topic_complexity"`
	Keywords        []string `json:"keywords"`
}

type SalesOpportunity struct {
	Type    string  `json:"type"` // upsell, cross_sell or closing
	Success bool    `json:"success"`
	Value   float64 `json:"value"` // EUR
	Product string  `json:"product"`
}

// CallRecord is one simulated call with its AutoQA outputs attached.
type CallRecord struct {
	CallID          string            `json:"call_id"`
	Timestamp       time.Time         `json:"timestamp"`
	Direction       string            `json:"direction"` // INBOUND or OUTBOUND
	Language        string            `json:"language"`  // cs, sk or en
	AgentID         string            `json:"agent_id"`
	AgentName       string            `json:"agent_name"`
	Team            string            `json:"team"`
	DurationSec     float64           `json:"duration_sec"`
	AgentTalkSec    float64           `json:"agent_talk_sec"`
	CustomerTalkSec float64           `json:"customer_talk_sec"`
	Turns           int               `json:"turns"`
	SilenceRatio    float64           `json:"silence_ratio"`
	InterruptCount  int               `json:"interrupt_count"`
	SentimentStart  float64           `json:"sentiment_start"`
	SentimentMiddle float64           `json:"sentiment_middle"`
	SentimentEnd    float64           `json:"sentiment_end"`
	Compliance      Compliance        `json:"compliance"`
	Resolution      Resolution        `json:"resolution"`
	Quality         Quality           `json:"quality"`
	TopicData       TopicData         `json:"topic_data"`
	SalesOpp        *SalesOpportunity `json:"sales_opportunity,omitempty"` // Sales team only
	AutoQAScore     float64           `json:"autoqa_score"`  // 0-100
	BenchmarkAHT    float64           `json:"benchmark_aht"` // minutes, per topic
}

// Dataset is the full synthetic corpus, regenerated in one shot from a seed.
type Dataset struct {
	Calls       []CallRecord                   `json:"calls"`
	Transcripts map[string][]TranscriptSegment `json:"transcripts"`
	Agents      []Agent                        `json:"agents"`
	Seed        int64                          `json:"seed"`
}

func (d *Dataset) Transcript(callID string) []TranscriptSegment {
	return d.Transcripts[callID]
}
