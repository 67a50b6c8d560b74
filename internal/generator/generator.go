package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"cc-analytics-go/internal/types"
)

// Options parameterize one dataset build.
type Options struct {
	Calls                 int
	Agents                int
	Seed                  int64
	SimulateInterruptions bool

	// Now anchors the end of the 30-day call window. Zero means time.Now().
	Now time.Time
}

// GenerateAgents builds the agent roster. IDs start at AG1000.
func GenerateAgents(rng *rand.Rand, n int) []types.Agent {
	agents := make([]types.Agent, 0, n)
	for i := 0; i < n; i++ {
		agents = append(agents, types.Agent{
			AgentID: fmt.Sprintf("AG%d", 1000+i),
			Name:    choice(rng, firstNamesCS) + " " + choice(rng, lastNamesCS),
			Team:    choice(rng, Teams),
		})
	}
	return agents
}

// GenerateTranscriptSegments produces the speaker turns for one call. The
// agent opens with a greeting, then speakers alternate. With interruption
// simulation on, 5% of segments are backshifted to overlap the previous one.
func GenerateTranscriptSegments(rng *rand.Rand, durationSec float64, language string, simulateInterruptions bool) []types.TranscriptSegment {
	agentPhrases, customerPhrases := phrasePools(language)

	var segments []types.TranscriptSegment
	current := 0.0
	speaker := "AGENT"

	nSegments := int(durationSec/15) + 2 + rng.Intn(5)

	for i := 0; i < nSegments; i++ {
		if current >= durationSec {
			break
		}

		var text string
		if speaker == "AGENT" {
			text = choice(rng, agentPhrases)
		} else {
			text = choice(rng, customerPhrases)
		}
		wordCount := len(strings.Fields(text))

		segDuration := uniform(rng, 3, 8)
		start := current
		end := durationSec
		if current+segDuration < durationSec {
			end = current + segDuration
		}

		if simulateInterruptions && rng.Float64() < 0.05 {
			overlap := uniform(rng, 0.2, 0.8)
			if start-overlap > 0 {
				start -= overlap
			} else {
				start = 0
			}
		}

		baseWPM := 145.0 // agent speaking rate
		if speaker == "CUSTOMER" {
			baseWPM = 138
		}
		wpm := int(baseWPM + uniform(rng, -0.2*baseWPM, 0.2*baseWPM))

		segments = append(segments, types.TranscriptSegment{
			Speaker:   speaker,
			Text:      text,
			StartTime: round(start, 2),
			EndTime:   round(end, 2),
			WordCount: wordCount,
			WPM:       wpm,
		})

		if speaker == "AGENT" {
			speaker = "CUSTOMER"
		} else {
			speaker = "AGENT"
		}
		current = end + uniform(rng, 0.5, 2)
	}

	return segments
}

// DetectSilences finds gaps over 3s between consecutive segments. Gaps over
// 10s count as holds. Returns the periods and the silence-to-duration ratio.
func DetectSilences(segments []types.TranscriptSegment, durationSec float64) ([]types.SilencePeriod, float64) {
	sorted := sortedByStart(segments)

	var silences []types.SilencePeriod
	for i := 0; i+1 < len(sorted); i++ {
		gapStart := sorted[i].EndTime
		gapEnd := sorted[i+1].StartTime
		gap := gapEnd - gapStart
		if gap > 3 {
			kind := "pause"
			if gap > 10 {
				kind = "hold"
			}
			silences = append(silences, types.SilencePeriod{
				Start:    round(gapStart, 2),
				End:      round(gapEnd, 2),
				Duration: round(gap, 2),
				Type:     kind,
			})
		}
	}

	total := 0.0
	for _, s := range silences {
		total += s.Duration
	}
	ratio := 0.0
	if durationSec > 0 {
		ratio = round(total/durationSec, 3)
	}
	return silences, ratio
}

// DetectInterruptions reports segments starting before the previous one ended.
func DetectInterruptions(segments []types.TranscriptSegment) []types.Interruption {
	sorted := sortedByStart(segments)

	var interruptions []types.Interruption
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i+1].StartTime < sorted[i].EndTime {
			interruptions = append(interruptions, types.Interruption{
				Time:        round(sorted[i+1].StartTime, 2),
				Interrupter: sorted[i+1].Speaker,
				Interrupted: sorted[i].Speaker,
			})
		}
	}
	return interruptions
}

// SpeakingRate computes words per minute across one speaker's segments.
func SpeakingRate(segments []types.TranscriptSegment, speaker string) float64 {
	totalWords := 0
	totalSec := 0.0
	for _, s := range segments {
		if s.Speaker != speaker {
			continue
		}
		totalWords += s.WordCount
		totalSec += s.EndTime - s.StartTime
	}
	if totalSec == 0 {
		return 0
	}
	return round(float64(totalWords)/totalSec*60, 1)
}

// GenerateDataset builds the whole synthetic corpus in one shot. The same
// options always produce the same dataset.
func GenerateDataset(opts Options) *types.Dataset {
	rng := rand.New(rand.NewSource(opts.Seed))

	agents := GenerateAgents(rng, opts.Agents)

	endDate := opts.Now
	if endDate.IsZero() {
		endDate = time.Now()
	}
	startDate := endDate.AddDate(0, 0, -30)
	windowSec := int64(endDate.Sub(startDate) / time.Second)

	calls := make([]types.CallRecord, 0, opts.Calls)
	transcripts := make(map[string][]types.TranscriptSegment, opts.Calls)

	for i := 0; i < opts.Calls; i++ {
		callID := fmt.Sprintf("CALL-%d", 10000+i)
		timestamp := startDate.Add(time.Duration(rng.Int63n(windowSec+1)) * time.Second)

		direction := weightedChoice(rng, []string{"INBOUND", "OUTBOUND"}, []float64{0.8, 0.2})
		language := weightedChoice(rng, []string{"cs", "sk", "en"}, []float64{0.4, 0.3, 0.3})

		agent := agents[rng.Intn(len(agents))]

		topic := choice(rng, TopicNames)
		profile := Topics[topic]

		duration := gauss(rng, profile.AvgDurationSec, profile.AvgDurationSec*0.3)
		if duration < 60 {
			duration = 60
		}
		duration = round(duration, 1)

		segments := GenerateTranscriptSegments(rng, duration, language, opts.SimulateInterruptions)
		transcripts[callID] = segments

		agentTalk, customerTalk := 0.0, 0.0
		for _, s := range segments {
			if s.Speaker == "AGENT" {
				agentTalk += s.EndTime - s.StartTime
			} else {
				customerTalk += s.EndTime - s.StartTime
			}
		}

		_, silenceRatio := DetectSilences(segments, duration)

		interruptCount := 0
		if opts.SimulateInterruptions {
			interruptCount = len(DetectInterruptions(segments))
		}

		compliance := generateCompliance(rng)
		resolution := generateResolution(rng, topic)
		quality := generateQuality(rng, resolution)
		topicData := generateTopicData(rng, topic, language)
		sStart, sMiddle, sEnd := generateSentimentJourney(rng, topic, resolution)

		var salesOpp *types.SalesOpportunity
		if agent.Team == "Sales" {
			salesOpp = generateSalesOpportunity(rng)
		}

		complianceScore := compliancePassRate(compliance) * 100
		qualityScore := qualityBinaryScore(quality)
		autoQA := round(complianceScore*0.6+qualityScore*0.4, 1)

		calls = append(calls, types.CallRecord{
			CallID:          callID,
			Timestamp:       timestamp,
			Direction:       direction,
			Language:        language,
			AgentID:         agent.AgentID,
			AgentName:       agent.Name,
			Team:            agent.Team,
			DurationSec:     duration,
			AgentTalkSec:    round(agentTalk, 1),
			CustomerTalkSec: round(customerTalk, 1),
			Turns:           len(segments),
			SilenceRatio:    silenceRatio,
			InterruptCount:  interruptCount,
			SentimentStart:  sStart,
			SentimentMiddle: sMiddle,
			SentimentEnd:    sEnd,
			Compliance:      compliance,
			Resolution:      resolution,
			Quality:         quality,
			TopicData:       topicData,
			SalesOpp:        salesOpp,
			AutoQAScore:     autoQA,
			BenchmarkAHT:    profile.BenchmarkAHTMin,
		})
	}

	return &types.Dataset{
		Calls:       calls,
		Transcripts: transcripts,
		Agents:      agents,
		Seed:        opts.Seed,
	}
}

func sortedByStart(segments []types.TranscriptSegment) []types.TranscriptSegment {
	sorted := make([]types.TranscriptSegment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartTime < sorted[j].StartTime })
	return sorted
}
