// Package webhook submits completed results to an optional external
// collection endpoint. Submission is strictly best-effort: it reads the
// computed results, never mutates them, and a failure is logged and
// swallowed so it can never affect the quiz flow.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/disha/internal/quiz"
	"github.com/abhisek/disha/internal/scoring"
)

// SubmissionData is the flattened row posted to the endpoint. Scalar
// columns carry the summary; the full results and answers ride along as
// JSON blobs so nothing is lost.
type SubmissionData struct {
	StudentName          string
	EducationLevel       string
	CurrentStream        string
	DegreeType           string
	TopTrack1            string
	TopTrack1Percentage  int
	TopTrack2            string
	TopTrack2Percentage  int
	TopTrack3            string
	TopTrack3Percentage  int
	StreamRecommendation string
	JEERecommendation    string
	RoutineTolerance     int
	StressTolerance      int
	Clarity              int
	Confidence           int
	RiskFlags            string
	AutomotiveInterest   bool
	CodingAddon          bool
	Timestamp            string
	FullResultsJSON      string
	AnswersJSON          string
}

// Prepare flattens results and answers into a SubmissionData row.
func Prepare(results scoring.Results, answers quiz.Answers) (SubmissionData, error) {
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return SubmissionData{}, fmt.Errorf("marshal results: %w", err)
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return SubmissionData{}, fmt.Errorf("marshal answers: %w", err)
	}

	profile := results.UserProfile
	data := SubmissionData{
		StudentName:          profile.Name,
		EducationLevel:       string(profile.EducationLevel),
		CurrentStream:        orNA(string(profile.CurrentStream)),
		DegreeType:           orNA(string(profile.DegreeType)),
		StreamRecommendation: string(results.StreamRecommendation),
		JEERecommendation:    string(results.JEERecommendation),
		RoutineTolerance:     results.MeterScores.RoutineTolerance,
		StressTolerance:      results.MeterScores.StressTolerance,
		Clarity:              results.MeterScores.Clarity,
		Confidence:           results.Confidence,
		RiskFlags:            joinFlags(results.RiskFlags),
		AutomotiveInterest:   results.AutomotiveInterest,
		CodingAddon:          results.CodingAddon,
		Timestamp:            results.Timestamp.UTC().Format(time.RFC3339),
		FullResultsJSON:      string(resultsJSON),
		AnswersJSON:          string(answersJSON),
	}

	names := [3]*string{&data.TopTrack1, &data.TopTrack2, &data.TopTrack3}
	pcts := [3]*int{&data.TopTrack1Percentage, &data.TopTrack2Percentage, &data.TopTrack3Percentage}
	for i := 0; i < 3; i++ {
		if i < len(results.TopTracks) {
			*names[i] = results.TopTracks[i].Track.Info().Name
			*pcts[i] = results.TopTracks[i].Percentage
		} else {
			*names[i] = "N/A"
		}
	}
	return data, nil
}

// Values encodes the row as form values, one field per column.
func (d SubmissionData) Values() url.Values {
	v := url.Values{}
	v.Set("studentName", d.StudentName)
	v.Set("educationLevel", d.EducationLevel)
	v.Set("currentStream", d.CurrentStream)
	v.Set("degreeType", d.DegreeType)
	v.Set("topTrack1", d.TopTrack1)
	v.Set("topTrack1Percentage", strconv.Itoa(d.TopTrack1Percentage))
	v.Set("topTrack2", d.TopTrack2)
	v.Set("topTrack2Percentage", strconv.Itoa(d.TopTrack2Percentage))
	v.Set("topTrack3", d.TopTrack3)
	v.Set("topTrack3Percentage", strconv.Itoa(d.TopTrack3Percentage))
	v.Set("streamRecommendation", d.StreamRecommendation)
	v.Set("jeeRecommendation", d.JEERecommendation)
	v.Set("routineTolerance", strconv.Itoa(d.RoutineTolerance))
	v.Set("stressTolerance", strconv.Itoa(d.StressTolerance))
	v.Set("clarity", strconv.Itoa(d.Clarity))
	v.Set("confidence", strconv.Itoa(d.Confidence))
	v.Set("riskFlags", d.RiskFlags)
	v.Set("automotiveInterest", strconv.FormatBool(d.AutomotiveInterest))
	v.Set("codingAddon", strconv.FormatBool(d.CodingAddon))
	v.Set("timestamp", d.Timestamp)
	v.Set("fullResultsJSON", d.FullResultsJSON)
	v.Set("answersJSON", d.AnswersJSON)
	return v
}

// Client posts submissions to a configured endpoint.
type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
	log     *zap.Logger
}

// NewClient builds a webhook client. An empty url yields a disabled
// client whose Submit is a no-op.
func NewClient(url string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:     url,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Enabled reports whether a submission endpoint is configured.
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Submit posts the flattened results as a form-encoded request.
// Failures are logged and swallowed; the returned bool only tells the
// caller whether the endpoint acknowledged the row, for display.
func (c *Client) Submit(ctx context.Context, results scoring.Results, answers quiz.Answers) bool {
	if !c.Enabled() {
		c.log.Debug("webhook not configured, skipping submission")
		return false
	}

	data, err := Prepare(results, answers)
	if err != nil {
		c.log.Warn("prepare webhook submission", zap.Error(err))
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := data.Values().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(body))
	if err != nil {
		c.log.Warn("build webhook request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("webhook submission failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("webhook rejected submission",
			zap.Int("status", resp.StatusCode),
			zap.String("student", data.StudentName))
		return false
	}

	c.log.Info("results submitted",
		zap.String("student", data.StudentName),
		zap.String("topTrack", data.TopTrack1))
	return true
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func joinFlags(flags []scoring.RiskFlag) string {
	if len(flags) == 0 {
		return "None"
	}
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}
