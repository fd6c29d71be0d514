// Package report serializes completed results for sharing outside the
// app: a pretty-printed JSON document that round-trips losslessly.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/abhisek/disha/internal/quiz"
	"github.com/abhisek/disha/internal/scoring"
)

// Document is the exported report envelope.
type Document struct {
	StudentName    string              `json:"studentName"`
	EducationLevel quiz.EducationLevel `json:"educationLevel"`
	Results        scoring.Results     `json:"results"`
	Answers        quiz.Answers        `json:"answers"`
	ExportedAt     time.Time           `json:"exportedAt"`
}

// Build assembles the export document from a completed attempt.
func Build(results scoring.Results, answers quiz.Answers, exportedAt time.Time) Document {
	return Document{
		StudentName:    results.UserProfile.Name,
		EducationLevel: results.UserProfile.EducationLevel,
		Results:        results,
		Answers:        answers,
		ExportedAt:     exportedAt,
	}
}

// Marshal renders the document as indented JSON.
func Marshal(doc Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return b, nil
}

// Filename derives the export file name from the student's name, e.g.
// "Asha Rao" becomes "Asha_Rao_career_results.json".
func Filename(studentName string) string {
	name := strings.TrimSpace(studentName)
	if name == "" {
		name = "career"
	}
	name = whitespaceRe.ReplaceAllString(name, "_")
	name = unsafeRe.ReplaceAllString(name, "")
	return name + "_career_results.json"
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[^\w.-]`)
)

// Write serializes the document into dir (or the working directory when
// dir is empty) and returns the full path written.
func Write(doc Document, dir string) (string, error) {
	b, err := Marshal(doc)
	if err != nil {
		return "", err
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
	}
	path := filepath.Join(dir, Filename(doc.StudentName))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
