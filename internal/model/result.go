package model

import (
	"time"

	"github.com/nguyentantai21042004/guide-transcriber/internal/steps"
)

// TimestampLayout formats Result.Timestamp and output file suffixes.
const TimestampLayout = "20060102_150405"

// Unknown is used for video metadata that could not be resolved.
const Unknown = "Unknown"

// Result is everything one pipeline run produces for a single video.
type Result struct {
	Title            string       `json:"title"`
	URL              string       `json:"url"`
	VideoID          string       `json:"video_id"`
	Timestamp        string       `json:"timestamp"`
	Language         string       `json:"language,omitempty"`
	Transcript       string       `json:"transcript"`
	KeyPoints        string       `json:"key_points"`
	TranscriptLength int          `json:"transcript_length"`
	KeyPointsLength  int          `json:"key_points_length"`
	Steps            []steps.Step `json:"steps"`

	CreatedAt time.Time `json:"-"`
}

// NewResult fills the derived fields (timestamp and lengths) from the inputs.
func NewResult(title, url, videoID, transcript, keyPoints string, found []steps.Step, now time.Time) *Result {
	if found == nil {
		found = []steps.Step{}
	}
	return &Result{
		Title:            title,
		URL:              url,
		VideoID:          videoID,
		Timestamp:        now.Format(TimestampLayout),
		Transcript:       transcript,
		KeyPoints:        keyPoints,
		TranscriptLength: len([]rune(transcript)),
		KeyPointsLength:  len([]rune(keyPoints)),
		Steps:            found,
		CreatedAt:        now,
	}
}
