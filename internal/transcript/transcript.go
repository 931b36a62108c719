// Package transcript reads token usage out of Claude Code session transcripts.
//
// A transcript is an append-only JSONL file written by the host; each line is
// one message record. Only the final record matters for context estimation,
// since its usage block reflects the tokens occupying the window right now.
package transcript

import (
	"bufio"
	"encoding/json"
	"math"
	"os"
)

// DefaultWindow is the context window assumed when no size is configured.
// The right denominator really depends on the active model; the host does not
// tell us, so this stays a config knob with a 200k default.
const DefaultWindow = 200000

// Scanner buffer sizes. Transcript lines carry whole tool results, so they
// can run to megabytes.
const (
	scanBufSize = 64 * 1024
	scanMaxLine = 10 * 1024 * 1024
)

// Usage holds the token counters of a single message record.
type Usage struct {
	InputTokens         int `json:"input_tokens"`
	CacheCreationTokens int `json:"cache_creation_input_tokens"`
	CacheReadTokens     int `json:"cache_read_input_tokens"`
}

// Total sums the counters that contribute to context occupancy. Output tokens
// are deliberately excluded: they are what the model produced, not what sits
// in the window.
func (u Usage) Total() int {
	return u.InputTokens + u.CacheCreationTokens + u.CacheReadTokens
}

// record is the slice of a transcript line we care about.
type record struct {
	Message struct {
		Usage *Usage `json:"usage"`
	} `json:"message"`
}

// LastUsage streams the file at path and returns the usage block of its final
// non-empty line. It returns (nil, nil) when the file has no lines, the final
// line is not valid JSON, or the record carries no usage object; callers
// treat all of those as "no data", not errors. Only I/O failures (missing
// file, unreadable file, over-long line) surface as errors.
func LastUsage(path string) (*Usage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, scanBufSize), scanMaxLine)

	var last []byte
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		// Bytes() aliases the scanner's buffer; keep our own copy.
		last = append(last[:0], line...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(last) == 0 {
		return nil, nil
	}

	var rec record
	if err := json.Unmarshal(last, &rec); err != nil {
		return nil, nil
	}
	return rec.Message.Usage, nil
}

// Percent converts a token total into a whole percentage of the window,
// rounded to nearest. A non-positive window falls back to DefaultWindow.
func Percent(total, window int) int {
	if window <= 0 {
		window = DefaultWindow
	}
	return int(math.Round(float64(total) / float64(window) * 100))
}
