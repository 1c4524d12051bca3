// Package score extracts percentage scores from free-form LLM output.
// Every scoring agent funnels its raw model text through ParsePercentage so
// the tolerance rules live in one place.
package score

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrScoreNotFound reports that no "<digits>%" pattern was present in the
// model output. Callers must treat this as not-a-score, never as zero.
var ErrScoreNotFound = errors.New("score not found in response")

var percentRe = regexp.MustCompile(`(\d+)\s*%`)

// ParsePercentage scans text for the first run of digits followed by a
// percent sign and returns it as an integer. Values outside 0-100 are
// rejected rather than clamped.
func ParsePercentage(text string) (int, error) {
	m := percentRe.FindStringSubmatch(text)
	if m == nil {
		return 0, ErrScoreNotFound
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("parse percentage %q: %w", m[1], err)
	}
	if n < 0 || n > 100 {
		return 0, fmt.Errorf("percentage %d out of range [0,100]: %w", n, ErrScoreNotFound)
	}
	return n, nil
}
