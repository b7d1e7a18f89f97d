package plan

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nlebedev/corner/internal/domain"
	"github.com/nlebedev/corner/internal/llm"
)

// Session duration bounds applied to model-sourced sessions. Catalog entries
// are hand-authored within range and are not re-clamped.
const (
	minSessionMin = 20
	maxSessionMin = 60
)

const safetyPostscript = "\n\nIf anything feels sharp, unusual or worrying, stop or reduce intensity. " +
	"Context to remember: %s."

// Requester asks the model for a week of sessions and sanitizes every field
// of the untrusted response. Any failure anywhere in the pipeline is
// reported as an error; nothing partial ever reaches the caller.
type Requester struct {
	client llm.Client
}

// NewRequester creates a Requester. A nil client means every request fails
// immediately, which callers convert into the catalog fallback.
func NewRequester(client llm.Client) *Requester {
	return &Requester{client: client}
}

// planResponse is the JSON shape requested from the model. Items are kept
// as loose maps: no field type can be trusted before sanitization.
type planResponse struct {
	Sessions []map[string]any `json:"sessions"`
}

// RequestWeek obtains a sanitized session list of length
// min(requested, available) from the model, or an error on any failure.
func (r *Requester) RequestWeek(ctx context.Context, meta domain.PlanMeta) ([]domain.Session, error) {
	if r.client == nil {
		return nil, llm.ErrUnavailable
	}

	level := domain.ParseLevel(meta.Level)
	prompt := buildPlanPrompt(meta, targetMinutes(level, meta.SessionsPerWeek, meta.LastWeekLoad))

	resp, err := r.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("plan generation call: %w", err)
	}

	parsed, err := llm.ExtractJSON[planResponse](resp.Text, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing plan response: %w", err)
	}

	sessions, err := sanitizeSessions(parsed.Sessions, meta)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, errors.New("model returned no usable sessions")
	}

	domain.SortByDay(sessions)
	return sessions, nil
}

// targetMinutes computes the weekly minutes hint embedded in the prompt. It
// feeds only the prompt text; downstream logic never depends on it.
func targetMinutes(level domain.Level, sessionsPerWeek, lastWeekLoad int) int {
	if lastWeekLoad <= 0 {
		switch level {
		case domain.LevelNovice:
			return sessionsPerWeek * 25
		case domain.LevelIntermediate:
			return sessionsPerWeek * 35
		default:
			return sessionsPerWeek * 40
		}
	}

	target := int(math.Round(float64(lastWeekLoad) * 0.8))
	if target < 60 {
		return 60
	}
	if target > 300 {
		return 300
	}
	return target
}

// sanitizeSessions validates and repairs each raw item, stopping once the
// requested count is reached. Days are forced onto unused weekdays by a
// cyclic forward scan; when every day is already taken (only possible past
// seven sessions) the item is dropped rather than left on a duplicate day.
func sanitizeSessions(items []map[string]any, meta domain.PlanMeta) ([]domain.Session, error) {
	sessions := make([]domain.Session, 0, len(items))
	usedDays := make(map[string]bool, len(domain.DaysOrder))

	for _, item := range items {
		if len(sessions) >= meta.SessionsPerWeek {
			break
		}

		day, _ := stringField(item, "day")
		if !domain.ValidDay(day) {
			day = "Mon"
		}
		day, ok := nextFreeDay(day, usedDays)
		if !ok {
			continue
		}
		usedDays[day] = true

		intensity, _ := stringField(item, "intensity")
		intensity = titleCase(intensity)
		if !domain.CanonicalIntensity(intensity) {
			intensity = domain.IntensityModerate
		}

		duration, err := intField(item, "duration_min", 30)
		if err != nil {
			return nil, fmt.Errorf("session duration: %w", err)
		}
		if duration < minSessionMin {
			duration = minSessionMin
		}
		if duration > maxSessionMin {
			duration = maxSessionMin
		}

		focus, ok := stringField(item, "focus")
		if !ok || focus == "" {
			focus = fmt.Sprintf("%s session", meta.Sport)
		}

		notes, err := textField(item, "notes")
		if err != nil {
			return nil, err
		}
		contra := meta.Contraindications
		if strings.TrimSpace(contra) == "" {
			contra = "no specific issues noted"
		}
		notes += fmt.Sprintf(safetyPostscript, contra)

		sessions = append(sessions, domain.Session{
			Day:         day,
			Focus:       focus,
			Intensity:   intensity,
			DurationMin: duration,
			// Load is always recomputed; the response value is never trusted.
			LoadUnits: domain.IntensityFactor(intensity) * duration,
			Notes:     notes,
		})
	}

	return sessions, nil
}

// nextFreeDay scans forward cyclically from day's canonical index and
// returns the first weekday not yet assigned in this response.
func nextFreeDay(day string, used map[string]bool) (string, bool) {
	base := domain.DayIndex(day)
	for offset := 0; offset < len(domain.DaysOrder); offset++ {
		candidate := domain.DaysOrder[(base+offset)%len(domain.DaysOrder)]
		if !used[candidate] {
			return candidate, true
		}
	}
	return "", false
}

// titleCase normalizes an intensity label: "hard" and "HARD" both become
// "Hard". Multi-word labels stay non-canonical and default to Moderate.
func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func stringField(item map[string]any, key string) (string, bool) {
	v, ok := item[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// textField reads an optional string field. A present value of any other
// type is a hard error that fails the whole request, same as duration.
func textField(item map[string]any, key string) (string, error) {
	v, ok := item[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q: unsupported type %T", key, v)
	}
	return s, nil
}

// intField coerces a JSON value to int the way the response contract
// allows: numbers truncate, numeric strings parse. Anything else is a hard
// error that fails the whole request.
func intField(item map[string]any, key string, fallback int) (int, error) {
	v, ok := item[key]
	if !ok || v == nil {
		return fallback, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("field %q: %q is not an integer", key, n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("field %q: unsupported type %T", key, v)
	}
}
