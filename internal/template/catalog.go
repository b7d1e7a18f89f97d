// Package template holds the hand-authored session catalogs used whenever
// model-backed generation is unavailable or returns nothing usable, plus the
// selector that shapes a catalog to the requested week.
package template

import (
	"fmt"
	"strings"

	"github.com/nlebedev/corner/internal/domain"
)

// orDefault substitutes a placeholder when the athlete stated no
// contraindications. Placeholder wording varies per catalog entry and is
// kept distinct on purpose.
func orDefault(contraindications, placeholder string) string {
	if strings.TrimSpace(contraindications) == "" {
		return placeholder
	}
	return contraindications
}

// BoxingCatalog returns the fixed three-session boxing catalog for a level.
// The caller's contraindication text is embedded verbatim into each entry's
// notes. Load units here are hand-tuned per entry, not derived from the
// intensity-factor formula used for model-sourced sessions.
func BoxingCatalog(level domain.Level, contraindications string) []domain.Session {
	switch level {
	case domain.LevelNovice:
		return []domain.Session{
			{
				Day:         "Tue",
				Focus:       "Boxing basics: stance, guard & straight punches",
				Intensity:   "Easy–Moderate",
				DurationMin: 25,
				LoadUnits:   30,
				Notes: "Warm-up: 5 min skipping or brisk walk.\n" +
					"Technique: 4 × 2 min shadow boxing (jab–cross, basic guard) with 1 min rest.\n" +
					"Bag/pillow: 4 × 1 min straight punches, light power.\n" +
					"Cool-down: 5 min shoulder, wrist and calf stretches.\n" +
					fmt.Sprintf("Contraindications to watch: %s.", orDefault(contraindications, "None stated")),
			},
			{
				Day:         "Thu",
				Focus:       "Footwork & defence foundations",
				Intensity:   "Moderate",
				DurationMin: 25,
				LoadUnits:   35,
				Notes: "Warm-up: 5 min dynamic mobility (hips, ankles, shoulders).\n" +
					"Main: 4 × 2 min shadow boxing with basic steps (forward/back/side) and guard up.\n" +
					"Defence drill: 3 × 2 min slip/duck movements in front of mirror or wall.\n" +
					"Core: 3 × 20 s plank, 20 s rest.\n" +
					"Cool-down: 5 min relaxed walk + breathing.\n" +
					fmt.Sprintf("Avoid any movements that aggravate: %s.", orDefault(contraindications, "None")),
			},
			{
				Day:         "Sat",
				Focus:       "Conditioning: simple intervals + technique",
				Intensity:   "Moderate",
				DurationMin: 30,
				LoadUnits:   40,
				Notes: "Warm-up: 5 min skipping or light jog.\n" +
					"Intervals: 6 × 30 s fast straight punches (shadow or bag) + 60 s easy movement.\n" +
					"Technique: 4 × 2 min shadow boxing, mixing punches with basic defence.\n" +
					"Cool-down: 5–8 min stretch (hips, hamstrings, shoulders).\n" +
					fmt.Sprintf("Stop if pain or dizziness occurs, especially given: %s.", orDefault(contraindications, "no stated issues")),
			},
		}
	case domain.LevelIntermediate:
		return []domain.Session{
			{
				Day:         "Mon",
				Focus:       "Technical combinations & footwork",
				Intensity:   "Moderate–Hard",
				DurationMin: 35,
				LoadUnits:   55,
				Notes: "Warm-up: 5 min skipping + joint mobility.\n" +
					"Combos on bag/shadow: 5 × 3 min (jab–cross–hook, jab–cross–cross–hook), 60–90 s rest.\n" +
					"Footwork rounds: 3 × 2 min circling and cutting the ring.\n" +
					"Cool-down: 5 min light walk + stretching.\n" +
					fmt.Sprintf("Modify combinations if they aggravate: %s.", orDefault(contraindications, "None")),
			},
			{
				Day:         "Wed",
				Focus:       "Defence, counters & core",
				Intensity:   "Moderate",
				DurationMin: 35,
				LoadUnits:   50,
				Notes: "Warm-up: 5 min dynamic warm-up.\n" +
					"Defence rounds: 4 × 3 min slips, ducks, parries, then counter 1–2 punches.\n" +
					"Shadow or bag work: 3 × 2 min focusing on clean form at moderate pace.\n" +
					"Core circuit: 3 rounds (20 s plank, 10 sit-ups, 10 Russian twists), 60 s rest.\n" +
					fmt.Sprintf("Respect pain or previous issues: %s.", orDefault(contraindications, "None")),
			},
			{
				Day:         "Fri",
				Focus:       "Conditioning: intervals & power focus",
				Intensity:   "Hard",
				DurationMin: 35,
				LoadUnits:   60,
				Notes: "Warm-up: 5–7 min.\n" +
					"Intervals: 8 × 30 s high-output bag punching (all punches) + 60 s light movement.\n" +
					"Power focus: 3 × 2 min heavier single shots and 2–3 punch combinations.\n" +
					"Cool-down: 5–8 min stretching & breathing.\n" +
					"Keep technique tidy; reduce power if form breaks under fatigue.",
			},
		}
	default:
		return []domain.Session{
			{
				Day:         "Tue",
				Focus:       "High-complexity combinations & movement",
				Intensity:   "Hard",
				DurationMin: 40,
				LoadUnits:   70,
				Notes: "Warm-up: 8 min mixed skipping + mobility.\n" +
					"Complex combos: 5 × 3 min on bag/pads, mixing level changes and angles.\n" +
					"Footwork intensity: 3 × 2 min high-tempo ring movement.\n" +
					"Cool-down: 5–8 min mobility & stretch.\n" +
					fmt.Sprintf("Monitor joints and previous issues: %s.", orDefault(contraindications, "None declared")),
			},
			{
				Day:         "Thu",
				Focus:       "Defence, counters & conditioning mixed",
				Intensity:   "Hard",
				DurationMin: 40,
				LoadUnits:   70,
				Notes: "Warm-up: 6–8 min.\n" +
					"Defence & counter rounds: 4 × 3 min with slips, blocks and quick counters.\n" +
					"Conditioning: 6 × 30 s punch sprints + 60 s active rest.\n" +
					"Core & stability: 3 × 30 s plank variations.\n" +
					"Cool-down as normal; adjust if any warning signs.",
			},
			{
				Day:         "Sat",
				Focus:       "Mixed technical conditioning (no full sparring)",
				Intensity:   "Moderate–Hard",
				DurationMin: 40,
				LoadUnits:   65,
				Notes: "Warm-up: 6–8 min.\n" +
					"Shadow rounds: 3 × 3 min visualising an opponent.\n" +
					"Bag rounds: 4 × 3 min mixing power and volume.\n" +
					"Cool-down: 5–8 min.\n" +
					"If usually sparring, this tool deliberately avoids contact to reduce risk.",
			},
		}
	}
}

// GenericCatalog synthesizes a catalog for any non-boxing sport: one
// moderate conditioning session per requested slot, spread across the week
// at every second day.
func GenericCatalog(sport string, count int, contraindications string) []domain.Session {
	sessions := make([]domain.Session, 0, count)
	for i := 0; i < count; i++ {
		sessions = append(sessions, domain.Session{
			Day:         domain.DaysOrder[(i*2)%len(domain.DaysOrder)],
			Focus:       fmt.Sprintf("%s conditioning session %d", sport, i+1),
			Intensity:   domain.IntensityModerate,
			DurationMin: 30,
			LoadUnits:   40,
			Notes: "Warm-up: 5–10 min easy movement.\n" +
				"Main: intervals or tempo work relevant to the sport.\n" +
				"Cool-down: 5–10 min mobility & stretching.\n" +
				fmt.Sprintf("Contraindications to respect: %s.", orDefault(contraindications, "None stated")),
		})
	}
	return sessions
}
