package plan

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nlebedev/corner/internal/domain"
	"github.com/nlebedev/corner/internal/llm"
	"github.com/nlebedev/corner/internal/template"
)

// Planner produces finalized weekly plans.
type Planner interface {
	// GenerateWeek builds a complete weekly plan for the given inputs. It
	// always succeeds: model failures silently fall back to the catalog.
	GenerateWeek(ctx context.Context, meta domain.PlanMeta) *domain.WeekPlan
}

type planner struct {
	requester *Requester
	log       *slog.Logger
}

// NewPlanner creates a Planner. client may be nil, in which case every plan
// comes from the deterministic catalog path.
func NewPlanner(client llm.Client, log *slog.Logger) Planner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &planner{
		requester: NewRequester(client),
		log:       log,
	}
}

// GenerateWeek tries the model first, unconditionally. On any failure it
// falls back to the sport's template catalog; there is no retry and no
// merging between the two sources. The load guardrail runs on whichever
// list was produced.
func (p *planner) GenerateWeek(ctx context.Context, meta domain.PlanMeta) *domain.WeekPlan {
	source := domain.SourceLLM

	sessions, err := p.requester.RequestWeek(ctx, meta)
	if err != nil || len(sessions) == 0 {
		if err != nil {
			p.log.Debug("model plan unavailable, using catalog", "error", err)
		}
		source = domain.SourceTemplate
		sessions = template.ForWeek(meta.Sport, domain.ParseLevel(meta.Level), meta.SessionsPerWeek, meta.Contraindications)
	}

	sessions = ApplyLoadGuardrail(sessions, meta.LastWeekLoad)

	return &domain.WeekPlan{
		ID:       uuid.NewString(),
		Meta:     meta,
		Sessions: sessions,
		Source:   source,
	}
}
