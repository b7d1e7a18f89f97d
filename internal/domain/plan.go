package domain

// PlanMeta records the inputs a weekly plan was generated from. It travels
// with the plan so exports and the Q&A assistant can describe the context.
type PlanMeta struct {
	Sport             string
	Level             string
	SessionsPerWeek   int
	LastWeekLoad      int
	Contraindications string
}

// PlanSource identifies which generation path produced a plan.
type PlanSource string

const (
	SourceLLM      PlanSource = "llm"
	SourceTemplate PlanSource = "template"
)

// WeekPlan is a finalized weekly plan: an ordered session list plus the
// inputs it was built from. Plans are rebuilt wholesale on every generation
// request; there is no identity or persistence beyond the running process.
type WeekPlan struct {
	ID       string
	Meta     PlanMeta
	Sessions []Session
	Source   PlanSource
}

// AdherenceEntry is one post-hoc reflection row: whether the session was
// completed and how hard it felt (RPE, 0-10).
type AdherenceEntry struct {
	Completed bool
	RPE       int
}
