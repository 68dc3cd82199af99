package arbiter

import (
	"context"
	"strings"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/pkg/engine"
	"github.com/interacai/flowcore/pkg/models"
	"github.com/interacai/flowcore/pkg/services"
)

// Matcher selects the active workflows whose trigger claims an inbound
// event. Kind compatibility narrows the candidates; the per-workflow
// trigger_config predicate decides.
type Matcher struct {
	workflows *services.WorkflowService
}

// NewMatcher creates a new Matcher.
func NewMatcher(workflows *services.WorkflowService) *Matcher {
	if workflows == nil {
		panic("NewMatcher: workflows must not be nil")
	}
	return &Matcher{workflows: workflows}
}

// Match returns the tenant's active workflows claimed by the event, in
// creation order.
func (m *Matcher) Match(ctx context.Context, tenantID string, event *models.InboundEvent) ([]*ent.Workflow, error) {
	var kinds []string
	switch event.Kind {
	case models.EventKindMessageCreated:
		kinds = []string{"keyword", "intent"}
	case models.EventKindLeadStatusUpdate:
		kinds = []string{"lead_event"}
	default:
		return nil, nil
	}

	candidates, err := m.workflows.ActiveByTriggerKinds(ctx, tenantID, kinds...)
	if err != nil {
		return nil, err
	}

	matched := make([]*ent.Workflow, 0, len(candidates))
	for _, wf := range candidates {
		if matchesPredicate(wf.TriggerConfig, event) {
			matched = append(matched, wf)
		}
	}
	return matched, nil
}

// matchesPredicate evaluates a trigger_config against the event data.
// Present keys are AND-composed; an absent key matches trivially, so an
// empty config claims every compatible event.
func matchesPredicate(config map[string]any, event *models.InboundEvent) bool {
	if len(config) == 0 {
		return true
	}

	if keyword, ok := configString(config, "keyword"); ok {
		body := strings.ToLower(event.MessageBody())
		if !strings.Contains(body, strings.ToLower(keyword)) {
			return false
		}
	}

	if want, ok := configString(config, "intent"); ok {
		got, _ := event.Data["intent"].(string)
		if got != want {
			return false
		}
	}

	if want, ok := configString(config, "status"); ok {
		got, _ := event.Data["new_status"].(string)
		if got != want {
			return false
		}
	}

	return true
}

func configString(config map[string]any, key string) (string, bool) {
	v, ok := config[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return engine.Stringify(v), true
}
