package authz

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Action names an operation guarded by the policy table
type Action string

const (
	ActionContestView       Action = "contest.view"
	ActionContestUpdate     Action = "contest.update"
	ActionContestDelete     Action = "contest.delete"
	ActionDivisionAdd       Action = "division.add"
	ActionDivisionRemove    Action = "division.remove"
	ActionCollectionAdd     Action = "collection.add"
	ActionCollectionRemove  Action = "collection.remove"
	ActionCollectionAssign  Action = "collection.assign"
	ActionParticipantAssign Action = "participant.assign"
	ActionParticipantRole   Action = "participant.role"
	ActionParticipantRemove Action = "participant.remove"
	ActionMembersReset      Action = "members.reset"
	ActionRequestCreate     Action = "request.create"
	ActionRequestList       Action = "request.list"
	ActionRequestAccept     Action = "request.accept"
	ActionRequestDecline    Action = "request.decline"
	ActionInvite            Action = "invite"
	ActionCopy              Action = "copy"
	ActionImpressionImport  Action = "impression.import"
	ActionTastingAdd        Action = "tasting.add"
	ActionStatementDivision Action = "statement.division"
	ActionStatementContest  Action = "statement.contest"
	ActionStatementSummary  Action = "statement.summary"
	ActionResultsExport     Action = "results.export"
	ActionContestStats      Action = "contest.stats"
	ActionTeamStats         Action = "team.stats"
	ActionProgressContest   Action = "progress.contest"
	ActionProgressDivision  Action = "progress.division"
)

//go:embed policy.yaml
var defaultPolicy []byte

// Rule is one row of the policy table
type Rule struct {
	Action   Action `yaml:"action"`
	Public   bool   `yaml:"public"`
	Contest  []Role `yaml:"contest"`
	Division []Role `yaml:"division"`
}

// Policy maps every action to its rule
type Policy struct {
	rules map[Action]Rule
}

// ParsePolicy reads a policy table from YAML
func ParsePolicy(data []byte) (*Policy, error) {
	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}

	p := &Policy{rules: make(map[Action]Rule, len(doc.Rules))}
	for _, r := range doc.Rules {
		if r.Action == "" {
			return nil, fmt.Errorf("parse policy: rule without action")
		}
		if _, dup := p.rules[r.Action]; dup {
			return nil, fmt.Errorf("parse policy: duplicate rule for %q", r.Action)
		}
		if !r.Public && len(r.Contest) == 0 && len(r.Division) == 0 {
			return nil, fmt.Errorf("parse policy: rule %q grants nobody", r.Action)
		}
		p.rules[r.Action] = r
	}
	return p, nil
}

// DefaultPolicy returns the embedded policy table
func DefaultPolicy() *Policy {
	p, err := ParsePolicy(defaultPolicy)
	if err != nil {
		panic(err)
	}
	return p
}

// Rule returns the rule for an action
func (p *Policy) Rule(action Action) (Rule, bool) {
	r, ok := p.rules[action]
	return r, ok
}
