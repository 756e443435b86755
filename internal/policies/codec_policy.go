package policies

import (
	"context"
	"fmt"
	"slices"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"geoio/internal/core"
	"geoio/internal/types"
)

const (
	FlagAddMetadata   = "add_metadata"
	FlagPBFDenseNodes = "pbf_dense_nodes"
)

// CodecPolicy picks the reader/writer codec for a descriptor by switching
// on its format, compression and history flag. Rules are tried in order.
type CodecPolicy struct {
	Rules    []types.CodecRule
	byFormat map[types.Format][]int
}

func DefaultCodecRules() []types.CodecRule {
	return []types.CodecRule{
		{Name: "xml", Format: types.FormatXML, Flags: []string{FlagAddMetadata}},
		{Name: "pbf", Format: types.FormatPBF, Flags: []string{FlagPBFDenseNodes, FlagAddMetadata}},
		{Name: "opl", Format: types.FormatOPL, Flags: []string{FlagAddMetadata}},
	}
}

func NewCodecPolicy(rules []types.CodecRule) CodecPolicy {
	policy := CodecPolicy{Rules: rules}
	policy.compile()
	return policy
}

func (p *CodecPolicy) compile() {
	p.byFormat = map[types.Format][]int{}
	for idx, rule := range p.Rules {
		if rule.Format == types.FormatUnknown {
			continue
		}
		p.byFormat[rule.Format] = append(p.byFormat[rule.Format], idx)
	}
}

// Select validates desc and returns the plan of the first matching rule.
// A validation error is returned unchanged.
func (p CodecPolicy) Select(ctx context.Context, desc core.FileDescriptor) (types.CodecPlan, error) {
	if err := desc.Validate(); err != nil {
		return types.CodecPlan{}, err
	}
	assert.NotEmpty(ctx, string(desc.Format()), "validated descriptor must carry a format")

	for _, idx := range p.byFormat[desc.Format()] {
		rule := p.Rules[idx]
		if !matchesCompression(rule, desc.Compression()) || !matchesHistory(rule, desc.HasHistory()) {
			continue
		}
		plan := types.CodecPlan{
			Codec:       rule.Name,
			Format:      desc.Format(),
			Compression: desc.Compression(),
			History:     desc.HasHistory(),
			Flags:       map[string]bool{},
			Options:     desc.Options().Entries(),
		}
		for _, flag := range rule.Flags {
			plan.Flags[flag] = desc.Options().IsNotFalse(flag)
		}
		log.Ctx(ctx).Debug().
			Str("codec", rule.Name).
			Str("filename", desc.Filename()).
			Msg("codec selected")
		return plan, nil
	}
	return types.CodecPlan{}, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("no codec registered for %s/%s", desc.Format(), desc.Compression()))
}

func matchesCompression(rule types.CodecRule, compression types.Compression) bool {
	return len(rule.Compressions) == 0 || slices.Contains(rule.Compressions, compression)
}

func matchesHistory(rule types.CodecRule, history bool) bool {
	return rule.History == nil || *rule.History == history
}
