package lexicon

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JakeFAU/hackathon-analyzer/internal/analyzer"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate())
}

func TestDomainRulesDeclarationOrder(t *testing.T) {
	t.Parallel()

	want := []analyzer.Domain{
		analyzer.DomainAIML,
		analyzer.DomainBlockchain,
		analyzer.DomainCloud,
		analyzer.DomainMobile,
		analyzer.DomainWebDevelopment,
		analyzer.DomainIoT,
		analyzer.DomainSpaceTech,
		analyzer.DomainSocialImpact,
	}
	got := make([]analyzer.Domain, 0, len(DomainRules()))
	for _, rule := range DomainRules() {
		got = append(got, rule.Domain)
	}
	require.Equal(t, want, got)
}

func TestDefaultTechnologiesReturnsCopy(t *testing.T) {
	t.Parallel()

	first := DefaultTechnologies()
	first[0].Name = "mutated"
	second := DefaultTechnologies()
	require.Equal(t, "JavaScript", second[0].Name)
	require.Len(t, second, 3)
}

func TestSummaryTemplateFallsBackToGeneric(t *testing.T) {
	t.Parallel()

	require.Contains(t, SummaryTemplate(analyzer.DomainAIML), "artificial intelligence")
	require.Equal(t, genericSummary, SummaryTemplate(analyzer.DomainMobile))
	require.Equal(t, genericSummary, SummaryTemplate(analyzer.DomainGeneral))
}

func TestDomainRequirementsDefault(t *testing.T) {
	t.Parallel()

	require.Len(t, DomainRequirements(analyzer.DomainCloud), 2)
	require.Equal(t, []string{"Enthusiasm to learn and build something amazing!"},
		DomainRequirements(analyzer.DomainIoT))
}

func TestDomainTipsUnknownDomain(t *testing.T) {
	t.Parallel()

	require.Nil(t, DomainTips(analyzer.DomainSpaceTech))
	require.Len(t, DomainTips(analyzer.DomainBlockchain), 2)
}
