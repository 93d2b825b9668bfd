package lexicon

import (
	"errors"
	"fmt"
)

// Validate checks the structural invariants the synthesizer and classifier
// rely on. It returns a joined error describing every broken table.
func Validate() error {
	var errs []error
	for i, rule := range domainRules {
		if rule.Domain == "" || len(rule.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("domain rule %d: empty label or keywords", i))
		}
	}
	seen := make(map[string]struct{}, len(technologyRules))
	for i, rule := range technologyRules {
		name := rule.Technology.Name
		if name == "" || len(rule.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("technology rule %d: empty name or keywords", i))
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("technology rule %d: duplicate name %q", i, name))
		}
		seen[name] = struct{}{}
	}
	if len(defaultTechnologies) == 0 {
		errs = append(errs, errors.New("default technologies: empty"))
	}
	if len(universalRequirements) > MaxRequirements {
		errs = append(errs, fmt.Errorf("universal requirements: %d exceed cap %d",
			len(universalRequirements), MaxRequirements))
	}
	if len(universalTips) < UniversalTipCount || UniversalTipCount > MaxTips {
		errs = append(errs, fmt.Errorf("universal tips: need %d of at most %d, have %d",
			UniversalTipCount, MaxTips, len(universalTips)))
	}
	if len(curatedProjects) != 2 {
		errs = append(errs, fmt.Errorf("curated projects: want 2, have %d", len(curatedProjects)))
	}
	if len(resourceTemplates) != 3 {
		errs = append(errs, fmt.Errorf("resource templates: want 3, have %d", len(resourceTemplates)))
	}
	return errors.Join(errs...)
}
