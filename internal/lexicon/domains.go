package lexicon

import "github.com/JakeFAU/hackathon-analyzer/internal/analyzer"

// DomainRule maps a domain label to the substrings that select it.
type DomainRule struct {
	Domain   analyzer.Domain
	Keywords []string
}

var domainRules = []DomainRule{
	{analyzer.DomainAIML, []string{
		"machine learning", "ai", "artificial intelligence", "neural", "deep learning", "ml", "data science",
	}},
	{analyzer.DomainBlockchain, []string{
		"blockchain", "ethereum", "web3", "crypto", "defi", "nft", "smart contract",
	}},
	{analyzer.DomainCloud, []string{"cloud", "aws", "azure", "gcp", "google cloud", "serverless"}},
	{analyzer.DomainMobile, []string{"mobile", "ios", "android", "react native", "flutter", "app development"}},
	{analyzer.DomainWebDevelopment, []string{"web", "frontend", "backend", "full stack", "react", "node"}},
	{analyzer.DomainIoT, []string{"iot", "internet of things", "embedded", "arduino", "raspberry pi"}},
	{analyzer.DomainSpaceTech, []string{"space", "nasa", "satellite", "astronomy"}},
	{analyzer.DomainSocialImpact, []string{"social", "impact", "sustainability", "education", "healthcare"}},
}

// DomainRules returns the domain table in scan order. Callers must not modify it.
func DomainRules() []DomainRule {
	return domainRules
}
