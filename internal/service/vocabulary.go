package service

import (
	"strings"

	"scientist-twin/internal/domain"
)

// traitDescriptions phrases each (dimension, value) pair as a third-person
// clause. The narrative fallback composes these into resonance and contrast
// sentences, so every clause must read naturally after "you" or a name.
var traitDescriptions = map[domain.Dimension]map[domain.Value]string{
	domain.DimApproach: {
		domain.ApproachTheoretical:   "approaches problems through mathematical reasoning and abstract thinking",
		domain.ApproachExperimental:  "prefers hands-on experimentation and empirical validation",
		domain.ApproachApplied:       "focuses on practical applications and real-world impact",
		domain.ApproachObservational: "excels at pattern recognition and careful observation",
	},
	domain.DimCollaboration: {
		domain.CollabSolo:      "thrives working independently with deep focus",
		domain.CollabSmallTeam: "works best with a few trusted collaborators",
		domain.CollabLargeTeam: "excels at orchestrating large collaborative efforts",
		domain.CollabMentor:    "finds fulfillment in teaching while researching",
	},
	domain.DimRisk: {
		domain.RiskConservative: "prefers proven paths with strong evidence",
		domain.RiskCalculated:   "carefully weighs risks before committing",
		domain.RiskBold:         "embraces unconventional ideas and breakthrough thinking",
		domain.RiskHedged:       "explores risky ideas while maintaining safer alternatives",
	},
	domain.DimMotivation: {
		domain.MotivationCuriosity:   "driven purely by the joy of understanding",
		domain.MotivationImpact:      "motivated by making a tangible difference in lives",
		domain.MotivationRecognition: "seeks acknowledgment and validation of excellence",
		domain.MotivationDuty:        "driven by responsibility to country and community",
	},
	domain.DimAdversity: {
		domain.AdversityPersist: "responds to obstacles with redoubled determination",
		domain.AdversityPivot:   "adapts fluidly when facing barriers",
		domain.AdversityFight:   "directly challenges unfair systems and rejection",
		domain.AdversityAccept:  "philosophically accepts setbacks while staying focused",
	},
	domain.DimBreadth: {
		domain.BreadthSpecialist:        "goes extremely deep in one focused area",
		domain.BreadthGeneralist:        "learns broadly across many fields",
		domain.BreadthInterdisciplinary: "works at the intersection of multiple fields",
		domain.BreadthExpanding:         "starts deep then gradually expands scope",
	},
	domain.DimAuthority: {
		domain.AuthorityIndependent:   "works best outside traditional structures",
		domain.AuthorityInstitutional: "builds and strengthens institutions",
		domain.AuthorityReformer:      "challenges norms while working within systems",
		domain.AuthorityRevolutionary: "creates entirely new frameworks",
	},
	domain.DimCommunication: {
		domain.CommReserved:      "lets work speak for itself",
		domain.CommCharismatic:   "enjoys explaining ideas to broad audiences",
		domain.CommWritten:       "communicates through detailed documentation",
		domain.CommDemonstrative: "shows rather than tells through building",
	},
	domain.DimTimeHorizon: {
		domain.HorizonImmediate: "focuses on urgent problems needing solutions now",
		domain.HorizonMedium:    "thinks in terms of achievable multi-year goals",
		domain.HorizonLongTerm:  "maintains decades-spanning vision",
		domain.HorizonEternal:   "pursues timeless questions transcending eras",
	},
	domain.DimResources: {
		domain.ResourcesFrugal:     "achieves great things with minimal resources",
		domain.ResourcesAdequate:   "needs reasonable resources, avoids excess",
		domain.ResourcesAbundant:   "secures big resources for big problems",
		domain.ResourcesIdeasFirst: "focuses on ideas, lets resources follow",
	},
	domain.DimLegacy: {
		domain.LegacyKnowledge:    "wants discoveries that outlast them",
		domain.LegacyPeople:       "values the students and people influenced",
		domain.LegacyInstitutions: "builds systems that continue their work",
		domain.LegacyMovement:     "seeks to change how society thinks",
	},
	domain.DimFailure: {
		domain.FailureAnalytical:    "treats failures as data points for analysis",
		domain.FailurePersistent:    "tries again with modifications until success",
		domain.FailureSerendipitous: "looks for unexpected discoveries in failures",
		domain.FailurePragmatic:     "moves on quickly to more promising directions",
	},
}

// relatedPairs lists value pairs that earn partial credit. The table is
// symmetric: scoring checks both orderings.
var relatedPairs = map[domain.Dimension][][2]domain.Value{
	domain.DimApproach: {
		{domain.ApproachTheoretical, domain.ApproachObservational},
		{domain.ApproachExperimental, domain.ApproachApplied},
	},
	domain.DimCollaboration: {
		{domain.CollabSolo, domain.CollabSmallTeam},
		{domain.CollabLargeTeam, domain.CollabMentor},
	},
	domain.DimRisk: {
		{domain.RiskCalculated, domain.RiskHedged},
		{domain.RiskBold, domain.RiskCalculated},
	},
	domain.DimMotivation: {
		{domain.MotivationCuriosity, domain.MotivationRecognition},
		{domain.MotivationImpact, domain.MotivationDuty},
	},
	domain.DimAdversity: {
		{domain.AdversityPersist, domain.AdversityFight},
		{domain.AdversityPivot, domain.AdversityAccept},
	},
	domain.DimBreadth: {
		{domain.BreadthGeneralist, domain.BreadthInterdisciplinary},
		{domain.BreadthSpecialist, domain.BreadthExpanding},
	},
	domain.DimAuthority: {
		{domain.AuthorityIndependent, domain.AuthorityReformer},
		{domain.AuthorityInstitutional, domain.AuthorityReformer},
	},
	domain.DimCommunication: {
		{domain.CommWritten, domain.CommReserved},
		{domain.CommCharismatic, domain.CommDemonstrative},
	},
	domain.DimTimeHorizon: {
		{domain.HorizonMedium, domain.HorizonLongTerm},
		{domain.HorizonLongTerm, domain.HorizonEternal},
	},
	domain.DimResources: {
		{domain.ResourcesFrugal, domain.ResourcesAdequate},
		{domain.ResourcesAdequate, domain.ResourcesAbundant},
	},
	domain.DimLegacy: {
		{domain.LegacyKnowledge, domain.LegacyPeople},
		{domain.LegacyInstitutions, domain.LegacyMovement},
	},
	domain.DimFailure: {
		{domain.FailureAnalytical, domain.FailurePragmatic},
		{domain.FailurePersistent, domain.FailureSerendipitous},
	},
}

// domainFields narrows the candidate pool by coarse quiz domain. Unknown
// keys mean "no filter".
var domainFields = map[string][]string{
	"cosmos":      {"Physics", "Space Science", "Astrophysics", "Astronomy", "Aerospace"},
	"quantum":     {"Physics", "Mathematics", "Computer Science"},
	"life":        {"Biology", "Medicine", "Biochemistry", "Neuroscience", "Chemistry"},
	"earth":       {"Environmental Science", "Agriculture", "Ecology", "Earth Science"},
	"engineering": {"Engineering", "Technology", "Computer Science", "Aerospace"},
}

// areRelated reports whether two values earn partial credit on a dimension.
func areRelated(dim domain.Dimension, a, b domain.Value) bool {
	if a == "" || b == "" {
		return false
	}
	for _, pair := range relatedPairs[dim] {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// describeTrait returns the clause for a (dimension, value) pair, or "" for
// values outside the vocabulary.
func describeTrait(dim domain.Dimension, v domain.Value) string {
	return traitDescriptions[dim][v]
}

// traitTitle renders a dimension key for display: "time_horizon" -> "Time Horizon".
func traitTitle(dim domain.Dimension) string {
	parts := strings.Split(string(dim), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
