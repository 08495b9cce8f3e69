package service

import (
	"strings"

	"scientist-twin/internal/domain"
)

// resonanceTemplate is the deterministic explanation for one shared trait:
// a lead sentence (with a {name} placeholder) plus the topical keywords the
// evidence extractor should look for in the biography.
type resonanceTemplate struct {
	lead     string
	keywords []string
}

var resonanceTemplates = map[domain.Dimension]map[domain.Value]resonanceTemplate{
	domain.DimApproach: {
		domain.ApproachTheoretical:   {"Like you, {name} approached problems through abstract reasoning.", []string{"theory", "mathematical", "equation", "formula"}},
		domain.ApproachExperimental:  {"You both believe in testing ideas hands-on.", []string{"experiment", "laboratory", "discovered", "tested"}},
		domain.ApproachApplied:       {"Like you, {name} focused on making science useful.", []string{"practical", "application", "developed", "implemented"}},
		domain.ApproachObservational: {"You share {name}'s gift for observation and pattern recognition.", []string{"observed", "pattern", "data", "survey"}},
	},
	domain.DimCollaboration: {
		domain.CollabSolo:      {"Like you, {name} thrived working independently.", []string{"alone", "solitary", "independent", "independently"}},
		domain.CollabSmallTeam: {"You both work best with trusted collaborators.", []string{"collaborat", "worked with", "partner", "together"}},
		domain.CollabLargeTeam: {"Like you, {name} excelled at leading large teams.", []string{"led", "directed", "team", "organization", "founded"}},
		domain.CollabMentor:    {"You share {name}'s dedication to mentoring.", []string{"taught", "mentor", "students", "trained", "professor"}},
	},
	domain.DimRisk: {
		domain.RiskConservative: {"Like you, {name} preferred methodical, proven approaches.", []string{"meticulous", "careful", "systematic", "rigorous"}},
		domain.RiskCalculated:   {"You both carefully weigh risks before committing.", []string{"strategic", "planned", "considered", "calculated"}},
		domain.RiskBold:         {"You share {name}'s appetite for breakthrough thinking.", []string{"revolutionary", "pioneer", "breakthrough", "first", "unconventional"}},
		domain.RiskHedged:       {"Like you, {name} balanced bold ideas with pragmatic backup plans.", []string{"diverse", "multiple", "varied", "balanced"}},
	},
	domain.DimMotivation: {
		domain.MotivationCuriosity:   {"Pure curiosity drives you both.", []string{"curious", "passion", "fascinated", "love of"}},
		domain.MotivationImpact:      {"You share {name}'s drive to make a tangible difference.", []string{"help", "improve", "benefit", "society", "humanity"}},
		domain.MotivationRecognition: {"Like you, {name} pursued excellence and acknowledgment.", []string{"award", "prize", "honor", "recognition", "medal"}},
		domain.MotivationDuty:        {"You share {name}'s sense of duty to nation.", []string{"nation", "India", "country", "service"}},
	},
	domain.DimAdversity: {
		domain.AdversityPersist: {"Like you, {name} redoubled efforts when facing obstacles.", []string{"persever", "persist", "despite", "overcame"}},
		domain.AdversityPivot:   {"You both adapt fluidly when facing barriers.", []string{"changed", "shifted", "adapted", "new direction"}},
		domain.AdversityFight:   {"Like you, {name} directly challenged unfair systems.", []string{"fought", "challenged", "opposed", "battle"}},
		domain.AdversityAccept:  {"You share {name}'s philosophical acceptance while staying focused.", []string{"philosophical", "accepted", "graceful"}},
	},
	domain.DimBreadth: {
		domain.BreadthSpecialist:        {"Like you, {name} went deep in one focused area.", []string{"specialist", "expert", "focused", "dedicated"}},
		domain.BreadthGeneralist:        {"You share {name}'s broad intellectual curiosity.", []string{"broad", "diverse", "various", "multiple fields"}},
		domain.BreadthInterdisciplinary: {"Like you, {name} worked across multiple fields.", []string{"interdisciplinary", "combined", "bridged", "intersection"}},
		domain.BreadthExpanding:         {"You both started deep then expanded scope.", []string{"expanded", "grew", "evolved", "broadened"}},
	},
	domain.DimAuthority: {
		domain.AuthorityIndependent:   {"Like you, {name} worked best outside traditional structures.", []string{"independent", "own path", "unconventional"}},
		domain.AuthorityInstitutional: {"You share {name}'s dedication to building institutions.", []string{"institution", "organization", "established", "founded"}},
		domain.AuthorityReformer:      {"Like you, {name} challenged norms while working within systems.", []string{"reform", "changed", "improved", "modernized"}},
		domain.AuthorityRevolutionary: {"You share {name}'s revolutionary approach.", []string{"revolutionary", "breakthrough", "pioneered", "first"}},
	},
	domain.DimCommunication: {
		domain.CommReserved:      {"Like you, {name} let work speak for itself.", []string{"quietly", "modest", "humble", "reserved"}},
		domain.CommCharismatic:   {"You share {name}'s gift for explaining ideas.", []string{"spoke", "lectured", "communicated", "explained"}},
		domain.CommWritten:       {"Like you, {name} communicated through detailed writing.", []string{"wrote", "published", "authored", "books", "papers"}},
		domain.CommDemonstrative: {"You both believe in showing rather than telling.", []string{"built", "created", "demonstrated", "showed"}},
	},
	domain.DimTimeHorizon: {
		domain.HorizonImmediate: {"Like you, {name} focused on urgent problems.", []string{"urgent", "immediate", "pressing", "crisis"}},
		domain.HorizonMedium:    {"You share {name}'s strategic multi-year thinking.", []string{"planned", "strategic", "project", "developed"}},
		domain.HorizonLongTerm:  {"Like you, {name} maintained decades-spanning vision.", []string{"vision", "long-term", "decades", "future"}},
		domain.HorizonEternal:   {"You both pursue timeless questions.", []string{"fundamental", "eternal", "timeless", "universal"}},
	},
	domain.DimResources: {
		domain.ResourcesFrugal:     {"Like you, {name} achieved great things with minimal resources.", []string{"limited", "modest", "frugal", "simple"}},
		domain.ResourcesAdequate:   {"You share {name}'s balanced approach to resources.", []string{"efficient", "practical", "reasonable"}},
		domain.ResourcesAbundant:   {"Like you, {name} mobilized major resources for big problems.", []string{"major", "large-scale", "significant", "funded"}},
		domain.ResourcesIdeasFirst: {"You both focus on ideas first.", []string{"idea", "concept", "theory", "vision"}},
	},
	domain.DimLegacy: {
		domain.LegacyKnowledge:    {"Like you, {name} wanted discoveries that outlast them.", []string{"discovery", "theorem", "theory", "understanding"}},
		domain.LegacyPeople:       {"You share {name}'s focus on influencing the next generation.", []string{"students", "trained", "mentored", "influenced"}},
		domain.LegacyInstitutions: {"Like you, {name} built lasting institutions.", []string{"founded", "established", "built", "institution"}},
		domain.LegacyMovement:     {"You share {name}'s desire to transform how society thinks.", []string{"movement", "revolution", "transformed", "changed"}},
	},
	domain.DimFailure: {
		domain.FailureAnalytical:    {"Like you, {name} treated failures as data points.", []string{"analyzed", "studied", "systematic", "methodical"}},
		domain.FailurePersistent:    {"You share {name}'s relentless persistence.", []string{"persistent", "persevered", "continued", "despite"}},
		domain.FailureSerendipitous: {"Like you, {name} found discoveries in failures.", []string{"discovered", "unexpected", "accident", "serendipity"}},
		domain.FailurePragmatic:     {"You share {name}'s practical approach to moving on.", []string{"practical", "pragmatic", "focused", "moved"}},
	},
}

// secondPerson rewrites the third-person verb forms of the trait
// descriptions for the "You ..." clause of a contrast sentence.
var secondPerson = strings.NewReplacer(
	"thrives", "thrive",
	"excels", "excel",
	"finds", "find",
	"goes", "go",
	"learns", "learn",
	"works", "work",
	"builds", "build",
	"challenges", "challenge",
	"creates", "create",
	"lets", "let",
	"enjoys", "enjoy",
	"focuses", "focus",
	"thinks", "think",
	"needs", "need",
	"secures", "secure",
	"achieves", "achieve",
	"treats", "treat",
	"tries", "try",
	"looks", "look",
	"moves", "move",
	"prefers", "prefer",
	"embraces", "embrace",
	"explores", "explore",
	"adapts", "adapt",
	"responds", "respond",
	"maintains", "maintain",
	"pursues", "pursue",
	"communicates", "communicate",
	"approaches", "approach",
	"seeks", "seek",
	"wants", "want",
	"values", "value",
	"shows", "show",
	"starts", "start",
)

// archetypeStyles synthesizes a working-style line when the stored field is
// empty or a known generic placeholder. {field} is substituted.
var archetypeStyles = map[string]string{
	"Experimental Pioneer":     "Known for rigorous hands-on experimentation and meticulous lab work in {field}.",
	"Theoretical Visionary":    "Approached {field} through deep mathematical reasoning and theoretical frameworks.",
	"Institution Builder":      "Combined research excellence with building lasting institutions in {field}.",
	"Distinguished Researcher": "Maintained high standards of research excellence throughout their career in {field}.",
	"Intuitive Visionary":      "Known for bold, intuitive leaps in {field} that others later proved correct.",
	"Contemporary Leader":      "Leads by example in {field}, balancing research with mentorship.",
}

// archetypeMoments is the last-resort character moment per archetype.
var archetypeMoments = map[string]string{
	"Experimental Pioneer":     "Pioneered groundbreaking experimental techniques in {field}.",
	"Theoretical Visionary":    "Developed influential theoretical frameworks in {field}.",
	"Institution Builder":      "Founded key research institutions advancing {field} in India.",
	"Distinguished Researcher": "Received major recognition for contributions to {field}.",
	"Contemporary Leader":      "Currently leading transformative initiatives in {field}.",
}

// momentKeywords flag a defining achievement inside the moments list.
var momentKeywords = []string{
	"award", "prize", "discovered", "invented", "founded", "breakthrough",
	"published", "first", "developed", "pioneered", "became", "led", "launched",
}

// momentIntroPatterns exclude Wikipedia-intro style moments that describe
// who the person is rather than something they did.
var momentIntroPatterns = []string{
	"is an indian", "was an indian", "is a indian", "was a indian",
	"born on", "born in", "(born", "is an american", "was an american",
	"is a scientist", "was a scientist", "who headed", "who served",
}

func renderTemplate(tpl, name, field string) string {
	tpl = strings.ReplaceAll(tpl, "{name}", name)
	return strings.ReplaceAll(tpl, "{field}", field)
}
