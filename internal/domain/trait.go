package domain

// Dimension is one of the 12 fixed trait axes every profile is scored on.
type Dimension string

const (
	DimApproach      Dimension = "approach"
	DimCollaboration Dimension = "collaboration"
	DimRisk          Dimension = "risk"
	DimMotivation    Dimension = "motivation"
	DimAdversity     Dimension = "adversity"
	DimBreadth       Dimension = "breadth"
	DimAuthority     Dimension = "authority"
	DimCommunication Dimension = "communication"
	DimTimeHorizon   Dimension = "time_horizon"
	DimResources     Dimension = "resources"
	DimLegacy        Dimension = "legacy"
	DimFailure       Dimension = "failure"
)

// Dimensions lists all axes in quiz order. Scoring divides by its length,
// so a scientist record with missing dimensions can never reach 1.0.
var Dimensions = []Dimension{
	DimApproach,
	DimCollaboration,
	DimRisk,
	DimMotivation,
	DimAdversity,
	DimBreadth,
	DimAuthority,
	DimCommunication,
	DimTimeHorizon,
	DimResources,
	DimLegacy,
	DimFailure,
}

// Value is a categorical trait value. Each dimension admits exactly four.
// An unknown string is not an error: it simply never matches anything.
type Value string

const (
	ApproachTheoretical   Value = "theoretical"
	ApproachExperimental  Value = "experimental"
	ApproachApplied       Value = "applied"
	ApproachObservational Value = "observational"

	CollabSolo      Value = "solo"
	CollabSmallTeam Value = "small_team"
	CollabLargeTeam Value = "large_team"
	CollabMentor    Value = "mentor"

	RiskConservative Value = "conservative"
	RiskCalculated   Value = "calculated"
	RiskBold         Value = "bold"
	RiskHedged       Value = "hedged"

	MotivationCuriosity   Value = "curiosity"
	MotivationImpact      Value = "impact"
	MotivationRecognition Value = "recognition"
	MotivationDuty        Value = "duty"

	AdversityPersist Value = "persist"
	AdversityPivot   Value = "pivot"
	AdversityFight   Value = "fight"
	AdversityAccept  Value = "accept"

	BreadthSpecialist        Value = "specialist"
	BreadthGeneralist        Value = "generalist"
	BreadthInterdisciplinary Value = "interdisciplinary"
	BreadthExpanding         Value = "expanding"

	AuthorityIndependent   Value = "independent"
	AuthorityInstitutional Value = "institutional"
	AuthorityReformer      Value = "reformer"
	AuthorityRevolutionary Value = "revolutionary"

	CommReserved      Value = "reserved"
	CommCharismatic   Value = "charismatic"
	CommWritten       Value = "written"
	CommDemonstrative Value = "demonstrative"

	HorizonImmediate Value = "immediate"
	HorizonMedium    Value = "medium"
	HorizonLongTerm  Value = "long_term"
	HorizonEternal   Value = "eternal"

	ResourcesFrugal     Value = "frugal"
	ResourcesAdequate   Value = "adequate"
	ResourcesAbundant   Value = "abundant"
	ResourcesIdeasFirst Value = "ideas_first"

	LegacyKnowledge    Value = "knowledge"
	LegacyPeople       Value = "people"
	LegacyInstitutions Value = "institutions"
	LegacyMovement     Value = "movement"

	FailureAnalytical    Value = "analytical"
	FailurePersistent    Value = "persistent"
	FailureSerendipitous Value = "serendipitous"
	FailurePragmatic     Value = "pragmatic"
)

// Profile is a quiz-taker's answer vector: one value per dimension.
// Built once from quiz answers, then passed by value and never mutated.
type Profile struct {
	Approach      Value `json:"approach"`
	Collaboration Value `json:"collaboration"`
	Risk          Value `json:"risk"`
	Motivation    Value `json:"motivation"`
	Adversity     Value `json:"adversity"`
	Breadth       Value `json:"breadth"`
	Authority     Value `json:"authority"`
	Communication Value `json:"communication"`
	TimeHorizon   Value `json:"time_horizon"`
	Resources     Value `json:"resources"`
	Legacy        Value `json:"legacy"`
	Failure       Value `json:"failure"`
}

// Traits is a scientist's trait vector. Same shape as Profile, but legacy
// database entries may lack dimensions; the empty string marks a missing one.
type Traits struct {
	Approach      Value `json:"approach,omitempty"`
	Collaboration Value `json:"collaboration,omitempty"`
	Risk          Value `json:"risk,omitempty"`
	Motivation    Value `json:"motivation,omitempty"`
	Adversity     Value `json:"adversity,omitempty"`
	Breadth       Value `json:"breadth,omitempty"`
	Authority     Value `json:"authority,omitempty"`
	Communication Value `json:"communication,omitempty"`
	TimeHorizon   Value `json:"time_horizon,omitempty"`
	Resources     Value `json:"resources,omitempty"`
	Legacy        Value `json:"legacy,omitempty"`
	Failure       Value `json:"failure,omitempty"`
}

// Get returns the profile value for a dimension.
func (p Profile) Get(d Dimension) Value {
	switch d {
	case DimApproach:
		return p.Approach
	case DimCollaboration:
		return p.Collaboration
	case DimRisk:
		return p.Risk
	case DimMotivation:
		return p.Motivation
	case DimAdversity:
		return p.Adversity
	case DimBreadth:
		return p.Breadth
	case DimAuthority:
		return p.Authority
	case DimCommunication:
		return p.Communication
	case DimTimeHorizon:
		return p.TimeHorizon
	case DimResources:
		return p.Resources
	case DimLegacy:
		return p.Legacy
	case DimFailure:
		return p.Failure
	}
	return ""
}

// Get returns the scientist value for a dimension; "" means missing.
func (t Traits) Get(d Dimension) Value {
	switch d {
	case DimApproach:
		return t.Approach
	case DimCollaboration:
		return t.Collaboration
	case DimRisk:
		return t.Risk
	case DimMotivation:
		return t.Motivation
	case DimAdversity:
		return t.Adversity
	case DimBreadth:
		return t.Breadth
	case DimAuthority:
		return t.Authority
	case DimCommunication:
		return t.Communication
	case DimTimeHorizon:
		return t.TimeHorizon
	case DimResources:
		return t.Resources
	case DimLegacy:
		return t.Legacy
	case DimFailure:
		return t.Failure
	}
	return ""
}

// Set assigns a profile value by dimension. Used by the quiz builder.
func (p *Profile) Set(d Dimension, v Value) {
	switch d {
	case DimApproach:
		p.Approach = v
	case DimCollaboration:
		p.Collaboration = v
	case DimRisk:
		p.Risk = v
	case DimMotivation:
		p.Motivation = v
	case DimAdversity:
		p.Adversity = v
	case DimBreadth:
		p.Breadth = v
	case DimAuthority:
		p.Authority = v
	case DimCommunication:
		p.Communication = v
	case DimTimeHorizon:
		p.TimeHorizon = v
	case DimResources:
		p.Resources = v
	case DimLegacy:
		p.Legacy = v
	case DimFailure:
		p.Failure = v
	}
}
