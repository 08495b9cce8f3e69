package service

import "scientist-twin/internal/domain"

// quizQuestions is the fixed 12-question deck, one question per trait
// dimension, in the order answers are recorded.
var quizQuestions = []domain.Question{
	{
		ID:        1,
		Dimension: domain.DimApproach,
		Text:      "When you encounter a tricky problem, what do you naturally do first?",
		Options: []domain.Option{
			{Text: "Think it through step by step on paper or in your head", MapsTo: domain.ApproachTheoretical},
			{Text: "Try things out and see what happens", MapsTo: domain.ApproachExperimental},
			{Text: "Think about how it connects to everyday life", MapsTo: domain.ApproachApplied},
			{Text: "Watch closely and notice patterns before deciding", MapsTo: domain.ApproachObservational},
		},
	},
	{
		ID:        2,
		Dimension: domain.DimCollaboration,
		Text:      "How do you like to work on projects or solve challenges?",
		Options: []domain.Option{
			{Text: "By myself - I do my best thinking alone", MapsTo: domain.CollabSolo},
			{Text: "With a small group of close friends or teammates", MapsTo: domain.CollabSmallTeam},
			{Text: "With lots of people all working together", MapsTo: domain.CollabLargeTeam},
			{Text: "Teaching others while I learn and work", MapsTo: domain.CollabMentor},
		},
	},
	{
		ID:        3,
		Dimension: domain.DimRisk,
		Text:      "When you hear about a new, unusual idea that might not work, you:",
		Options: []domain.Option{
			{Text: "Want to see proof it works before trying it", MapsTo: domain.RiskConservative},
			{Text: "Think carefully about the good and bad before deciding", MapsTo: domain.RiskCalculated},
			{Text: "Get excited and want to jump in right away", MapsTo: domain.RiskBold},
			{Text: "Try it secretly while still doing what usually works", MapsTo: domain.RiskHedged},
		},
	},
	{
		ID:        4,
		Dimension: domain.DimMotivation,
		Text:      "What makes you most excited about doing something?",
		Options: []domain.Option{
			{Text: "Finding out how things work - curiosity is the best reward", MapsTo: domain.MotivationCuriosity},
			{Text: "Making life better for people around me", MapsTo: domain.MotivationImpact},
			{Text: "Being really good at it and getting recognized", MapsTo: domain.MotivationRecognition},
			{Text: "Helping my family, community, or country", MapsTo: domain.MotivationDuty},
		},
	},
	{
		ID:        5,
		Dimension: domain.DimAdversity,
		Text:      "When something goes wrong or doesn't work out, you usually:",
		Options: []domain.Option{
			{Text: "Keep trying harder - challenges make me stronger", MapsTo: domain.AdversityPersist},
			{Text: "Find a different way to reach my goal", MapsTo: domain.AdversityPivot},
			{Text: "Stand up and fight to change what's unfair", MapsTo: domain.AdversityFight},
			{Text: "Accept it calmly and focus on what I can control", MapsTo: domain.AdversityAccept},
		},
	},
	{
		ID:        6,
		Dimension: domain.DimBreadth,
		Text:      "How do you try to learn something new?",
		Options: []domain.Option{
			{Text: "Go really deep into one thing until I master it completely", MapsTo: domain.BreadthSpecialist},
			{Text: "Learn a little bit about many different things", MapsTo: domain.BreadthGeneralist},
			{Text: "Connect ideas from two or three different areas", MapsTo: domain.BreadthInterdisciplinary},
			{Text: "Start with one thing, then slowly explore related topics", MapsTo: domain.BreadthExpanding},
		},
	},
	{
		ID:        7,
		Dimension: domain.DimAuthority,
		Text:      "How do you feel about rules and the way things are usually done?",
		Options: []domain.Option{
			{Text: "I like doing things my own way, even if it's different", MapsTo: domain.AuthorityIndependent},
			{Text: "I work well with teams and organizations - they help us achieve more", MapsTo: domain.AuthorityInstitutional},
			{Text: "I follow rules but try to improve the ones that don't work", MapsTo: domain.AuthorityReformer},
			{Text: "I create completely new ways of doing things when needed", MapsTo: domain.AuthorityRevolutionary},
		},
	},
	{
		ID:        8,
		Dimension: domain.DimCommunication,
		Text:      "If you had a brilliant new idea and want others to get interested, what would you do?",
		Options: []domain.Option{
			{Text: "Just work on it and let my results show others", MapsTo: domain.CommReserved},
			{Text: "Excitedly tell people about it and explain why it's cool", MapsTo: domain.CommCharismatic},
			{Text: "Write it down carefully so others can understand it fully", MapsTo: domain.CommWritten},
			{Text: "Build or create something to show them how it works", MapsTo: domain.CommDemonstrative},
		},
	},
	{
		ID:        9,
		Dimension: domain.DimTimeHorizon,
		Text:      "When you're working on something important, how far ahead do you think?",
		Options: []domain.Option{
			{Text: "What needs to be done right now or this week", MapsTo: domain.HorizonImmediate},
			{Text: "What I can finish this year or in a couple of years", MapsTo: domain.HorizonMedium},
			{Text: "What might happen many years from now", MapsTo: domain.HorizonLongTerm},
			{Text: "Big questions that matter no matter when", MapsTo: domain.HorizonEternal},
		},
	},
	{
		ID:        10,
		Dimension: domain.DimResources,
		Text:      "When you want to do something amazing, how do you think about what you need?",
		Options: []domain.Option{
			{Text: "I can do great things with very little - limits make me creative", MapsTo: domain.ResourcesFrugal},
			{Text: "I need enough to do it well, but not too much extra", MapsTo: domain.ResourcesAdequate},
			{Text: "Big dreams need big support - I'll get what's necessary", MapsTo: domain.ResourcesAbundant},
			{Text: "I focus on the idea first, the rest will follow", MapsTo: domain.ResourcesIdeasFirst},
		},
	},
	{
		ID:        11,
		Dimension: domain.DimLegacy,
		Text:      "What would make you feel most proud when you look back at your life?",
		Options: []domain.Option{
			{Text: "Discovering something new that people remember", MapsTo: domain.LegacyKnowledge},
			{Text: "Helping and inspiring the people I've worked with", MapsTo: domain.LegacyPeople},
			{Text: "Creating groups or systems that keep going after me", MapsTo: domain.LegacyInstitutions},
			{Text: "Starting a change in how people think about the world", MapsTo: domain.LegacyMovement},
		},
	},
	{
		ID:        12,
		Dimension: domain.DimFailure,
		Text:      "When something you tried doesn't work the way you hoped, you:",
		Options: []domain.Option{
			{Text: "Figure out what went wrong so I can learn from it", MapsTo: domain.FailureAnalytical},
			{Text: "Try again with some changes until it works", MapsTo: domain.FailurePersistent},
			{Text: "Look for the unexpected good things that came out of it", MapsTo: domain.FailureSerendipitous},
			{Text: "Move on to something more likely to succeed", MapsTo: domain.FailurePragmatic},
		},
	},
}

// Questions returns the quiz deck. Callers must not mutate it.
func Questions() []domain.Question {
	return quizQuestions
}
