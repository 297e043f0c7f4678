// Package styles provides the fixed catalog of the five Mindstyle
// personality-assessment categories and their descriptive content.
package styles

// Descriptor holds the descriptive content for one thinking style. The
// catalog is loaded once at process start and never mutated, so descriptors
// are safe to share across concurrent requests.
type Descriptor struct {
	ID        string
	Title     string
	Label     string // short label used in the scores section
	Core      string
	Strengths []string
	WatchOuts []string
	Growth    []string
	Careers   string
}

// DisplayOrder is the fixed order styles appear in the scores section,
// regardless of the order they appear in a result's dominant styles.
var DisplayOrder = []string{"A", "B", "C", "D", "E"}

// Catalog maps style identifiers to their descriptors.
type Catalog struct {
	byID map[string]*Descriptor
}

// Lookup returns the descriptor for the given style identifier, or an
// *UnknownStyleError if the identifier is not one of the fixed five.
func (c *Catalog) Lookup(id string) (*Descriptor, error) {
	d, ok := c.byID[id]
	if !ok {
		return nil, &UnknownStyleError{ID: id}
	}
	return d, nil
}

// NewCatalog returns the catalog of the five Mindstyle descriptors.
func NewCatalog() *Catalog {
	c := &Catalog{byID: make(map[string]*Descriptor, len(descriptors))}
	for i := range descriptors {
		c.byID[descriptors[i].ID] = &descriptors[i]
	}
	return c
}

var descriptors = []Descriptor{
	{
		ID:    "A",
		Title: "Laser Thinker (Focused Thinker)",
		Label: "Laser Thinker",
		Core: "You are intentional and precise. Once you set your mind on a task, you lock in and block out noise. " +
			"You like clarity, structure, and defined goals. You are dependable, detail-oriented, and steady. " +
			"People value your ability to bring order to complexity and to deliver consistent results even in demanding situations.",
		Strengths: []string{
			"Cuts through distractions with discipline and focus.",
			"Brings clarity in chaotic or complex situations.",
			"Finishes tasks reliably and consistently.",
			"Strong in analytical, compliance-heavy, and detail-oriented work.",
		},
		WatchOuts: []string{
			"Can miss creative opportunities by being too rigid or narrow.",
			"May struggle in fluid, ambiguous, or fast-changing settings.",
			"Might prioritize efficiency over exploration or innovation.",
		},
		Growth: []string{
			"Practice stepping back regularly to see the bigger picture.",
			"Allow space for curiosity and creative thought.",
			"Partner with Explorers or Visionaries for balance.",
			"Remember: focus is your gift, but flexibility broadens impact.",
		},
		Careers: "Data analysts or auditors — working with patterns, accuracy, and uncovering hidden insights. " +
			"Engineers or surgeons — excelling in precision-driven, high-stakes environments where errors are costly. " +
			"Project managers — ensuring structured task execution, timelines, and accountability. " +
			"Quality assurance specialists — spotting details and ensuring compliance with standards. " +
			"Any role where attention to fine detail, reliability, and methodical execution are crucial.",
	},
	{
		ID:    "B",
		Title: "Explorer Thinker (Curious Innovator)",
		Label: "Explorer Thinker",
		Core: "You are energized by variety and novelty. You enjoy discovering possibilities and brainstorming ideas. " +
			"You thrive in dynamic, fast-changing environments and adapt quickly to new information. " +
			"People see you as creative, flexible, and full of fresh perspectives. You are often the source of innovation in a team.",
		Strengths: []string{
			"Highly creative and adaptable, thriving on change.",
			"Connects ideas others don’t see and generates new approaches.",
			"Energizes teams with enthusiasm and curiosity.",
			"Quick to learn and unafraid of experimentation.",
		},
		WatchOuts: []string{
			"May struggle with discipline and follow-through on projects.",
			"Risk of scattering energy across too many directions.",
			"Can overwhelm others with too many ideas at once.",
		},
		Growth: []string{
			"Channel curiosity into chosen priorities to build depth.",
			"Use accountability and deadlines to ensure completion.",
			"Balance exploration with focused execution.",
			"Learn to prune ideas and focus on the most impactful ones.",
		},
		Careers: "Marketing and advertising professionals — developing creative campaigns and fresh strategies. " +
			"Entrepreneurs and startup founders — spotting gaps and experimenting with solutions. " +
			"Consultants and journalists — thriving in environments that require curiosity, learning, and adaptability. " +
			"Creative designers and R&D specialists — innovating and imagining future possibilities. " +
			"Any role where novelty, ideation, and adaptability are highly valued.",
	},
	{
		ID:    "C",
		Title: "Mood-Led Thinker (Emotional Reactor)",
		Label: "Mood-Led Thinker",
		Core: "You think with your emotions. Inspiration fuels you, and when you’re passionate, you give everything. " +
			"You value authenticity and connection, and people are drawn to your warmth. " +
			"You bring an emotional lens that others often overlook, giving depth to relationships and meaning to work.",
		Strengths: []string{
			"Strong emotional intelligence and natural empathy.",
			"Authentic, relatable, and trustworthy to others.",
			"Can deeply inspire and motivate teams when engaged.",
			"Brings humanity and sensitivity to decision-making.",
		},
		WatchOuts: []string{
			"Moods can fluctuate, affecting consistency in work.",
			"Risk of emotional reactivity or over-identification with feelings.",
			"Can allow temporary emotions to cloud long-term judgment.",
		},
		Growth: []string{
			"Develop anchor habits and structures that steady productivity.",
			"Practice emotional regulation and reflection before acting.",
			"Surround yourself with steady partners for balance.",
			"Channel emotions into storytelling, empathy, and motivation.",
		},
		Careers: "Counselors, coaches, or therapists — using empathy to support others. " +
			"HR professionals or mediators — resolving conflicts with emotional insight. " +
			"Teachers and performers — connecting deeply with audiences or students. " +
			"Customer service and hospitality roles — excelling in warmth and emotional care. " +
			"Any role that requires authenticity, relationship-building, and emotional resonance.",
	},
	{
		ID:    "D",
		Title: "Driver Thinker (Action-Oriented Doer)",
		Label: "Driver Thinker",
		Core: "You are wired for results. Thinking for you quickly becomes action. " +
			"You are pragmatic, outcome-driven, and thrive on getting things done. " +
			"You inspire momentum and progress wherever you go.",
		Strengths: []string{
			"Relentless drive to achieve results and complete tasks.",
			"Creates urgency and energy that moves teams forward.",
			"Excellent at breaking down goals into actionable steps.",
			"Resilient in high-pressure environments and deadline-driven work.",
		},
		WatchOuts: []string{
			"Can push too hard and risk impatience with others.",
			"May neglect strategy, creativity, or emotions in pursuit of results.",
			"Risk of burnout from constant urgency and intensity.",
		},
		Growth: []string{
			"Pause and reflect before rushing into solutions.",
			"Listen carefully to diverse perspectives before acting.",
			"Partner with Visionaries for strategy and Mood-Led thinkers for empathy.",
			"Build sustainable pacing instead of operating only in overdrive.",
		},
		Careers: "Operations managers or project leaders — ensuring tasks are executed efficiently. " +
			"Sales professionals — driving revenue through relentless action and persistence. " +
			"Entrepreneurs or military leaders — thriving under pressure and moving decisively. " +
			"Emergency response professionals — acting quickly and effectively in crises. " +
			"Any role where determination, quick execution, and resilience are essential.",
	},
	{
		ID:    "E",
		Title: "Visionary Thinker (Big-Picture Thinker)",
		Label: "Visionary Thinker",
		Core: "You are future-focused. You see patterns, meaning, and long-term opportunities. " +
			"While others are immersed in today, you are already imagining tomorrow. " +
			"People value your ability to inspire, cast vision, and connect events into purpose-driven direction.",
		Strengths: []string{
			"Sees patterns and possibilities others miss.",
			"Inspires with long-term vision and clarity of purpose.",
			"Brings meaning and direction to current efforts.",
			"Strong in strategy, storytelling, and foresight.",
		},
		WatchOuts: []string{
			"Can overlook execution details or underestimate timelines.",
			"Risk of being seen as unrealistic or impractical.",
			"May lose patience with operational or repetitive work.",
		},
		Growth: []string{
			"Translate vision into actionable milestones and measurable outcomes.",
			"Collaborate with Drivers and Lasers to execute plans.",
			"Balance imagination with practical realities and resources.",
			"Ground ideas in clear steps to build credibility and momentum.",
		},
		Careers: "CEOs, strategists, or policy-makers — shaping long-term direction and purpose. " +
			"Futurists, writers, or educators — inspiring others with insight and foresight. " +
			"Innovators or faith leaders — pointing people toward bigger possibilities. " +
			"Consultants and thought leaders — synthesizing patterns into strategy. " +
			"Any role where vision, purpose, and big-picture strategy are essential.",
	},
}
