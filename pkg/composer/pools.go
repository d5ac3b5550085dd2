package composer

// Candidate is a single status phrasing. Emoji is the raw character;
// it is mapped to a Slack alias when the status is composed.
type Candidate struct {
	Text  string
	Emoji string
}

// Pool is a themed set of candidate phrasings. Content lives here as
// data so pools can be checked for well-formedness independently of
// the rule cascade that selects between them.
type Pool struct {
	Name       string
	Candidates []Candidate
}

var (
	poolOOO = Pool{
		Name: "ooo",
		Candidates: []Candidate{
			{"Out exploring the world 🌍", "🌍"},
			{"Taking a breather 🏖️", "🏖️"},
			{"Recharging my batteries 🌴", "🌴"},
			{"Living my best life 🎉", "🎉"},
			{"On a grand adventure 🌸", "🌸"},
		},
	}

	// poolPrivate is deliberately bland: whatever is on the calendar,
	// the outside world only learns "busy".
	poolPrivate = Pool{
		Name: "private",
		Candidates: []Candidate{
			{"Having a great day 🌞", "🌞"},
			{"Busy bee today 🙌", "🙌"},
			{"Making it happen ☀️", "☀️"},
			{"Good vibes only 😄", "😄"},
			{"One thing at a time 🍀", "🍀"},
		},
	}

	poolTravel = Pool{
		Name: "travel",
		Candidates: []Candidate{
			{"Up in the clouds ✈️", "✈️"},
			{"On the move 🚅", "🚅"},
			{"Adventure mode: ON 🧳", "🧳"},
			{"Somewhere between here and there 🗺️", "🗺️"},
			{"Embracing the journey 🌍", "🌍"},
		},
	}

	poolFocus = Pool{
		Name: "focus",
		Candidates: []Candidate{
			{"Deep work mode 🎧", "🎧"},
			{"In the zone 🧠", "🧠"},
			{"Brain.exe is running 💫", "💫"},
			{"Channeling my inner genius ✨", "✨"},
			{"Focus level: MAXIMUM 🔕", "🔕"},
		},
	}

	poolDesign = Pool{
		Name: "design",
		Candidates: []Candidate{
			{"Pushing pixels 🎨", "🎨"},
			{"Sketching the future 🖌️", "🖌️"},
			{"Making things pretty 🌈", "🌈"},
			{"Measuring twice, drawing once 📐", "📐"},
			{"Chasing the big idea 💡", "💡"},
		},
	}

	poolCoding = Pool{
		Name: "coding",
		Candidates: []Candidate{
			{"Shipping code 🚀", "🚀"},
			{"Herding semicolons ⌨️", "⌨️"},
			{"Hunting bugs 🐛", "🐛"},
			{"Compiling thoughts 💻", "💻"},
			{"Fueled by coffee ☕", "☕"},
		},
	}

	poolMeetings = Pool{
		Name: "meetings",
		Candidates: []Candidate{
			{"Meeting marathon in progress 🗣️", "🗣️"},
			{"Back-to-back adventures 👥", "👥"},
			{"Professional social butterfly 🎪", "🎪"},
			{"Meeting all the humans 🎯", "🎯"},
			{"Talk-show host mode 📅", "📅"},
		},
	}

	// poolBalanced keeps a fixed sparkle emoji across all candidates.
	poolBalanced = Pool{
		Name: "balanced",
		Candidates: []Candidate{
			{"Balancing chats and code ✨", "✨"},
			{"Half social, half focused ✨", "✨"},
			{"Mixing meetings with magic ✨", "✨"},
			{"Juggling tasks like a pro ✨", "✨"},
			{"Multitasking master ✨", "✨"},
		},
	}

	poolWorking = Pool{
		Name: "working",
		Candidates: []Candidate{
			{"Crafting digital wonders 💻", "💻"},
			{"Making bits and bytes behave 💻", "💻"},
			{"Code whisperer at work 💻", "💻"},
			{"Dancing with algorithms 💻", "💻"},
			{"Turning coffee into code 💻", "💻"},
		},
	}
)

// allPools enumerates every pool for well-formedness tests.
var allPools = []Pool{
	poolOOO,
	poolPrivate,
	poolTravel,
	poolFocus,
	poolDesign,
	poolCoding,
	poolMeetings,
	poolBalanced,
	poolWorking,
}
