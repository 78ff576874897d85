package seeder

// Generation vocabularies. Fixed lists keep the output plausible without a
// faker dependency, same approach as any dev-seed script.

var firstNames = []string{
	"Ava", "Ben", "Carla", "Diego", "Elena", "Felix", "Grace", "Hugo",
	"Isla", "Jonas", "Kira", "Liam", "Mara", "Noah", "Olive", "Pavel",
	"Quinn", "Rosa", "Sam", "Tara", "Umar", "Vera", "Wes", "Yara", "Zane",
}

var lastNames = []string{
	"Anders", "Brooks", "Castillo", "Dawson", "Eriksen", "Fontaine",
	"Gallagher", "Hoffman", "Ibarra", "Jensen", "Kovacs", "Lindqvist",
	"Moreau", "Novak", "Okafor", "Petrov", "Quigley", "Rossi", "Sato",
	"Tanaka", "Ueda", "Vargas", "Weber", "Yamamoto", "Zimmer",
}

var themes = []string{"light", "dark", "system"}

var workspaceSeeds = []struct {
	name        string
	description string
}{
	{"Acme Corp", "Product and platform work for Acme"},
	{"Northwind Labs", "Research and prototyping workspace"},
	{"Orbital Studio", "Brand, content and launch campaigns"},
}

var teamTypes = []string{"Engineering", "Design", "Marketing", "Operations", "Support", "Growth"}

var projectColors = []string{"#4573D2", "#E8384F", "#62BB35", "#F8A325", "#7A6FF0", "#37C5AB", "#FD9A00", "#AA62E3"}

var projectIcons = []string{"rocket", "target", "chart", "bolt", "globe", "puzzle", "flag", "beaker"}

var taskTags = []string{"frontend", "backend", "design", "bug", "urgent", "research", "infra", "docs", "qa", "mobile"}

var updatedFields = []string{"due_date", "priority", "description", "section", "tags", "name"}

var commentBodies = []string{
	"Picking this up now, will post an update by end of day.",
	"Blocked on the API change, see the linked task.",
	"Looks good to me, just one nit on the naming.",
	"Can we split this into two smaller tasks?",
	"Deployed to staging, please verify.",
	"The designs changed last week, updating the acceptance criteria.",
	"This is a duplicate of an older task, linking them.",
	"Moved the due date out a week after the planning call.",
	"Added repro steps to the description.",
	"Great catch, fixing now.",
}

var replyBodies = []string{
	"Thanks, that unblocks me.",
	"Agreed, let's do that.",
	"Done, pushed the fix.",
	"Good point, updated.",
	"I'll take the second half.",
}

var reactionEmojis = []string{"👍", "🎉", "❤️", "🚀", "👀", "😄"}

// archetype determines a project's naming vocabulary and section template.
type archetype struct {
	name       string
	sections   []string
	qualifiers []string
	subjects   []string
	taskVerbs  []string
	taskThings []string
}

var archetypes = []archetype{
	{
		name:       "engineering",
		sections:   []string{"Backlog", "To Do", "In Progress", "In Review", "Done"},
		qualifiers: []string{"Core", "Mobile", "API", "Platform", "Billing", "Search", "Auth"},
		subjects:   []string{"Revamp", "Migration", "Hardening", "Rollout", "Cleanup", "v2"},
		taskVerbs:  []string{"Fix", "Implement", "Refactor", "Investigate", "Upgrade", "Remove", "Document"},
		taskThings: []string{"login flow", "rate limiter", "webhook retries", "index usage", "error pages", "session cache", "CI pipeline", "flaky test", "pagination", "audit logging"},
	},
	{
		name:       "marketing",
		sections:   []string{"Planning", "Creative Dev", "In Review", "Launched"},
		qualifiers: []string{"Spring", "Summer", "Fall", "Holiday", "Launch", "Brand"},
		subjects:   []string{"Campaign", "Newsletter", "Webinar Series", "Rebrand", "Push"},
		taskVerbs:  []string{"Draft", "Review", "Schedule", "Localize", "A/B test", "Publish"},
		taskThings: []string{"landing page", "email sequence", "social assets", "press kit", "case study", "product video", "blog post", "ad copy"},
	},
}
