// Package botc holds the reference data for Blood on the Clocktower
// scripts: the canonical role table, supported locales, the CSV export
// schema and role id normalization. All tables are fixed at build time
// and every accessor hands out a fresh copy, so the package is safe for
// any number of concurrent readers.
package botc

// Team identifies which side of the grimoire a role sits on.
type Team int

const (
	TeamTownsfolk Team = iota
	TeamOutsider
	TeamMinion
	TeamDemon
	TeamTraveller
	TeamFabled
	TeamUnknown
)

// String returns the script-file spelling of a team
func (t Team) String() string {
	switch t {
	case TeamTownsfolk:
		return "townsfolk"
	case TeamOutsider:
		return "outsider"
	case TeamMinion:
		return "minion"
	case TeamDemon:
		return "demon"
	case TeamTraveller:
		return "traveller"
	case TeamFabled:
		return "fabled"
	default:
		return "unknown"
	}
}

// TeamFromString converts a script-file team name to a Team
func TeamFromString(s string) Team {
	switch s {
	case "townsfolk":
		return TeamTownsfolk
	case "outsider":
		return TeamOutsider
	case "minion":
		return TeamMinion
	case "demon":
		return TeamDemon
	case "traveller", "traveler":
		return TeamTraveller
	case "fabled":
		return TeamFabled
	default:
		return TeamUnknown
	}
}

// SheetTeams lists the teams that appear on a printed script sheet, in
// display order. Travellers and fabled are handed out separately and
// never printed.
func SheetTeams() []Team {
	return []Team{TeamTownsfolk, TeamOutsider, TeamMinion, TeamDemon}
}

// orderedRoleIDs is the canonical enumeration of every known role id.
// Order matters: it is edition order (Trouble Brewing, Bad Moon Rising,
// Sects & Violets, experimental, travellers, fabled), and team order
// within an edition. Downstream consumers rely on this order for
// display and for stable file output, so entries must never be
// reordered.
var orderedRoleIDs = []string{
	// Trouble Brewing
	"washerwoman", "librarian", "investigator", "chef", "empath",
	"fortuneteller", "undertaker", "monk", "ravenkeeper", "virgin",
	"slayer", "soldier", "mayor",
	"butler", "drunk", "recluse", "saint",
	"poisoner", "spy", "scarletwoman", "baron",
	"imp",
	// Bad Moon Rising
	"grandmother", "sailor", "chambermaid", "exorcist", "innkeeper",
	"gambler", "gossip", "courtier", "professor", "minstrel", "tealady",
	"pacifist", "fool",
	"goon", "lunatic", "tinker", "moonchild",
	"godfather", "devilsadvocate", "assassin", "mastermind",
	"zombuul", "pukka", "shabaloth", "po",
	// Sects & Violets
	"clockmaker", "dreamer", "snakecharmer", "mathematician",
	"flowergirl", "towncrier", "oracle", "savant", "seamstress",
	"philosopher", "artist", "juggler", "sage",
	"mutant", "sweetheart", "barber", "klutz",
	"eviltwin", "witch", "cerenovus", "pithag",
	"fanggu", "vigormortis", "nodashii", "vortox",
	// Experimental
	"alchemist", "amnesiac", "atheist", "balloonist", "bountyhunter",
	"cannibal", "choirboy", "cultleader", "engineer", "farmer",
	"fisherman", "general", "highpriestess", "huntsman", "king",
	"knight", "lycanthrope", "magician", "nightwatchman", "noble",
	"pixie", "poppygrower", "preacher", "steward", "villageidiot",
	"acrobat", "damsel", "golem", "hatter", "heretic", "ogre",
	"plaguedoctor", "politician", "puzzlemaster", "snitch", "zealot",
	"boomdandy", "fearmonger", "goblin", "harpy", "marionette",
	"mezepheles", "organgrinder", "psychopath", "summoner", "vizier",
	"widow", "wizard", "boffin",
	"alhadikhia", "legion", "leviathan", "lilmonsta", "lleech",
	"kazali", "lordoftyphon", "ojo", "riot", "yaggababble",
	// Travellers
	"scapegoat", "gunslinger", "beggar", "bureaucrat", "thief",
	"apprentice", "matron", "judge", "bishop", "voudon", "barista",
	"harlot", "butcher", "bonecollector", "deviant", "gangster",
	// Fabled
	"doomsayer", "angel", "buddhist", "hellslibrarian", "revolutionary",
	"fiddler", "toymaker", "fibbin", "duchess", "sentinel",
	"spiritofivory", "djinn", "stormcatcher", "bootlegger", "gardener",
	"ferryman",
}

// normalizedRoleIDs maps the role ids whose canonical spelling carries
// punctuation the flat id drops. Ids absent from this map are already
// in normalized form.
var normalizedRoleIDs = map[string]string{
	"pithag":     "pit-hag",
	"fanggu":     "fang_gu",
	"alhadikhia": "al-hadikhia",
	"lilmonsta":  "lil-monsta",
}

// OrderedRoleIDs returns every known role id in canonical order. The
// returned slice is a copy and may be modified freely by the caller.
func OrderedRoleIDs() []string {
	ids := make([]string, len(orderedRoleIDs))
	copy(ids, orderedRoleIDs)
	return ids
}

// NormalizeRoleID returns the normalized spelling of a role id, or the
// id unchanged when no normalization applies. It accepts any string and
// never fails: unknown ids pass through as-is.
func NormalizeRoleID(id string) string {
	if normalized, ok := normalizedRoleIDs[id]; ok {
		return normalized
	}
	return id
}
