package resolve

import "strings"

// command is a parsed recommendation. Recommendations are free text
// written by analyzers, but resolvers only act on the small set of
// forms below; anything else is an explicit "unclear" outcome rather
// than a best-effort guess.
//
//	move <src> to <dst>
//	move <src> into <dst>
//	archive <path>
//	delete <path>
//	remove <path>
//	split <dir> by extension
//	split directory <dir> by extension
type command struct {
	Verb   string // move | archive | delete | split
	Source string
	Dest   string
}

// parseRecommendation maps recommendation text onto a command.
// Unrecognized input fails with *UnclearRecommendationError carrying
// the verbatim text.
func parseRecommendation(text string) (*command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, &UnclearRecommendationError{Text: text}
	}

	switch strings.ToLower(fields[0]) {
	case "move":
		if len(fields) == 4 {
			switch strings.ToLower(fields[2]) {
			case "to", "into":
				return &command{Verb: "move", Source: fields[1], Dest: fields[3]}, nil
			}
		}
	case "archive":
		if len(fields) == 2 {
			return &command{Verb: "archive", Source: fields[1]}, nil
		}
	case "delete", "remove":
		if len(fields) == 2 {
			return &command{Verb: "delete", Source: fields[1]}, nil
		}
	case "split":
		if len(fields) == 4 && strings.EqualFold(fields[2], "by") && strings.EqualFold(fields[3], "extension") {
			return &command{Verb: "split", Source: fields[1]}, nil
		}
		if len(fields) == 5 && strings.EqualFold(fields[1], "directory") &&
			strings.EqualFold(fields[3], "by") && strings.EqualFold(fields[4], "extension") {
			return &command{Verb: "split", Source: fields[2]}, nil
		}
	}

	return nil, &UnclearRecommendationError{Text: text}
}
