package mines

type Command int8

const (
	UnknownCommand Command = iota
	Reveal
	ToggleMark
)

// ParseCommand maps the player's word onto a Command. Unrecognised words are
// UnknownCommand, which Apply treats as a no-op.
func ParseCommand(s string) Command {
	switch s {
	case "free":
		return Reveal
	case "mine":
		return ToggleMark
	default:
		return UnknownCommand
	}
}

func (c Command) String() string {
	switch c {
	case Reveal:
		return "free"
	case ToggleMark:
		return "mine"
	default:
		return "unknown"
	}
}
