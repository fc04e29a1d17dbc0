package event

import "strings"

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

func init() {
	RegisterType("ScoreChanged", EventScoreChanged)
	RegisterType("ServeRequest", EventServeRequest)
	RegisterType("PaddleHit", EventPaddleHit)
	RegisterType("WallBounce", EventWallBounce)
	RegisterType("MenuButton", EventMenuButton)
	RegisterType("EndButton", EventEndButton)
	RegisterType("MatchWon", EventMatchWon)
}

// RegisterType maps a string name to an EventType for config lookup
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
// "Tick" resolves to the reserved zero type
func GetEventType(name string) (EventType, bool) {
	if strings.EqualFold(name, "Tick") {
		return eventTick, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if et == eventTick {
		return "Tick"
	}
	return typeToName[et]
}
