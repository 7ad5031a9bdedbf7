package model

import "sort"

// Presence values reported by the backend for an operator.
const (
	PresenceAvailable   = "available"
	PresenceOnline      = "online"
	PresenceDND         = "dnd"
	PresenceVoicemail   = "voicemail"
	PresenceCellphone   = "cellphone"
	PresenceCallForward = "callforward"
	PresenceBusy        = "busy"
	PresenceIncoming    = "incoming"
	PresenceRinging     = "ringing"
	PresenceOffline     = "offline"
)

type Endpoint struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
}

type Endpoints struct {
	MainExtension []Endpoint `json:"mainextension"`
	Extension     []Endpoint `json:"extension,omitempty"`
	Cellphone     []Endpoint `json:"cellphone,omitempty"`
	Email         []Endpoint `json:"email,omitempty"`
}

// Operator is a colleague reachable through the PBX.
type Operator struct {
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Presence     string    `json:"presence,omitempty"`
	MainPresence string    `json:"mainPresence,omitempty"`
	Endpoints    Endpoints `json:"endpoints"`
}

// MainExtension returns the id of the operator's first main extension, or
// "" when none is configured.
func (o Operator) MainExtension() string {
	if len(o.Endpoints.MainExtension) == 0 {
		return ""
	}
	return o.Endpoints.MainExtension[0].ID
}

func (o Operator) PresenceStatus() string {
	if o.MainPresence != "" {
		return o.MainPresence
	}
	if o.Presence != "" {
		return o.Presence
	}
	return PresenceOffline
}

// OperatorDirectory maps usernames to operators. It is owned by the app
// and treated as read-only by consumers.
type OperatorDirectory map[string]Operator

// Sorted returns the operators ordered by name.
func (d OperatorDirectory) Sorted() []Operator {
	out := make([]Operator, 0, len(d))
	for _, op := range d {
		out = append(out, op)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Username < out[j].Username
	})
	return out
}

// ByExtension finds the operator whose main extension is ext.
func (d OperatorDirectory) ByExtension(ext string) (Operator, bool) {
	for _, op := range d {
		if op.MainExtension() == ext {
			return op, true
		}
	}
	return Operator{}, false
}
