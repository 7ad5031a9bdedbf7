package model

// Line is an inbound phone line with its off-hour configuration.
type Line struct {
	Description string   `json:"description"`
	CalledIDNum string   `json:"calledIdNum"`
	CallerIDNum string   `json:"callerIdNum,omitempty"`
	Destination string   `json:"destination,omitempty"`
	Offhour     *Offhour `json:"offhour,omitempty"`
}

type Offhour struct {
	Action   string        `json:"action"`
	Enabled  string        `json:"enabled,omitempty"`
	AudioMsg *Announcement `json:"audiomsg,omitempty"`
}

type Announcement struct {
	ID          string `json:"announcement_id,omitempty"`
	Description string `json:"description"`
}

// Configuration describes the custom off-hour behaviour of the line.
func (l Line) Configuration() string {
	if l.Offhour == nil {
		return "-"
	}
	switch l.Offhour.Action {
	case "audiomsg":
		return "Announcement"
	case "audiomsg_voicemail":
		return "Announcement + voicemail"
	case "redirect":
		return "Forward"
	default:
		return "-"
	}
}

// Rule is the description of the off-hour announcement, or "-".
func (l Line) Rule() string {
	if l.Offhour == nil || l.Offhour.AudioMsg == nil || l.Offhour.AudioMsg.Description == "" {
		return "-"
	}
	return l.Offhour.AudioMsg.Description
}
