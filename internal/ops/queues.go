package ops

import (
	"regexp"
	"sort"
	"time"

	"github.com/altinukshini/cti-tui/internal/model"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// MatchQueue reports whether filter, stripped of non-alphanumerics,
// matches the queue name or number case-insensitively.
func MatchQueue(q model.Queue, filter string) bool {
	cleaned := nonAlphanumeric.ReplaceAllString(filter, "")
	if cleaned == "" {
		return true
	}
	re := regexp.MustCompile("(?i)" + cleaned)
	for _, attr := range []string{q.Name, q.Queue} {
		if re.MatchString(nonAlphanumeric.ReplaceAllString(attr, "")) {
			return true
		}
	}
	return false
}

// FilterQueues returns the queues matching filter ordered by queue number,
// with ties broken by name.
func FilterQueues(queues map[string]model.Queue, filter string) []model.Queue {
	var out []model.Queue
	for _, q := range queues {
		if MatchQueue(q, filter) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Queue != out[j].Queue {
			return out[i].Queue < out[j].Queue
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ComputeStats aggregates the per-queue agent statistics.
func ComputeStats(resp *model.QueueStatsResponse) model.QueueStats {
	var stats model.QueueStats
	if resp == nil {
		return stats
	}
	var lastLogin, lastLogout, lastCall int64
	for _, q := range resp.Queues {
		lastLogin = max(lastLogin, q.LastLoginTime)
		lastLogout = max(lastLogout, q.LastLogoutTime)
		lastCall = max(lastCall, q.LastCallTime)
		stats.AnsweredCalls += q.CallsTaken
		stats.MissedCalls += q.NoAnswerCalls
	}
	if lastLogin > 0 {
		stats.LastLogin = time.Unix(lastLogin, 0)
	}
	if lastLogout > 0 {
		stats.LastLogout = time.Unix(lastLogout, 0)
	}
	if lastCall > 0 {
		stats.LastCall = time.Unix(lastCall, 0)
	}
	stats.TimeAtPhone = time.Duration(resp.DurationOutgoing+resp.DurationIncoming) * time.Second
	return stats
}
