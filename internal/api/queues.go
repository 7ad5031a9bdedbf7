package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/altinukshini/cti-tui/internal/model"
)

type QueueAction string

const (
	QueueLogin   QueueAction = "login"
	QueueLogout  QueueAction = "logout"
	QueuePause   QueueAction = "pause"
	QueueUnpause QueueAction = "unpause"
)

const defaultRecallHours = 12

// ListQueues returns the queues mainExt is a member of, keyed by number.
func (c *Client) ListQueues(ctx context.Context, mainExt string) (map[string]model.Queue, error) {
	var all map[string]model.Queue
	if err := c.Get(ctx, "astproxy/queues", &all); err != nil {
		return nil, fmt.Errorf("list queues: %w", err)
	}
	mine := make(map[string]model.Queue)
	for num, q := range all {
		if _, ok := q.Members[mainExt]; !ok {
			continue
		}
		if q.Queue == "" {
			q.Queue = num
		}
		mine[num] = q
	}
	return mine, nil
}

type QueueCallsFilter struct {
	Page     int
	Hours    int
	Queues   []string
	Outcome  string // lost, done or all
	PageSize int
}

func (f QueueCallsFilter) Path() string {
	hours := f.Hours
	if hours <= 0 {
		hours = defaultRecallHours
	}
	outcome := f.Outcome
	if outcome == "" {
		outcome = "all"
	}
	queues := make([]string, len(f.Queues))
	for i, q := range f.Queues {
		queues[i] = url.PathEscape(q)
	}
	return fmt.Sprintf("astproxy/queue_recall/%d/%s/%s%s",
		hours, strings.Join(queues, ","), url.PathEscape(outcome), f.QueryString())
}

func (f QueueCallsFilter) QueryString() string {
	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	v := url.Values{}
	v.Set("limit", strconv.Itoa(pageSize))
	v.Set("offset", strconv.Itoa((page-1)*pageSize))
	return "?" + v.Encode()
}

func (c *Client) ListQueueCalls(ctx context.Context, filter QueueCallsFilter) (*model.QueueCallsPage, error) {
	if filter.PageSize <= 0 {
		filter.PageSize = c.pageSize
	}
	if len(filter.Queues) == 0 {
		return &model.QueueCallsPage{}, nil
	}
	var page model.QueueCallsPage
	if err := c.Get(ctx, filter.Path(), &page); err != nil {
		return nil, fmt.Errorf("list queue calls: %w", err)
	}
	page.TotalPages = totalPages(page.Count, filter.PageSize)
	return &page, nil
}

// QueueStats fetches the agent statistics. The payload mixes per-queue
// entries with global call duration objects under fixed keys.
func (c *Client) QueueStats(ctx context.Context) (*model.QueueStatsResponse, error) {
	var raw map[string]json.RawMessage
	if err := c.Get(ctx, "astproxy/queue_astats", &raw); err != nil {
		return nil, fmt.Errorf("queue stats: %w", err)
	}
	out := &model.QueueStatsResponse{Queues: map[string]model.QueueAgentStats{}}
	for key, msg := range raw {
		switch key {
		case "outgoingCalls":
			var v struct {
				Duration int64 `json:"duration_outgoing"`
			}
			if err := json.Unmarshal(msg, &v); err == nil {
				out.DurationOutgoing = v.Duration
			}
		case "incomingCalls":
			var v struct {
				Duration int64 `json:"duration_incoming"`
			}
			if err := json.Unmarshal(msg, &v); err == nil {
				out.DurationIncoming = v.Duration
			}
		default:
			var s model.QueueAgentStats
			if err := json.Unmarshal(msg, &s); err != nil {
				continue
			}
			out.Queues[key] = s
		}
	}
	return out, nil
}

func (c *Client) QueueMemberAction(ctx context.Context, queue, ext string, action QueueAction) error {
	body := map[string]string{"queue": queue, "endpointId": ext}
	if err := c.Post(ctx, "astproxy/queuemember_"+string(action), body, nil); err != nil {
		return fmt.Errorf("queue %s %s: %w", queue, action, err)
	}
	return nil
}
