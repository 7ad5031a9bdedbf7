package tui

import (
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/altinukshini/cti-tui/internal/api"
	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/ops"
	"github.com/altinukshini/cti-tui/internal/phone"
	"github.com/altinukshini/cti-tui/internal/ui"
)

func (a App) fetchMe() tea.Cmd {
	client, ctx := a.client, a.ctx
	return func() tea.Msg {
		me, err := client.Me(ctx)
		return ui.MeLoadedMsg{Me: me, Err: err}
	}
}

func (a App) fetchOperators() tea.Cmd {
	client, ctx := a.client, a.ctx
	return func() tea.Msg {
		dir, err := client.ListOperators(ctx)
		return ui.OperatorsLoadedMsg{Operators: dir, Err: err}
	}
}

func (a App) fetchLines() tea.Cmd {
	client, ctx := a.client, a.ctx
	return func() tea.Msg {
		lines, err := client.ListLines(ctx)
		return ui.LinesLoadedMsg{Lines: lines, Err: err}
	}
}

// fetchQueues loads queue membership and the operator's queue statistics
// in parallel. A stats failure does not hide the queues.
func (a App) fetchQueues() tea.Cmd {
	client, ctx, ext := a.client, a.ctx, a.mainExt()
	return func() tea.Msg {
		var (
			msg ui.QueuesLoadedMsg
			g   errgroup.Group
		)
		g.Go(func() error {
			queues, err := client.ListQueues(ctx, ext)
			msg.Queues = queues
			return err
		})
		g.Go(func() error {
			resp, err := client.QueueStats(ctx)
			if err != nil {
				msg.StatsErr = err
				return nil
			}
			msg.Stats = ops.ComputeStats(resp)
			return nil
		})
		msg.Err = g.Wait()
		return msg
	}
}

func (a App) queueIDs() []string {
	all := a.queuesView.All()
	ids := make([]string, 0, len(all))
	for _, q := range all {
		ids = append(ids, q.Queue)
	}
	sort.Strings(ids)
	return ids
}

func (a App) fetchCalls(page int) tea.Cmd {
	if page < 1 {
		page = 1
	}
	queues := a.queueIDs()
	if len(queues) == 0 {
		return func() tea.Msg {
			return ui.QueueCallsLoadedMsg{Page: &model.QueueCallsPage{}, PageNum: 1}
		}
	}
	client, ctx := a.client, a.ctx
	filter := api.QueueCallsFilter{
		Page:     page,
		Queues:   queues,
		Outcome:  a.callsView.Outcome(),
		PageSize: a.cfg.PageSize,
	}
	return func() tea.Msg {
		p, err := client.ListQueueCalls(ctx, filter)
		return ui.QueueCallsLoadedMsg{Page: p, PageNum: page, Err: err}
	}
}

func (a App) scheduleCallsRefresh() tea.Cmd {
	interval := a.cfg.RefreshInterval
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return ui.CallsTickMsg{} })
}

func (a App) fetchPhonebook(page int) tea.Cmd {
	if page < 1 {
		page = 1
	}
	client, ctx := a.client, a.ctx
	f := a.phonebookView.Filter()
	filter := api.PhonebookFilter{
		Page:     page,
		Query:    f.Query,
		View:     f.Kind,
		Sort:     f.Sort,
		PageSize: a.cfg.PageSize,
	}
	return func() tea.Msg {
		p, err := client.ListPhonebook(ctx, filter)
		return ui.PhonebookLoadedMsg{Page: p, PageNum: page, Err: err}
	}
}

func (a App) fetchNotifications() tea.Cmd {
	client, ctx := a.client, a.ctx
	return func() tea.Msg {
		items, err := client.ListNotifications(ctx)
		return ui.NotificationsLoadedMsg{Notifications: items, Err: err}
	}
}

func (a App) doCall(number string) tea.Cmd {
	client, ctx := a.client, a.ctx
	dialable := phone.Dialable(number)
	return func() tea.Msg {
		if err := client.CallNumber(ctx, dialable); err != nil {
			return ui.ActionResultMsg{Action: "call", Err: err}
		}
		return ui.ActionResultMsg{Action: "call", Summary: "Calling " + number}
	}
}

func (a App) doQueueAction(queue string, action api.QueueAction) tea.Cmd {
	client, ctx, ext := a.client, a.ctx, a.mainExt()
	return func() tea.Msg {
		if err := client.QueueMemberAction(ctx, queue, ext, action); err != nil {
			return ui.ActionResultMsg{Action: "queue", Err: err}
		}
		return ui.ActionResultMsg{
			Action:  "queue",
			Summary: fmt.Sprintf("Queue %s: %s done", queue, action),
		}
	}
}

func (a App) doBulkQueueAction(action api.QueueAction) tea.Cmd {
	client, ctx, ext, relay := a.client, a.ctx, a.mainExt(), a.relay
	queues := a.queuesView.All()
	return func() tea.Msg {
		result, err := ops.BulkQueueAction(ctx, client, queues, ext, action, func(completed, total int) {
			relay.Send(ui.StatusMsg{Text: fmt.Sprintf("%s: %d/%d queues...", action, completed, total)})
		})
		if err != nil {
			return ui.ActionResultMsg{Action: "bulk", Err: err}
		}
		return ui.ActionResultMsg{Action: "bulk", Summary: result.Summary()}
	}
}

func (a App) doCreateContact(c model.NewContact) tea.Cmd {
	client, ctx := a.client, a.ctx
	return func() tea.Msg {
		if err := client.CreateContact(ctx, c); err != nil {
			return ui.ActionResultMsg{Action: "contact", Err: err}
		}
		return ui.ActionResultMsg{Action: "contact", Summary: "Contact saved"}
	}
}

// markNotificationsRead syncs read state to the server. Local preferences
// already hold the state, so failures are only logged.
func (a App) markNotificationsRead(ids []string, read bool) tea.Cmd {
	client, ctx, logger := a.client, a.ctx, a.logger
	return func() tea.Msg {
		for _, id := range ids {
			if err := client.MarkNotificationRead(ctx, id, read); err != nil {
				logger.Debug("cannot sync notification state", "id", id, "error", err)
			}
		}
		return nil
	}
}
