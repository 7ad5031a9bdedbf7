package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/altinukshini/cti-tui/internal/model"
)

type PhonebookFilter struct {
	Page     int
	Query    string
	View     string // all, person or company
	Sort     string // name or company
	PageSize int
}

func (f PhonebookFilter) Path() string {
	q := strings.TrimSpace(f.Query)
	if q == "" {
		return "phonebook/getall" + f.QueryString()
	}
	return "phonebook/search/" + url.PathEscape(q) + f.QueryString()
}

func (f PhonebookFilter) QueryString() string {
	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	v := url.Values{}
	v.Set("offset", strconv.Itoa((page-1)*pageSize))
	v.Set("limit", strconv.Itoa(pageSize))
	view := f.View
	if view == "" {
		view = "all"
	}
	v.Set("view", view)
	if f.Sort != "" {
		v.Set("sort", f.Sort)
	}
	return "?" + v.Encode()
}

func (c *Client) ListPhonebook(ctx context.Context, filter PhonebookFilter) (*model.PhonebookPage, error) {
	if filter.PageSize <= 0 {
		filter.PageSize = c.pageSize
	}
	var page model.PhonebookPage
	if err := c.Get(ctx, filter.Path(), &page); err != nil {
		if IsNotFound(err) {
			return &model.PhonebookPage{}, nil
		}
		return nil, fmt.Errorf("search phonebook: %w", err)
	}
	page.TotalPages = totalPages(page.Count, filter.PageSize)
	return &page, nil
}

// SearchPhonebook satisfies search.PhonebookSearcher.
func (c *Client) SearchPhonebook(ctx context.Context, page int, query, kind, sort string) ([]model.Contact, error) {
	res, err := c.ListPhonebook(ctx, PhonebookFilter{Page: page, Query: query, View: kind, Sort: sort})
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

func (c *Client) CreateContact(ctx context.Context, contact model.NewContact) error {
	if contact.Type == "" {
		contact.Type = "private"
	}
	if err := c.Post(ctx, "phonebook/create", contact, nil); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func totalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}
