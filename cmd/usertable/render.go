package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"user-dashboard/internal/domain"
	"user-dashboard/internal/feature/user"
)

// 排序列的表头后面加箭头
func header(q domain.QueryState) string {
	cols := user.Columns(q)
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		name := strings.ToUpper(c.Label)
		switch c.Sorted {
		case domain.Asc:
			name += " ↑"
		case domain.Desc:
			name += " ↓"
		}
		names = append(names, name)
	}
	return strings.Join(names, "\t")
}

func renderTable(w io.Writer, q domain.QueryState, res domain.Result, p user.Pager) error {
	if res.TotalMatched == 0 {
		_, err := fmt.Fprintln(w, "No users found.")
		return err
	}
	if len(res.Items) == 0 {
		_, err := fmt.Fprintf(w, "Page %d is out of range (%d pages).\n", p.Page, p.TotalPages)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header(q))
	for _, u := range res.Items {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s, %s\t%s\t%s\t%s\n",
			u.FirstName, u.LastName, u.Email, u.Phone, u.City, u.State,
			u.Status.Label(), u.JoinDate.Format(domain.DateLayout), u.LastLogin)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if p.Visible {
		_, err := fmt.Fprintf(w, "\nShowing %d to %d of %d results (page %d of %d)\n",
			p.From, p.To, p.TotalMatched, p.Page, p.TotalPages)
		return err
	}
	return nil
}

func renderJSON(w io.Writer, q domain.QueryState, res domain.Result, p user.Pager) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Query      domain.QueryState `json:"query"`
		Items      []domain.User     `json:"items"`
		Pagination user.Pager        `json:"pagination"`
	}{q, res.Items, p})
}
