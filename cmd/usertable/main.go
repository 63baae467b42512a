package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"user-dashboard/internal/app"
	"user-dashboard/internal/core/config"
	"user-dashboard/internal/core/logger"
	"user-dashboard/internal/domain"
	"user-dashboard/internal/feature/user"
	"user-dashboard/internal/service"
)

type flags struct {
	search string
	status string
	sort   string
	dir    string
	page   int
	size   int
	toggle string
	asJSON bool
	config string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "usertable",
		Short:         "Filter, sort and page the user table from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := f.state()
			if err != nil {
				return err
			}
			return run(cmd.Context(), f, q, cmd)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&f.search, "search", "q", "", "substring of first name, last name, email or city")
	fs.StringVar(&f.status, "status", string(domain.StatusAll), "all | active | inactive | pending")
	fs.StringVar(&f.sort, "sort", string(domain.SortFirstName), "sort column")
	fs.StringVar(&f.dir, "dir", string(domain.Asc), "asc | desc")
	fs.IntVar(&f.page, "page", 1, "1-based page number")
	fs.IntVar(&f.size, "size", 0, "rows per page (0 = table.pageSize from config)")
	fs.StringVar(&f.toggle, "toggle", "", "click a column header before querying")
	fs.BoolVar(&f.asJSON, "json", false, "print the page as JSON")
	fs.StringVar(&f.config, "config", os.Getenv("CONFIG_PATH"), "config file")
	return cmd
}

// state 校验参数并组装查询状态；size 为 0 时由 run 按配置补齐
func (f flags) state() (domain.QueryState, error) {
	q := domain.QueryState{
		Search:    f.search,
		Status:    domain.StatusFilter(f.status),
		SortField: domain.SortField(f.sort),
		SortDir:   domain.Direction(f.dir),
		Page:      f.page,
		PageSize:  f.size,
	}
	switch {
	case !q.Status.Valid():
		return q, fmt.Errorf("invalid --status %q", f.status)
	case !q.SortField.Valid():
		return q, fmt.Errorf("invalid --sort %q", f.sort)
	case !q.SortDir.Valid():
		return q, fmt.Errorf("invalid --dir %q", f.dir)
	case q.Page < 1:
		return q, fmt.Errorf("--page must be >= 1")
	case q.PageSize < 0:
		return q, fmt.Errorf("--size must be >= 0")
	}
	if f.toggle != "" {
		col := domain.SortField(f.toggle)
		if !col.Valid() {
			return q, fmt.Errorf("invalid --toggle %q", f.toggle)
		}
		q = user.ToggleSort(q, col)
	}
	return q, nil
}

func run(ctx context.Context, f flags, q domain.QueryState, cmd *cobra.Command) error {
	cfg := config.Load(f.config)
	// 终端输出只留表格，日志降到 warn
	log, cleanup := logger.New(logger.Options{Level: "warn", JSON: cfg.Log.JSON})
	defer cleanup()

	if q.PageSize == 0 {
		q.PageSize = cfg.Table.PageSize
	}
	users, closeUsers, err := app.OpenUsers(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeUsers()

	res, err := service.NewUserService(users, nil, 0, log).Query(ctx, q)
	if err != nil {
		log.Error("query", zap.Error(err))
		return err
	}
	p := user.NewPager(q.Page, q.PageSize, res.TotalMatched)
	if f.asJSON {
		return renderJSON(cmd.OutOrStdout(), q, res, p)
	}
	return renderTable(cmd.OutOrStdout(), q, res, p)
}

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
