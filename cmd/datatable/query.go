package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/runtime"
	"github.com/architeacher/datatable/internal/usecases"
	"github.com/architeacher/datatable/internal/usecases/commands"
	"github.com/spf13/cobra"
)

var errMalformedFilter = errors.New("filter must look like field:comparison[:value]")

type (
	queryOptions struct {
		page     int
		size     int
		sort     string
		desc     bool
		filters  []string
		anyMatch bool
	}

	// filterFlag is one --filter leg, e.g. title:contains:qui.
	filterFlag struct {
		field      string
		comparison model.ComparisonType
		value      string
	}
)

var queryCmd = &cobra.Command{
	Use:   "query [table]",
	Short: "Print one page of a table",
	Long: `Drives a table session the way the UI does: filters are edited then applied,
sorting toggles the direction, and the page is changed last.

Filters use field:comparison[:value], e.g. --filter title:contains:qui. Two
filters on the same field form both legs of its clause.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := queryOptionsFrom(cmd)

		name := model.PostsTable
		if len(args) == 1 {
			name = args[0]
		}

		ctx := cmd.Context()

		toolbox, err := runtime.NewToolbox(ctx)
		if err != nil {
			return err
		}
		defer toolbox.Close(ctx)

		view, err := runQuery(ctx, toolbox.App(), name, opts)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), renderView(model.PostSchema(), view))

		return err
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)

	flags := queryCmd.Flags()
	flags.Int("page", model.DefaultPage, "Page to show")
	flags.Int("size", 0, "Rows per page; one of the configured page sizes")
	flags.String("sort", "", "Field to sort by")
	flags.Bool("desc", false, "Sort descending")
	flags.StringArray("filter", nil, "Filter leg as field:comparison[:value]; repeatable")
	flags.Bool("any", false, "Combine the two legs of a field with OR instead of AND")
}

func queryOptionsFrom(cmd *cobra.Command) queryOptions {
	flags := cmd.Flags()

	page, _ := flags.GetInt("page")
	size, _ := flags.GetInt("size")
	sort, _ := flags.GetString("sort")
	desc, _ := flags.GetBool("desc")
	filters, _ := flags.GetStringArray("filter")
	anyMatch, _ := flags.GetBool("any")

	return queryOptions{page: page, size: size, sort: sort, desc: desc, filters: filters, anyMatch: anyMatch}
}

func runQuery(ctx context.Context, app *usecases.WebApplication, table string, opts queryOptions) (*ports.SessionView, error) {
	clauses, err := buildClauses(opts.filters, opts.anyMatch)
	if err != nil {
		return nil, err
	}

	view, err := app.Commands.CreateSession.Handle(ctx, commands.CreateSessionCommand{
		Table:    table,
		PageSize: opts.size,
		Wait:     true,
	})
	if err != nil {
		return nil, err
	}

	ref := ports.SessionRef{Table: view.Table, ID: view.ID}
	defer func() {
		_, _ = app.Commands.DeleteSession.Handle(context.WithoutCancel(ctx), commands.DeleteSessionCommand{Ref: ref})
	}()

	for _, field := range clauses.Fields() {
		if _, err := app.Commands.EditSessionFilter.Handle(ctx, commands.EditSessionFilterCommand{
			Ref:    ref,
			Field:  field,
			Clause: clauses[field],
		}); err != nil {
			return nil, err
		}

		if view, err = app.Commands.ApplySessionFilter.Handle(ctx, commands.ApplySessionFilterCommand{
			Ref:   ref,
			Field: field,
			Wait:  true,
		}); err != nil {
			return nil, err
		}
	}

	if opts.sort != "" {
		toggles := 1
		if opts.desc {
			toggles = 2
		}

		for range toggles {
			if view, err = app.Commands.SortSession.Handle(ctx, commands.SortSessionCommand{
				Ref:   ref,
				Field: opts.sort,
				Wait:  true,
			}); err != nil {
				return nil, err
			}
		}
	}

	if opts.page > model.DefaultPage {
		if view, err = app.Commands.ChangeSessionPage.Handle(ctx, commands.ChangeSessionPageCommand{
			Ref:  ref,
			Page: opts.page,
			Wait: true,
		}); err != nil {
			return nil, err
		}
	}

	return view, nil
}

// buildClauses folds the filter legs per field: the first leg of a field
// fills type1/value1, the second type2/value2.
func buildClauses(raw []string, anyMatch bool) (model.FilterSet, error) {
	clauses := model.FilterSet{}
	legs := map[string]int{}

	for _, value := range raw {
		leg, err := parseFilterFlag(value)
		if err != nil {
			return nil, err
		}

		clause, ok := clauses[leg.field]
		if !ok {
			clause = model.DefaultFilterClause()
			if anyMatch {
				clause.Operator = model.Or
			}
		}

		switch legs[leg.field] {
		case 0:
			clause.Type1, clause.Value1 = leg.comparison, leg.value
		case 1:
			clause.Type2, clause.Value2 = leg.comparison, leg.value
		default:
			return nil, fmt.Errorf("field %q takes at most two filter legs", leg.field)
		}

		legs[leg.field]++
		clauses[leg.field] = clause
	}

	return clauses, nil
}

func parseFilterFlag(value string) (filterFlag, error) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return filterFlag{}, fmt.Errorf("%w: %q", errMalformedFilter, value)
	}

	leg := filterFlag{field: parts[0], comparison: model.ComparisonType(parts[1])}
	if len(parts) == 3 {
		leg.value = parts[2]
	}

	if !leg.comparison.Known() {
		return filterFlag{}, fmt.Errorf("unknown comparison %q, want one of %v", leg.comparison, model.ComparisonTypes())
	}

	return leg, nil
}
