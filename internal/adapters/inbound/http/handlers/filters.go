package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/oapi-codegen/runtime"
)

const filterParamName = "filter"

var (
	ErrMalformedFilter = errors.New("malformed filter parameter")

	filterParamPattern = regexp.MustCompile(`^filter\[[^\[\]]+\]\[[^\[\]]+\]$`)
)

// BindFilterParams binds the filter[field][key]=value deep object. Keys left
// out keep the defaults of an untouched filter editor.
func BindFilterParams(query url.Values) (model.FilterSet, error) {
	for name := range query {
		if strings.HasPrefix(name, filterParamName+"[") && !filterParamPattern.MatchString(name) {
			return nil, fmt.Errorf("%w: %s", ErrMalformedFilter, name)
		}
	}

	filters := model.FilterSet{}

	if err := runtime.BindQueryParameter("deepObject", true, false, filterParamName, query, &filters); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFilter, err)
	}

	for field, clause := range filters {
		filters[field] = withClauseDefaults(clause)
	}

	return filters, nil
}

func withClauseDefaults(clause model.FilterClause) model.FilterClause {
	defaults := model.DefaultFilterClause()

	if clause.Type1 == "" {
		clause.Type1 = defaults.Type1
	}

	if clause.Type2 == "" {
		clause.Type2 = defaults.Type2
	}

	clause.Operator = model.Combinator(strings.ToUpper(string(clause.Operator)))
	if clause.Operator == "" {
		clause.Operator = defaults.Operator
	}

	return clause
}
