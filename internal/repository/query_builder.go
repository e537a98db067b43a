package repository

import "github.com/doug-martin/goqu/v9"

// QueryBuilder collects equality filters keyed by request field names and
// turns them into a goqu expression against qualified columns.
type QueryBuilder interface {
	AddCondition(key string, value any)
	BuildConditions(aliases map[string]string) goqu.Ex
	IsEmpty() bool
}

// Conditions is the map-backed QueryBuilder. A slice value becomes an IN clause.
type Conditions map[string]any

func NewQueryBuilder() QueryBuilder {
	return Conditions{}
}

// AddCondition ignores nil so optional query parameters can be passed through unchecked.
func (c Conditions) AddCondition(key string, value any) {
	if value == nil {
		return
	}
	c[key] = value
}

func (c Conditions) IsEmpty() bool {
	return len(c) == 0
}

// BuildConditions qualifies keys found in aliases; other keys are used as is.
func (c Conditions) BuildConditions(aliases map[string]string) goqu.Ex {
	ex := make(goqu.Ex, len(c))
	for key, value := range c {
		column := key
		if alias, ok := aliases[key]; ok {
			column = alias
		}
		ex[column] = value
	}
	return ex
}
