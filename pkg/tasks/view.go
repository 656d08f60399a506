package tasks

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator сравнивает заголовки по правилам английской локали.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// filterTasks оставляет задачи, содержащие search в заголовке или описании
// (без учёта регистра) и подходящие под фильтр статуса.
func filterTasks(all []Task, search string, filter StatusFilter) []Task {
	search = strings.ToLower(search)
	out := make([]Task, 0, len(all))
	for _, t := range all {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if !filter.Match(t.Status) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// sortTasks сортирует на месте. Сортировка стабильная: равные элементы
// сохраняют порядок вставки при любом направлении.
func sortTasks(list []Task, s Sort, c *collate.Collator) {
	cmp := func(a, b Task) int {
		switch s.Field {
		case SortByTitle:
			return c.CompareString(a.Title, b.Title)
		case SortByCreatedAt:
			return a.CreatedAt.Compare(b.CreatedAt)
		case SortByStatus:
			return strings.Compare(string(a.Status), string(b.Status))
		}
		return 0
	}
	if s.Order == Desc {
		slices.SortStableFunc(list, func(a, b Task) int { return -cmp(a, b) })
		return
	}
	slices.SortStableFunc(list, cmp)
}

func countStats(all []Task) Stats {
	st := Stats{Total: len(all)}
	for _, t := range all {
		switch t.Status {
		case StatusPending:
			st.Pending++
		case StatusInProgress:
			st.InProgress++
		case StatusDone:
			st.Done++
		}
	}
	return st
}
