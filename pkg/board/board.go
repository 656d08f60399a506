// Package board реализует постраничный список задач поверх tasks.Store.
package board

import "taskboard/pkg/tasks"

// DefaultPageSize - размер страницы по умолчанию.
const DefaultPageSize = 6

// List - постраничное представление отфильтрованных задач.
// Смена поиска или фильтра возвращает список на первую страницу.
type List struct {
	store *tasks.Store
	size  int
	page  int
}

// New создаёт список. pageSize <= 0 заменяется на DefaultPageSize.
func New(store *tasks.Store, pageSize int) *List {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &List{store: store, size: pageSize, page: 1}
}

func (l *List) SetSearch(term string) {
	l.store.SetSearchTerm(term)
	l.page = 1
}

func (l *List) SetStatusFilter(f tasks.StatusFilter) {
	l.store.SetStatusFilter(f)
	l.page = 1
}

// SetSort меняет сортировку, текущая страница сохраняется.
func (l *List) SetSort(field tasks.SortField, order tasks.SortOrder) {
	l.store.SetSort(field, order)
}

func (l *List) Page() int     { return l.page }
func (l *List) PageSize() int { return l.size }

// TotalPages - число страниц; для пустого списка 0.
func (l *List) TotalPages() int {
	return pages(len(l.store.FilteredTasks()), l.size)
}

// Tasks возвращает задачи текущей страницы.
func (l *List) Tasks() []tasks.Task {
	all := l.store.FilteredTasks()
	from, to := bounds(len(all), l.page, l.size)
	return all[from:to]
}

// Range возвращает номера первой и последней задачи на странице (с 1)
// и общее число отфильтрованных задач.
func (l *List) Range() (first, last, total int) {
	total = len(l.store.FilteredTasks())
	from, to := bounds(total, l.page, l.size)
	if from == to {
		return 0, 0, total
	}
	return from + 1, to, total
}

// GoToPage переходит на страницу n. Номера вне [1, TotalPages] отклоняются.
func (l *List) GoToPage(n int) bool {
	if n < 1 || n > l.TotalPages() {
		return false
	}
	l.page = n
	return true
}

func (l *List) NextPage() bool {
	if l.page >= l.TotalPages() {
		return false
	}
	l.page++
	return true
}

func (l *List) PreviousPage() bool {
	if l.page <= 1 {
		return false
	}
	l.page--
	return true
}

// PageNumbers возвращает не более пяти номеров страниц вокруг текущей.
func (l *List) PageNumbers() []int {
	total := l.TotalPages()
	var from, to int
	switch {
	case total <= 5:
		from, to = 1, total
	case l.page <= 3:
		from, to = 1, 5
	case l.page >= total-2:
		from, to = total-4, total
	default:
		from, to = l.page-2, l.page+2
	}

	nums := make([]int, 0, 5)
	for i := from; i <= to; i++ {
		nums = append(nums, i)
	}
	return nums
}

func pages(n, size int) int {
	return (n + size - 1) / size
}

func bounds(n, page, size int) (from, to int) {
	from = (page - 1) * size
	if from > n {
		from = n
	}
	to = min(from+size, n)
	return from, to
}
