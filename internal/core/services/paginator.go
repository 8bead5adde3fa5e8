package services

import (
	"context"
	"errors"
	"iter"
	"maps"

	"github.com/verigle/wandb/internal/core/domain"
)

const defaultPerPage = 50

// page is one fetched page of a connection.
type page[T any] struct {
	items      []T
	endCursor  *string
	hasNext    bool
	totalCount *int
}

// fetchFunc executes the paginator's query with vars bound and converts the
// resulting connection.
type fetchFunc[T any] func(ctx context.Context, vars map[string]any) (*page[T], error)

// Paginator lazily walks a cursor-paginated connection. A Paginator is not
// safe for concurrent use.
type Paginator[T any] struct {
	fetch      fetchFunc[T]
	variables  map[string]any
	perPage    int
	perPageVar string
	cursorVar  string

	last    *page[T]
	objects []T
	index   int
}

func newPaginator[T any](fetch fetchFunc[T], vars map[string]any, perPage int) *Paginator[T] {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	v := make(map[string]any, len(vars)+2)
	maps.Copy(v, vars)
	return &Paginator[T]{
		fetch:      fetch,
		variables:  v,
		perPage:    perPage,
		perPageVar: "perPage",
		cursorVar:  "cursor",
	}
}

// PerPage is the page size requested from the server.
func (p *Paginator[T]) PerPage() int { return p.perPage }

// Variables returns a copy of the variables bound to the next request.
func (p *Paginator[T]) Variables() map[string]any { return maps.Clone(p.variables) }

// Cursor is the end cursor of the last fetched page, nil before the first
// fetch.
func (p *Paginator[T]) Cursor() *string {
	if p.last == nil {
		return nil
	}
	return p.last.endCursor
}

// More reports whether another page may be fetched.
func (p *Paginator[T]) More() bool {
	if p.last == nil {
		return true
	}
	return p.last.hasNext
}

// Loaded is the number of objects fetched so far.
func (p *Paginator[T]) Loaded() int { return len(p.objects) }

func (p *Paginator[T]) loadPage(ctx context.Context) (bool, error) {
	if !p.More() {
		return false, nil
	}
	p.variables[p.perPageVar] = p.perPage
	p.variables[p.cursorVar] = p.Cursor()

	pg, err := p.fetch(ctx, maps.Clone(p.variables))
	if err != nil {
		return false, normalize(err)
	}
	p.last = pg
	p.objects = append(p.objects, pg.items...)
	return true, nil
}

// Next returns the next object, fetching a page when the cached ones are
// used up. It returns domain.ErrIterationDone at the end.
func (p *Paginator[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if p.index >= len(p.objects) {
		// pages filtered down to nothing do not end iteration, but a stalled
		// cursor does
		for p.index >= len(p.objects) {
			prev := p.Cursor()
			ok, err := p.loadPage(ctx)
			if err != nil {
				return zero, err
			}
			if !ok || sameCursor(prev, p.Cursor()) {
				break
			}
		}
		if p.index >= len(p.objects) {
			return zero, domain.ErrIterationDone
		}
	}
	obj := p.objects[p.index]
	p.index++
	return obj, nil
}

// All restarts iteration and yields every object. Iteration stops at the
// first error, which is yielded with the zero value.
func (p *Paginator[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		p.Reset()
		for {
			obj, err := p.Next(ctx)
			if errors.Is(err, domain.ErrIterationDone) {
				return
			}
			if err != nil {
				yield(obj, err)
				return
			}
			if !yield(obj, nil) {
				return
			}
		}
	}
}

// Collect fetches every remaining page and returns all objects.
func (p *Paginator[T]) Collect(ctx context.Context) ([]T, error) {
	for {
		ok, err := p.loadPage(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	out := make([]T, len(p.objects))
	copy(out, p.objects)
	return out, nil
}

// At returns the i-th object, fetching pages until it is available.
func (p *Paginator[T]) At(ctx context.Context, i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, domain.ErrIndexOutOfRange
	}
	for i >= len(p.objects) {
		ok, err := p.loadPage(ctx)
		if err != nil {
			return zero, err
		}
		if !ok {
			return zero, domain.ErrIndexOutOfRange
		}
	}
	return p.objects[i], nil
}

// Reset restarts iteration over the cached objects without refetching.
func (p *Paginator[T]) Reset() { p.index = 0 }

// SizedPaginator is a Paginator whose total size is reported by the server.
type SizedPaginator[T any] struct {
	*Paginator[T]
	length func() (int, bool)
}

func newSizedPaginator[T any](fetch fetchFunc[T], vars map[string]any, perPage int) *SizedPaginator[T] {
	sp := &SizedPaginator[T]{Paginator: newPaginator(fetch, vars, perPage)}
	sp.length = sp.totalCount
	return sp
}

func (p *SizedPaginator[T]) totalCount() (int, bool) {
	if p.last == nil || p.last.totalCount == nil {
		return 0, false
	}
	return *p.last.totalCount, true
}

// Len returns the total number of objects, fetching the first page if none
// has been fetched yet.
func (p *SizedPaginator[T]) Len(ctx context.Context) (int, error) {
	if p.last == nil {
		if _, err := p.loadPage(ctx); err != nil {
			return 0, err
		}
	}
	n, ok := p.length()
	if !ok {
		return 0, domain.ErrLengthUnknown
	}
	return n, nil
}

func sameCursor(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
