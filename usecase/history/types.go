// Package history implements use cases over the reconcile run history.
package history

import "github.com/csops-dev/csops/domain"

// Repos holds repositories needed for history use cases.
type Repos struct {
	History domain.HistoryRepository
}

// UseCase wires repositories needed for history use cases.
type UseCase struct {
	Repos *Repos
}
