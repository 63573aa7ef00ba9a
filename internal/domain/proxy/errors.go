package proxy

import "errors"

var (
	// ErrPoolEmpty is returned when a random pick is requested from an
	// empty pool.
	ErrPoolEmpty = errors.New("proxy pool is empty")

	// ErrRefreshInProgress is returned to a forced refresh that arrives
	// while another refresh is still running.
	ErrRefreshInProgress = errors.New("refresh already in progress")
)
