// Package httputil provides retry helpers for HTTP query adapters.
//
// # Retry
//
// [Retry] executes a function with exponential backoff. Only errors wrapped
// in [RetryableError] are retried; anything else is returned at once:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    if resp.StatusCode >= 500 {
//	        return &httputil.RetryableError{Err: fmt.Errorf("status %d", resp.StatusCode)}
//	    }
//	    return decode(resp.Body)
//	})
//
// Cancelling ctx aborts the wait between attempts.
package httputil
