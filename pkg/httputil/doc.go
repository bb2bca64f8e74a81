// Package httputil provides retry helpers for fetching remote datasets.
//
// Transient failures (timeouts, 5xx responses, 429) are wrapped in
// [RetryableError] by [CheckResponse]; [Retry] re-runs only those, with
// exponential backoff, and gives up immediately on anything else:
//
//	err := httputil.Retry(ctx, httputil.DefaultAttempts, httputil.DefaultDelay, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    defer resp.Body.Close()
//	    return httputil.CheckResponse(resp)
//	})
package httputil
