// Package dataset loads the tabular input of a hexgrid rendering.
//
// # Tables
//
// A dataset is CSV with a header row. [Parse] reads it into a [Table] of
// string fields; rows may have fewer or more fields than the header. The
// first column is the value column.
//
// # Path Fallback
//
// [Loader.Load] tries an ordered list of candidate locations and returns the
// first table that loads. Candidates are local paths or http(s) URLs; the
// [Fetcher] decides how to open each. When every candidate fails, Load
// returns a [*NotFoundError] naming every attempted location:
//
//	l := dataset.NewLoader(dataset.NewMultiFetcher(httpFetcher), logger)
//	t, err := l.Load(ctx, []string{"assets/dataset.csv", "dataset.csv"})
//	var nf *dataset.NotFoundError
//	if errors.As(err, &nf) {
//	    fmt.Println("tried:", strings.Join(nf.Paths, ", "))
//	}
package dataset
