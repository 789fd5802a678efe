package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FileResult содержит результат токенизации одного файла
type FileResult struct {
	Path    string
	Result  *TokenizeResult // nil when LoadErr is set
	LoadErr error
}

// TokenizeFiles токенизирует файлы параллельно, сохраняя порядок paths.
// Load errors are kept per file; only cancellation of ctx aborts the batch.
func TokenizeFiles(ctx context.Context, paths []string, opts TokenizeOptions, jobs int) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := Tokenize(path, opts)
			// индекс i уникален для каждой горутины, мьютекс не нужен
			results[i] = FileResult{Path: path, Result: res, LoadErr: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
