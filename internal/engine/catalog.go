package engine

import "github.com/steelyard-audit/steelyard/internal/model"

// ProgressFunc reports batch progress after each scored product.
type ProgressFunc func(done, total int)

// AuditCatalog scores every snapshot in order and returns one result per
// product. The progress callback may be nil.
func (e *Engine) AuditCatalog(products []model.ProductSnapshot, progress ProgressFunc) []Result {
	results := make([]Result, 0, len(products))

	for i, product := range products {
		results = append(results, e.Audit(product))
		if progress != nil {
			progress(i+1, len(products))
		}
	}

	return results
}
